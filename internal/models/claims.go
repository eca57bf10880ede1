package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// UserClaims are the JWT claims issued at login. APIKey is the only
// piece of identity the rest of the system cares about.
type UserClaims struct {
	jwt.RegisteredClaims
	APIKey string `json:"api_key"`
	Email  string `json:"email"`
}
