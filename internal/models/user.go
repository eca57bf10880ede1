package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	// APIKey is the caller-facing identity. Every authenticated
	// request carries it, and wallets reference it as owner.
	APIKey string `gorm:"uniqueIndex;not null" json:"api_key"`
}
