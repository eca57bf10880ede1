// Package middleware provides HTTP middleware for the fiber app.
package middleware

import (
	"errors"
	"log"
	"strings"

	"coinkeep/internal/models"
	"coinkeep/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

// APIKeyContextKey is where the resolved API key is stored on the
// request context.
const APIKeyContextKey = "apiKey"

// APIKeyAuth extracts the caller's API key, either directly from the
// X-API-Key header or from a Bearer JWT issued at login. It only
// resolves the key; whether it identifies an existing user is decided
// by the pipeline's validation step.
type APIKeyAuth struct {
	jwtSecret string
}

func NewAPIKeyAuth(jwtSecret string) *APIKeyAuth {
	return &APIKeyAuth{jwtSecret: jwtSecret}
}

func (m *APIKeyAuth) Handler(c *fiber.Ctx) error {
	if key := c.Get("X-API-Key"); key != "" {
		c.Locals(APIKeyContextKey, key)
		return c.Next()
	}

	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return utils.Unauthorized(c, "missing API key or authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return utils.Unauthorized(c, "invalid authorization format")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	token, err := jwt.ParseWithClaims(tokenString, &models.UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(m.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		log.Printf("token validation error: %v", err)
		return utils.Unauthorized(c, "invalid token")
	}

	claims, ok := token.Claims.(*models.UserClaims)
	if !ok || claims.APIKey == "" {
		return utils.Unauthorized(c, "invalid claims")
	}

	c.Locals(APIKeyContextKey, claims.APIKey)
	return c.Next()
}

// APIKeyFrom reads the API key resolved by APIKeyAuth.
func APIKeyFrom(c *fiber.Ctx) string {
	key, _ := c.Locals(APIKeyContextKey).(string)
	return key
}
