package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coinkeep/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newApp(t *testing.T) *fiber.App {
	t.Helper()
	app := fiber.New()
	auth := NewAPIKeyAuth(testSecret)
	app.Get("/whoami", auth.Handler, func(c *fiber.Ctx) error {
		return c.SendString(APIKeyFrom(c))
	})
	return app
}

func signToken(t *testing.T, secret, apiKey string, expiresAt time.Time) string {
	t.Helper()
	claims := models.UserClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-time.Minute)),
			Subject:   apiKey,
		},
		APIKey: apiKey,
		Email:  "alice@example.com",
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAPIKeyAuth_XAPIKey(t *testing.T) {
	app := newApp(t)
	apiKey := uuid.NewString()

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-API-Key", apiKey)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, apiKey, string(body))
}

func TestAPIKeyAuth_BearerToken(t *testing.T) {
	app := newApp(t)
	apiKey := uuid.NewString()
	token := signToken(t, testSecret, apiKey, time.Now().Add(15*time.Minute))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, apiKey, string(body))
}

func TestAPIKeyAuth_Rejections(t *testing.T) {
	app := newApp(t)
	apiKey := uuid.NewString()

	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer scheme", header: "Basic abc123"},
		{name: "malformed token", header: "Bearer not.a.token"},
		{name: "wrong secret", header: "Bearer " + signToken(t, "other-secret", apiKey, time.Now().Add(15*time.Minute))},
		{name: "expired token", header: "Bearer " + signToken(t, testSecret, apiKey, time.Now().Add(-time.Minute))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		})
	}
}
