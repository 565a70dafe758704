package serverutils

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": "0b9f9f7e-0000-4000-8000-000000000001",
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return token
}

func TestParseClaimsRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	claims, err := ParseClaims(signToken(t, "unit-test-secret", "admin"))

	require.NoError(t, err)
	assert.Equal(t, "admin", claims["role"])
}

func TestParseClaimsRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	_, err := ParseClaims(signToken(t, "some-other-secret", "admin"))

	assert.Error(t, err)
}

func TestParseClaimsRejectsUnsignedToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")
	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"role": "admin"}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = ParseClaims(unsigned)

	assert.Error(t, err)
}

func TestParseBearerClaimsFromRequest(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	app := fiber.New()
	app.Get("/whoami", func(c *fiber.Ctx) error {
		claims, err := ParseBearerClaims(c)
		if err != nil {
			return c.SendStatus(fiber.StatusUnauthorized)
		}
		role, _ := claims["role"].(string)
		return c.SendString(role)
	})

	req := httptest.NewRequest("GET", "/whoami", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	req = httptest.NewRequest("GET", "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "unit-test-secret", "customer"))
	resp, err = app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
