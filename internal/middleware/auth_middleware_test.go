package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lcshop/boost-backend/internal/models"
	jwtPkg "github.com/lcshop/boost-backend/pkg/jwt"
)

var testSecret = []byte("middleware-secret")

func newGuardedApp(t *testing.T) *fiber.App {
	t.Helper()

	app := fiber.New()
	app.Get("/protected", AuthMiddleware(testSecret), func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"email": c.Locals("userEmail"),
			"name":  c.Locals("userName"),
		})
	})
	return app
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	app := newGuardedApp(t)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	var body models.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, "unauthorized", body.Error)
}

func TestAuthMiddleware_MalformedToken(t *testing.T) {
	app := newGuardedApp(t)

	for _, header := range []string{"Bearer garbage", "Token abc", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "header %q", header)

		var body models.Response
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "unauthorized", body.Error, "header %q", header)
	}
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	app := newGuardedApp(t)

	token, err := jwtPkg.GenerateToken("a@b.com", "A B", testSecret)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "a@b.com", body["email"])
	assert.Equal(t, "A B", body["name"])
}
