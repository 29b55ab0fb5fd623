package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lcshop/boost-backend/internal/models"
	jwtPkg "github.com/lcshop/boost-backend/pkg/jwt"
)

// AuthMiddleware verifies the bearer token and puts the session claims into
// the request locals. Every failure mode gets the same 401 body so callers
// cannot tell "missing" from "expired" from "invalid".
func AuthMiddleware(secret []byte) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("unauthorized"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := jwtPkg.ValidateToken(tokenString, secret)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("unauthorized"))
		}

		c.Locals("userEmail", claims.Email)
		c.Locals("userName", claims.Name)

		return c.Next()
	}
}
