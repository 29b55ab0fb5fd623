package handler

import (
	"github.com/gofiber/fiber/v2"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/lcshop/boost-backend/internal/models"
	"github.com/lcshop/boost-backend/internal/service"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// BeginLogin redirects the browser to the identity provider.
func (h *AuthHandler) BeginLogin(c *fiber.Ctx) error {
	return gothfiber.BeginAuthHandler(c)
}

// LoginCallback completes the provider flow, mints the session token and sends
// the browser back to the front end with the token in the query string.
func (h *AuthHandler) LoginCallback(c *fiber.Ctx) error {
	user, err := gothfiber.CompleteUserAuth(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	redirectURL, err := h.authService.CompleteLogin(user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse(err.Error()))
	}

	return c.Redirect(redirectURL, fiber.StatusFound)
}
