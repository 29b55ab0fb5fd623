package handler

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/lcshop/boost-backend/internal/models"
	"github.com/lcshop/boost-backend/internal/service"
	jwtPkg "github.com/lcshop/boost-backend/pkg/jwt"
)

type PaymentHandler struct {
	paymentService *service.PaymentService
	frontendURL    string
}

func NewPaymentHandler(paymentService *service.PaymentService, frontendURL string) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		frontendURL:    strings.TrimRight(frontendURL, "/"),
	}
}

// CheckoutInit starts a hosted checkout for the authenticated user's plan.
func (h *PaymentHandler) CheckoutInit(c *fiber.Ctx) error {
	var req models.CheckoutInitRequest
	// Gövde boş/bozuk olsa da devam: plan default'a düşer
	if err := c.BodyParser(&req); err != nil {
		req.Plan = ""
	}

	email, _ := c.Locals("userEmail").(string)
	name, _ := c.Locals("userName").(string)
	claims := jwtPkg.SessionClaims{Email: email, Name: name}

	content, err := h.paymentService.InitCheckout(c.UserContext(), claims, req.Plan, clientIP(c))
	if err != nil {
		if errors.Is(err, service.ErrGatewayNotConfigured) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(models.ErrorResponse(err.Error()))
		}
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	return c.JSON(models.CheckoutInitResponse{CheckoutFormContent: content})
}

// Callback finalizes a checkout attempt. The provider posts an opaque token;
// the definitive result comes from re-querying the provider, never from the
// callback body itself.
func (h *PaymentHandler) Callback(c *fiber.Ctx) error {
	token := c.FormValue("token")

	if h.paymentService.ResolveCallback(c.UserContext(), token) {
		return c.Redirect(h.frontendURL+"/success.html", fiber.StatusFound)
	}
	return c.Redirect(h.frontendURL+"/fail.html", fiber.StatusFound)
}

// clientIP prefers the first X-Forwarded-For hop, falling back to the socket
// address.
func clientIP(c *fiber.Ctx) string {
	if xff := c.Get("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.SplitN(xff, ",", 2)[0])
	}
	return c.IP()
}
