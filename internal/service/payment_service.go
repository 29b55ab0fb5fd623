package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lcshop/boost-backend/internal/models"
	jwtPkg "github.com/lcshop/boost-backend/pkg/jwt"
	"github.com/lcshop/boost-backend/pkg/payment"
)

// ErrGatewayNotConfigured is returned when iyzico credentials were absent at
// startup and the gateway was never initialized.
var ErrGatewayNotConfigured = errors.New("iyzico_not_configured")

// ProviderError carries the gateway's own error message when it rejects a
// checkout attempt.
type ProviderError struct {
	Message string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// CheckoutGateway is the slice of the iyzico client the payment flow needs.
type CheckoutGateway interface {
	InitializeCheckoutForm(ctx context.Context, req *payment.CheckoutFormRequest) (*payment.CheckoutFormResult, error)
	RetrieveCheckoutForm(ctx context.Context, token string) (*payment.CheckoutFormResult, error)
}

type PaymentService struct {
	gateway       CheckoutGateway // nil ise ödeme kapalı
	publicBaseURL string
	logger        *zap.Logger
}

func NewPaymentService(gateway CheckoutGateway, publicBaseURL string, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		gateway:       gateway,
		publicBaseURL: publicBaseURL,
		logger:        logger,
	}
}

// Configured reports whether the payment gateway was initialized at startup.
func (s *PaymentService) Configured() bool {
	return s.gateway != nil
}

// InitCheckout builds the provider payload for the selected plan and requests
// a hosted checkout form. Alıcının adres/kimlik alanları sabit (tek ülke,
// dijital teslimat - gerçek fatura bilgisi toplanmıyor).
func (s *PaymentService) InitCheckout(ctx context.Context, claims jwtPkg.SessionClaims, plan, clientIP string) (string, error) {
	if s.gateway == nil {
		return "", ErrGatewayNotConfigured
	}

	plan = models.NormalizePlan(plan)
	price := models.PlanPrice(plan)

	name := claims.Name
	if name == "" {
		name = "LC"
	}
	email := claims.Email
	if email == "" {
		email = "user@example.com"
	}
	contactName := claims.Name
	if contactName == "" {
		contactName = "LC User"
	}

	// Zaman damgasından türetilen kimlikler (global eşsizlik garantisi yok)
	now := time.Now().UnixMilli()
	address := payment.Address{
		ContactName: contactName,
		City:        "Istanbul",
		Country:     "Turkey",
		Address:     "Digital Delivery",
	}

	req := &payment.CheckoutFormRequest{
		Locale:         payment.Locale,
		ConversationID: fmt.Sprintf("LC-%d", now),
		Price:          price,
		PaidPrice:      price,
		Currency:       payment.CurrencyTRY,
		BasketID:       fmt.Sprintf("B%d", now),
		PaymentGroup:   payment.GroupProduct,
		CallbackURL:    s.publicBaseURL + "/api/iyzico/callback",
		Buyer: payment.Buyer{
			ID:                  fmt.Sprintf("U%d", now),
			Name:                name,
			Surname:             "User",
			Email:               email,
			IdentityNumber:      "11111111111",
			RegistrationAddress: "Digital",
			IP:                  clientIP,
			City:                "Istanbul",
			Country:             "Turkey",
		},
		ShippingAddress: address,
		BillingAddress:  address,
		BasketItems: []payment.BasketItem{
			{
				ID:        "P-" + plan,
				Name:      "Discord Boost - " + plan,
				Category1: "Digital",
				ItemType:  payment.ItemVirtual,
				Price:     price,
			},
		},
	}

	result, err := s.gateway.InitializeCheckoutForm(ctx, req)
	if err != nil {
		s.logger.Warn("iyzico checkout init failed", zap.Error(err))
		return "", &ProviderError{Message: "iyzico_error"}
	}
	if result.Status != "success" {
		msg := result.ErrorMessage
		if msg == "" {
			msg = "iyzico_error"
		}
		return "", &ProviderError{Message: msg}
	}

	return result.CheckoutFormContent, nil
}

// ResolveCallback re-queries the provider with the callback token and reports
// whether the payment definitively succeeded. Her belirsizlik başarısızlık
// sayılır; asla başarı varsayılmaz.
func (s *PaymentService) ResolveCallback(ctx context.Context, token string) bool {
	if s.gateway == nil || token == "" {
		return false
	}

	result, err := s.gateway.RetrieveCheckoutForm(ctx, token)
	if err != nil {
		s.logger.Warn("iyzico checkout retrieve failed", zap.Error(err))
		return false
	}

	return result.PaymentSucceeded()
}
