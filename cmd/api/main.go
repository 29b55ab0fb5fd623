package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/lcshop/boost-backend/internal/config"
	"github.com/lcshop/boost-backend/internal/handler"
	"github.com/lcshop/boost-backend/internal/middleware"
	"github.com/lcshop/boost-backend/internal/service"
	"github.com/lcshop/boost-backend/pkg/logger"
	"github.com/lcshop/boost-backend/pkg/oauth"
	"github.com/lcshop/boost-backend/pkg/payment"
)

func main() {
	// .env yoksa ortam değişkenleriyle devam et
	_ = godotenv.Load()

	log := logger.New()
	defer log.Sync()

	// Config'i yükle
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config", zap.Error(err))
	}

	// Google OAuth provider
	oauth.Setup(cfg)

	// IYZICO safe init (env yoksa çökmesin)
	var gateway service.CheckoutGateway
	if cfg.IyzicoConfigured() {
		gateway = payment.NewIyzicoClient(cfg.Iyzico.APIKey, cfg.Iyzico.SecretKey, cfg.Iyzico.BaseURL)
	} else {
		log.Warn("IYZICO env missing: checkout endpoints disabled until set")
	}

	// Services
	authService := service.NewAuthService([]byte(cfg.JWTSecret), cfg.FrontendURL)
	paymentService := service.NewPaymentService(gateway, cfg.PublicBaseURL, log)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	paymentHandler := handler.NewPaymentHandler(paymentService, cfg.FrontendURL)

	// Router
	app := fiber.New()

	app.Use(cors.New())
	app.Use(fiberlogger.New())

	// Root + health (test için)
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("LC Shop backend OK")
	})
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	// Google login
	app.Get("/auth/:provider", authHandler.BeginLogin)
	app.Get("/auth/:provider/callback", authHandler.LoginCallback)

	api := app.Group("/api")

	// Provider callback (public, form-encoded)
	api.Post("/iyzico/callback", paymentHandler.Callback)

	// Protected routes
	api.Post("/iyzico/checkout-init", middleware.AuthMiddleware([]byte(cfg.JWTSecret)), paymentHandler.CheckoutInit)

	log.Info("backend running", zap.String("port", cfg.Port))
	log.Fatal("server stopped", zap.Error(app.Listen(":"+cfg.Port)))
}
