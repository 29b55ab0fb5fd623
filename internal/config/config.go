package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

type IyzicoConfig struct {
	APIKey    string
	SecretKey string
	BaseURL   string `validate:"omitempty,url"`
}

type Config struct {
	Port          string
	PublicBaseURL string `validate:"omitempty,url"`
	FrontendURL   string `validate:"required,url"`
	JWTSecret     string `validate:"required"`
	Google        GoogleConfig
	Iyzico        IyzicoConfig
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:          os.Getenv("PORT"),
		PublicBaseURL: os.Getenv("PUBLIC_BASE_URL"),
		FrontendURL:   os.Getenv("NETLIFY_SITE_URL"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
	}

	cfg.Google.ClientID = os.Getenv("GOOGLE_CLIENT_ID")
	cfg.Google.ClientSecret = os.Getenv("GOOGLE_CLIENT_SECRET")

	// Iyzico config (opsiyonel - yoksa checkout endpointleri kapalı kalır)
	cfg.Iyzico.APIKey = os.Getenv("IYZICO_API_KEY")
	cfg.Iyzico.SecretKey = os.Getenv("IYZICO_SECRET_KEY")
	cfg.Iyzico.BaseURL = os.Getenv("IYZICO_URI")

	if cfg.Port == "" {
		cfg.Port = "3000"
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// IyzicoConfigured reports whether all iyzico credentials are present.
func (c *Config) IyzicoConfigured() bool {
	return c.Iyzico.APIKey != "" && c.Iyzico.SecretKey != "" && c.Iyzico.BaseURL != ""
}
