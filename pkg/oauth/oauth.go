package oauth

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/markbates/goth"
	"github.com/markbates/goth/gothic"
	"github.com/markbates/goth/providers/google"
	gothfiber "github.com/shareed2k/goth_fiber"

	"github.com/lcshop/boost-backend/internal/config"
)

// Setup registers the Google provider and the cookie-backed session store that
// carries the OAuth state between the begin and callback requests. Safe to call
// multiple times; providers are simply re-registered.
func Setup(cfg *config.Config) {
	base := strings.TrimRight(cfg.PublicBaseURL, "/")
	if base == "" {
		base = "http://localhost:" + cfg.Port
	}

	goth.UseProviders(
		google.New(
			cfg.Google.ClientID,
			cfg.Google.ClientSecret,
			base+"/auth/google/callback",
			"profile", "email",
		),
	)

	gothfiber.SessionStore = session.New(session.Config{
		KeyLookup:      "cookie:" + gothic.SessionName,
		CookieHTTPOnly: true,
		CookieSameSite: "Lax",
		Expiration:     time.Hour,
	})
}
