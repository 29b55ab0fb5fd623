package service

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/markbates/goth"

	jwtPkg "github.com/lcshop/boost-backend/pkg/jwt"
)

// FallbackName is used when the provider profile has neither a display name
// nor an email to derive one from.
const FallbackName = "LC Üye"

type AuthService struct {
	jwtSecret   []byte
	frontendURL string
}

func NewAuthService(jwtSecret []byte, frontendURL string) *AuthService {
	return &AuthService{
		jwtSecret:   jwtSecret,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// ClaimsFromProfile derives session claims from the provider profile.
// Eksik alanlar için fallback: email boş kalır, isim email'in local kısmından türetilir.
func ClaimsFromProfile(user goth.User) jwtPkg.SessionClaims {
	email := user.Email

	name := user.Name
	if name == "" && email != "" {
		name = strings.SplitN(email, "@", 2)[0]
	}
	if name == "" {
		name = FallbackName
	}

	return jwtPkg.SessionClaims{Email: email, Name: name}
}

// CompleteLogin mints the session token for a provider profile and returns the
// front-end URL the browser should be redirected to. This is the only place a
// token is issued.
func (s *AuthService) CompleteLogin(user goth.User) (string, error) {
	claims := ClaimsFromProfile(user)

	token, err := jwtPkg.GenerateToken(claims.Email, claims.Name, s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return fmt.Sprintf("%s/panel.html?token=%s", s.frontendURL, url.QueryEscape(token)), nil
}
