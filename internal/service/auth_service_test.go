package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/markbates/goth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtPkg "github.com/lcshop/boost-backend/pkg/jwt"
)

func TestClaimsFromProfile(t *testing.T) {
	tests := []struct {
		name      string
		user      goth.User
		wantEmail string
		wantName  string
	}{
		{
			name:      "full profile",
			user:      goth.User{Email: "a@b.com", Name: "A B"},
			wantEmail: "a@b.com",
			wantName:  "A B",
		},
		{
			name:      "name falls back to email local part",
			user:      goth.User{Email: "a@b.com"},
			wantEmail: "a@b.com",
			wantName:  "a",
		},
		{
			name:      "empty profile falls back to placeholder",
			user:      goth.User{},
			wantEmail: "",
			wantName:  FallbackName,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := ClaimsFromProfile(tt.user)
			assert.Equal(t, tt.wantEmail, claims.Email)
			assert.Equal(t, tt.wantName, claims.Name)
		})
	}
}

func TestCompleteLogin(t *testing.T) {
	secret := []byte("auth-secret")
	svc := NewAuthService(secret, "https://shop.example.com/")

	redirectURL, err := svc.CompleteLogin(goth.User{Email: "a@b.com", Name: "A B"})
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(redirectURL, "https://shop.example.com/panel.html?token="))

	parsed, err := url.Parse(redirectURL)
	require.NoError(t, err)

	// Redirect'teki token doğrudan doğrulanabilir olmalı
	claims, err := jwtPkg.ValidateToken(parsed.Query().Get("token"), secret)
	require.NoError(t, err)
	assert.Equal(t, "a@b.com", claims.Email)
	assert.Equal(t, "A B", claims.Name)
}
