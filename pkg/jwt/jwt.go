package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token süresi (7 gün)
const TokenExpiry = 7 * 24 * time.Hour

// SessionClaims holds the identity fields carried inside a session token.
type SessionClaims struct {
	Email string
	Name  string
}

func GenerateToken(email, name string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"name":  name,
		"sub":   email,
		"exp":   time.Now().Add(TokenExpiry).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(tokenString string, secret []byte) (*SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return secret, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	email, _ := claims["email"].(string)
	name, _ := claims["name"].(string)

	return &SessionClaims{Email: email, Name: name}, nil
}
