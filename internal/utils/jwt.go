package utils

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity : durée de vie fixe des tokens émis.
const TokenValidity = 24 * time.Hour

// GenerateJWT signe un claim d'identité (email) en HS256, validité 24h.
func GenerateJWT(email string, secret []byte) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(TokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}
