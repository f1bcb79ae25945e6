package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestGenerateJWTRoundTrip(t *testing.T) {
	secret := []byte("secret-de-test")

	tokenString, err := GenerateJWT("client@example.com", secret)
	if err != nil {
		t.Fatalf("signature: %v", err)
	}

	token, err := jwt.Parse(tokenString, func(*jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("token émis invalide: %v", err)
	}

	claims := token.Claims.(jwt.MapClaims)
	if claims["email"] != "client@example.com" {
		t.Fatalf("claim email attendu, obtenu %v", claims["email"])
	}

	// validité fixe de 24h
	exp := int64(claims["exp"].(float64))
	want := time.Now().Add(TokenValidity).Unix()
	if exp < want-60 || exp > want+60 {
		t.Fatalf("expiration attendue ~24h, obtenu %d (attendu ~%d)", exp, want)
	}
}
