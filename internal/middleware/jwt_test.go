package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gadget_home_backend/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var testSecret = []byte("secret-de-test")

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthRequired(testSecret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("email")})
	})
	return r
}

func doRequest(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequiredMissingToken(t *testing.T) {
	w := doRequest(testRouter(), "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("sans credential : attendu 401, obtenu %d", w.Code)
	}
}

func TestAuthRequiredMalformedHeader(t *testing.T) {
	w := doRequest(testRouter(), "NotBearer abc")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("header mal formé : attendu 401, obtenu %d", w.Code)
	}
}

func TestAuthRequiredInvalidToken(t *testing.T) {
	w := doRequest(testRouter(), "Bearer n.importe.quoi")
	if w.Code != http.StatusForbidden {
		t.Fatalf("token invalide : attendu 403, obtenu %d", w.Code)
	}
}

func TestAuthRequiredExpiredToken(t *testing.T) {
	claims := jwt.MapClaims{
		"email": "client@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSecret)
	if err != nil {
		t.Fatalf("signature: %v", err)
	}

	w := doRequest(testRouter(), "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("token expiré : attendu 403, obtenu %d", w.Code)
	}
}

func TestAuthRequiredWrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("client@example.com", []byte("autre-secret"))
	if err != nil {
		t.Fatalf("signature: %v", err)
	}

	w := doRequest(testRouter(), "Bearer "+token)
	if w.Code != http.StatusForbidden {
		t.Fatalf("mauvais secret : attendu 403, obtenu %d", w.Code)
	}
}

func TestAuthRequiredValidToken(t *testing.T) {
	token, err := utils.GenerateJWT("client@example.com", testSecret)
	if err != nil {
		t.Fatalf("signature: %v", err)
	}

	w := doRequest(testRouter(), "Bearer "+token)
	if w.Code != http.StatusOK {
		t.Fatalf("token valide : attendu 200, obtenu %d (%s)", w.Code, w.Body.String())
	}
	if body := w.Body.String(); body != `{"email":"client@example.com"}` {
		t.Fatalf("claim non propagé au contexte: %s", body)
	}
}
