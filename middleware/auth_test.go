package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"Memo/pkg/jwt"

	"github.com/gin-gonic/gin"
)

func newAuthRouter(secret []byte) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/ping", Auth(secret), func(c *gin.Context) {
		uid, _ := c.Get("user_id")
		c.JSON(http.StatusOK, gin.H{"user_id": uid})
	})
	return r
}

func TestAuth_ValidToken(t *testing.T) {
	secret := []byte("test-secret")
	token, err := jwt.GenerateToken(secret, 42, jwt.TypeAccess, time.Minute)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}

	r := newAuthRouter(secret)
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body=%s", w.Code, w.Body.String())
	}
}

func TestAuth_Rejected(t *testing.T) {
	secret := []byte("test-secret")
	refresh, _ := jwt.GenerateToken(secret, 42, jwt.TypeRefresh, time.Minute)

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"bad scheme", "Basic abc"},
		{"garbage token", "Bearer not-a-token"},
		{"refresh token on access route", "Bearer " + refresh},
	}

	r := newAuthRouter(secret)
	for _, tc := range cases {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("%s: status = %d, want 401", tc.name, w.Code)
		}
	}
}
