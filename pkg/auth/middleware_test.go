package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	validToken, _ := jwtService.GenerateJWT("miner", time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		header       string
		expectedCode int
		expectedUser string
	}{
		{name: "No header", expectedCode: http.StatusUnauthorized},
		{name: "Not bearer", header: "Basic abc", expectedCode: http.StatusUnauthorized},
		{name: "Bad token", header: "Bearer nope", expectedCode: http.StatusUnauthorized},
		{name: "Valid token", header: "Bearer " + validToken, expectedCode: http.StatusOK, expectedUser: "miner"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotUser string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUser = UsernameFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			r := httptest.NewRequest(http.MethodGet, "/api/user", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			AuthMiddleware(jwtService)(next).ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
			assert.Equal(t, tt.expectedUser, gotUser)
		})
	}
}

func TestAdminOnly(t *testing.T) {
	jwtService := NewJWTService("test-secret")
	adminToken, _ := jwtService.GenerateJWT("admin", time.Now().Add(time.Hour))
	userToken, _ := jwtService.GenerateJWT("miner", time.Now().Add(time.Hour))

	tests := []struct {
		name         string
		token        string
		expectedCode int
	}{
		{name: "Admin allowed", token: adminToken, expectedCode: http.StatusOK},
		{name: "Regular user forbidden", token: userToken, expectedCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
			})
			handler := AuthMiddleware(jwtService)(AdminOnly("admin")(next))

			r := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
			r.Header.Set("Authorization", "Bearer "+tt.token)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)

			assert.Equal(t, tt.expectedCode, w.Code)
		})
	}
}
