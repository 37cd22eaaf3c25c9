package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAllow(t *testing.T) {
	l := New(1, 2)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	assert.True(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
	assert.True(t, l.Allow("2.2.2.2"), "buckets are per key")

	now = now.Add(time.Second)
	assert.True(t, l.Allow("1.1.1.1"))
	assert.False(t, l.Allow("1.1.1.1"))
}

func TestIdleVisitorsAreDropped(t *testing.T) {
	l := New(1, 1)
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }

	l.Allow("1.1.1.1")
	now = now.Add(idleTTL + time.Minute)
	l.Allow("2.2.2.2")

	assert.Len(t, l.visitors, 1)
	assert.Contains(t, l.visitors, "2.2.2.2")
}

func TestMiddleware(t *testing.T) {
	l := New(1, 1)
	handler := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	tests := []struct {
		name       string
		remoteAddr string
		status     int
	}{
		{"first request", "10.0.0.1:5000", http.StatusOK},
		{"same ip other port", "10.0.0.1:5001", http.StatusTooManyRequests},
		{"other ip", "10.0.0.2:5000", http.StatusOK},
		{"address without port", "10.0.0.3", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/login", nil)
			req.RemoteAddr = tt.remoteAddr
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
