package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newMiddlewareRouter(middleware gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(middleware)
	router.GET("/test", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestCORSMiddleware(t *testing.T) {
	allowed := []string{"https://app.pantrypal.ph", "http://localhost:*"}

	t.Run("sets headers for an allowed origin", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "https://app.pantrypal.ph")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://app.pantrypal.ph" {
			t.Errorf("Allow-Origin = %q, want the origin echoed", got)
		}
	})

	t.Run("wildcard suffix matches by prefix", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
			t.Errorf("Allow-Origin = %q, want the origin echoed", got)
		}
	})

	t.Run("no headers for a disallowed origin", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req := httptest.NewRequest("GET", "/test", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "" {
			t.Errorf("Allow-Origin = %q, want empty", got)
		}
	})

	t.Run("preflight gets 204 without hitting the handler", func(t *testing.T) {
		router := newMiddlewareRouter(CORSMiddleware(allowed))

		req := httptest.NewRequest("OPTIONS", "/test", nil)
		req.Header.Set("Origin", "https://app.pantrypal.ph")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Errorf("status = %d, want 204", w.Code)
		}
	})
}

func TestIsAllowedOrigin(t *testing.T) {
	testCases := []struct {
		origin  string
		allowed []string
		want    bool
	}{
		{"https://a.com", []string{"https://a.com"}, true},
		{"https://a.com", []string{"https://b.com"}, false},
		{"https://a.com/page", []string{"https://a.com*"}, true},
		{"anything", []string{"*"}, true},
		{"", []string{"https://a.com"}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.origin, func(t *testing.T) {
			if got := isAllowedOrigin(tc.origin, tc.allowed); got != tc.want {
				t.Errorf("isAllowedOrigin(%q, %v) = %v, want %v", tc.origin, tc.allowed, got, tc.want)
			}
		})
	}
}

func TestRateLimitMiddleware(t *testing.T) {
	router := newMiddlewareRouter(RateLimitMiddleware(2))

	// Burst allows the first two immediate requests; the third is rejected
	for i, wantStatus := range []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests} {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.1:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != wantStatus {
			t.Errorf("request %d: status = %d, want %d", i+1, w.Code, wantStatus)
		}
	}

	t.Run("limits are per client IP", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/test", nil)
		req.RemoteAddr = "10.0.0.2:1234"
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("status = %d, want 200 for a fresh IP", w.Code)
		}
	})
}
