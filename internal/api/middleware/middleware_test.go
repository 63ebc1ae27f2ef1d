package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/varunkasnia/LLM-Internship-Frontend/config"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/service"
	"github.com/varunkasnia/LLM-Internship-Frontend/internal/session"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockLimiter struct {
	allowed bool
	err     error
	keys    []string
}

func (m *mockLimiter) CheckRateLimit(_ context.Context, key string, _ int, _ time.Duration) (bool, error) {
	m.keys = append(m.keys, key)
	return m.allowed, m.err
}

func okHandler(c *gin.Context) { c.String(http.StatusOK, "ok") }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// ── RateLimit ──

func TestRateLimit(t *testing.T) {
	tests := []struct {
		name     string
		limiter  *mockLimiter
		wantCode int
	}{
		{"allowed", &mockLimiter{allowed: true}, http.StatusOK},
		{"denied", &mockLimiter{allowed: false}, http.StatusTooManyRequests},
		{"limiter error passes through", &mockLimiter{err: errors.New("redis down")}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.POST("/employees", RateLimit(tt.limiter, 30, time.Minute), okHandler)

			w := serve(r, httptest.NewRequest("POST", "/employees", nil))

			if w.Code != tt.wantCode {
				t.Errorf("expected %d, got %d", tt.wantCode, w.Code)
			}
			if len(tt.limiter.keys) != 1 || !strings.HasSuffix(tt.limiter.keys[0], ":/employees") {
				t.Errorf("unexpected keys %v", tt.limiter.keys)
			}
		})
	}
}

func TestRateLimit_NilLimiter(t *testing.T) {
	r := gin.New()
	r.POST("/employees", RateLimit(nil, 30, time.Minute), okHandler)

	w := serve(r, httptest.NewRequest("POST", "/employees", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200 without a limiter, got %d", w.Code)
	}
}

func TestRateLimit_KeyedByWorkspace(t *testing.T) {
	limiter := &mockLimiter{allowed: true}
	registry := session.NewRegistry(func() *service.Screens { return &service.Screens{} }, time.Hour, zap.NewNop())
	manager := session.NewManager(&config.SessionConfig{
		Secret:      "test-secret-0123456789",
		CookieName:  "hrms-session",
		IdleTimeout: time.Hour,
	}, registry, zap.NewNop())

	var wsID string
	r := gin.New()
	r.Use(Session(manager, zap.NewNop()))
	r.POST("/attendance", RateLimit(limiter, 30, time.Minute), func(c *gin.Context) {
		ws := CurrentWorkspace(c)
		if ws == nil {
			t.Fatal("expected workspace on context")
		}
		wsID = ws.ID
		c.Status(http.StatusOK)
	})

	serve(r, httptest.NewRequest("POST", "/attendance", nil))

	if want := "rate_limit:" + wsID + ":/attendance"; len(limiter.keys) != 1 || limiter.keys[0] != want {
		t.Errorf("expected key %q, got %v", want, limiter.keys)
	}
}

// ── RequestID ──

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, GetRequestID(c)) })

	w := serve(r, httptest.NewRequest("GET", "/", nil))
	generated := w.Header().Get("X-Request-ID")
	if generated == "" || w.Body.String() != generated {
		t.Errorf("expected generated id echoed, header=%q body=%q", generated, w.Body.String())
	}

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w = serve(r, req)
	if got := w.Header().Get("X-Request-ID"); got != "abc-123" {
		t.Errorf("expected caller id kept, got %q", got)
	}

	req = httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", strings.Repeat("x", requestIDMaxLen+1))
	w = serve(r, req)
	if got := w.Header().Get("X-Request-ID"); len(got) > requestIDMaxLen {
		t.Errorf("oversized id should be replaced, got %q", got)
	}
}

// ── SecurityHeaders ──

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(SecurityHeaders())
	r.GET("/", okHandler)

	w := serve(r, httptest.NewRequest("GET", "/", nil))

	if w.Header().Get("X-Frame-Options") != "DENY" {
		t.Error("missing X-Frame-Options")
	}
	if csp := w.Header().Get("Content-Security-Policy"); !strings.Contains(csp, "script-src 'none'") {
		t.Errorf("unexpected CSP %q", csp)
	}
}

// ── BodyLimit ──

func TestBodyLimit(t *testing.T) {
	r := gin.New()
	r.Use(BodyLimit(16))
	r.POST("/", okHandler)

	w := serve(r, httptest.NewRequest("POST", "/", strings.NewReader("small")))
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}

	w = serve(r, httptest.NewRequest("POST", "/", strings.NewReader(strings.Repeat("x", 17))))
	if w.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("expected 413, got %d", w.Code)
	}
}
