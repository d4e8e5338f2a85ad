package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func serve(t *testing.T, h echo.HandlerFunc, method, path, remote string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(method, path, nil)
	req.RemoteAddr = remote
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath(path)

	assert.NoError(t, h(c))
	return rec
}

func ok(c echo.Context) error {
	return c.String(http.StatusOK, "success")
}

func TestRateLimiter_Allow(t *testing.T) {
	// 120 requests per minute is one token every 0.5s
	rl := NewRateLimiter(120, 1)
	defer rl.Close()

	limiter := rl.GetLimiter("192.168.1.1")

	assert.True(t, limiter.Allow(), "First request should be allowed")
	assert.False(t, limiter.Allow(), "Second request should be blocked")

	time.Sleep(600 * time.Millisecond)

	assert.True(t, limiter.Allow(), "Request should be allowed after refill")
}

func TestRateLimiter_DifferentIPs(t *testing.T) {
	rl := NewRateLimiter(2, 1)
	defer rl.Close()

	limiter1 := rl.GetLimiter("192.168.1.1")
	limiter2 := rl.GetLimiter("192.168.1.2")

	assert.True(t, limiter1.Allow())
	assert.True(t, limiter2.Allow())
	assert.False(t, limiter1.Allow())
	assert.False(t, limiter2.Allow())
}

func TestRateLimiter_Prune(t *testing.T) {
	rl := NewRateLimiter(60, 2)
	defer rl.Close()

	rl.GetLimiter("idle")
	rl.GetLimiter("busy").Allow()

	rl.prune()

	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.NotContains(t, rl.visitors, "idle")
	assert.Contains(t, rl.visitors, "busy")
}

func TestRateLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(2, 1)
	defer rl.Close()
	h := rl.RateLimitMiddleware()(ok)

	rec := serve(t, h, http.MethodGet, "/test", "192.168.1.1:12345")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, h, http.MethodGet, "/test", "192.168.1.1:12346")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "rate_limit_exceeded")

	rec = serve(t, h, http.MethodGet, "/test", "192.168.1.2:12345")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPerEndpointRateLimiter(t *testing.T) {
	perl := NewPerEndpointRateLimiter(60, 10)
	defer perl.Close()
	perl.SetEndpointLimit("POST /api/v1/leads/:id/insights", 5, 2)

	h := perl.RateLimitMiddleware()(ok)
	path := "/api/v1/leads/:id/insights"

	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodPost, path, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodPost, path, "10.0.0.1:1").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(t, h, http.MethodPost, path, "10.0.0.1:1").Code)

	// other routes use the default limit
	assert.Equal(t, http.StatusOK, serve(t, h, http.MethodGet, "/api/v1/leads", "10.0.0.1:1").Code)
}

func TestRateLimiter_BurstBehavior(t *testing.T) {
	rl := NewRateLimiter(60, 10)
	defer rl.Close()
	limiter := rl.GetLimiter("192.168.1.1")

	allowed := 0
	for i := 0; i < 15; i++ {
		if limiter.Allow() {
			allowed++
		}
	}
	assert.Equal(t, 10, allowed)

	time.Sleep(1100 * time.Millisecond)

	assert.True(t, limiter.Allow())
}
