package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

const cleanupInterval = 3 * time.Minute

// RateLimiter holds one token bucket per client IP.
type RateLimiter struct {
	visitors map[string]*rate.Limiter
	mu       sync.Mutex
	r        rate.Limit // requests per second
	b        int        // burst

	stop     chan struct{}
	stopOnce sync.Once
}

// NewRateLimiter creates a rate limiter allowing requestsPerMinute with the
// given burst. Call Close to stop its cleanup goroutine.
func NewRateLimiter(requestsPerMinute, burst int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*rate.Limiter),
		r:        rate.Limit(float64(requestsPerMinute) / 60.0),
		b:        burst,
		stop:     make(chan struct{}),
	}

	go rl.cleanupVisitors()

	return rl
}

// GetLimiter returns the rate limiter for the given IP
func (rl *RateLimiter) GetLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	limiter, exists := rl.visitors[ip]
	if !exists {
		limiter = rate.NewLimiter(rl.r, rl.b)
		rl.visitors[ip] = limiter
	}

	return limiter
}

// Close stops the cleanup goroutine.
func (rl *RateLimiter) Close() {
	rl.stopOnce.Do(func() { close(rl.stop) })
}

func (rl *RateLimiter) cleanupVisitors() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			rl.prune()
		}
	}
}

// prune drops limiters whose bucket has refilled, i.e. idle visitors.
func (rl *RateLimiter) prune() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	for ip, limiter := range rl.visitors {
		if limiter.Tokens() >= float64(rl.b) {
			delete(rl.visitors, ip)
		}
	}
}

// RateLimitMiddleware creates an Echo middleware for rate limiting
func (rl *RateLimiter) RateLimitMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = c.Request().RemoteAddr
			}

			if !rl.GetLimiter(ip).Allow() {
				return c.JSON(http.StatusTooManyRequests, models.ErrorResponse{
					Error:   "rate_limit_exceeded",
					Message: "Too many requests. Please try again later.",
				})
			}

			return next(c)
		}
	}
}

// PerEndpointRateLimiter applies separate limits per route, with a default
// for routes without a custom limit.
type PerEndpointRateLimiter struct {
	limiters map[string]*RateLimiter
	mu       sync.Mutex
	defaultR int
	defaultB int
}

// NewPerEndpointRateLimiter creates a per-route rate limiter.
func NewPerEndpointRateLimiter(requestsPerMinute, burst int) *PerEndpointRateLimiter {
	return &PerEndpointRateLimiter{
		limiters: make(map[string]*RateLimiter),
		defaultR: requestsPerMinute,
		defaultB: burst,
	}
}

// SetEndpointLimit sets a custom limit for "METHOD /route/:pattern".
func (perl *PerEndpointRateLimiter) SetEndpointLimit(endpoint string, requestsPerMinute, burst int) {
	perl.mu.Lock()
	defer perl.mu.Unlock()

	if old, ok := perl.limiters[endpoint]; ok {
		old.Close()
	}
	perl.limiters[endpoint] = NewRateLimiter(requestsPerMinute, burst)
}

func (perl *PerEndpointRateLimiter) limiter(endpoint string) *RateLimiter {
	perl.mu.Lock()
	defer perl.mu.Unlock()

	limiter, ok := perl.limiters[endpoint]
	if !ok {
		limiter = NewRateLimiter(perl.defaultR, perl.defaultB)
		perl.limiters[endpoint] = limiter
	}
	return limiter
}

// Close stops every underlying limiter.
func (perl *PerEndpointRateLimiter) Close() {
	perl.mu.Lock()
	defer perl.mu.Unlock()

	for _, l := range perl.limiters {
		l.Close()
	}
}

// RateLimitMiddleware creates middleware with endpoint-specific limits
func (perl *PerEndpointRateLimiter) RateLimitMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			endpoint := c.Request().Method + " " + c.Path()
			return perl.limiter(endpoint).RateLimitMiddleware()(next)(c)
		}
	}
}
