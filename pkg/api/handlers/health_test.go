package handlers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/jordanlanch/nexuscrm/pkg/cache"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthHandler_Root(t *testing.T) {
	env := newTestEnv(t)
	h := NewHealthHandler(env.store, env.clock, "test", nil)
	c, rec := newContext(http.MethodGet, "/", "")

	require.NoError(t, h.Root(c))

	var body map[string]any
	decode(t, rec, &body)
	assert.Equal(t, "nexuscrm", body["name"])
	assert.Equal(t, "test", body["environment"])
	assert.Equal(t, float64(testNow.Unix()), body["timestamp"])
}

func TestHealthHandler_Health(t *testing.T) {
	t.Run("Success - redis up", func(t *testing.T) {
		env := newTestEnv(t)
		mr := miniredis.RunT(t)
		client := cache.New(redis.NewClient(&redis.Options{Addr: mr.Addr()}), logger.Nop())
		defer client.Close()

		h := NewHealthHandler(env.store, env.clock, "test", map[string]Pinger{"cache": client})
		c, rec := newContext(http.MethodGet, "/health", "")

		require.NoError(t, h.Health(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		var body map[string]any
		decode(t, rec, &body)
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "up", body["cache"])
		assert.Equal(t, float64(4), body["leads"])
	})

	t.Run("Error - dependency down", func(t *testing.T) {
		env := newTestEnv(t)
		h := NewHealthHandler(env.store, env.clock, "test", map[string]Pinger{
			"broker": failingPinger{err: errors.New("connection refused")},
		})
		c, rec := newContext(http.MethodGet, "/health", "")

		require.NoError(t, h.Health(c))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		var body map[string]any
		decode(t, rec, &body)
		assert.Equal(t, "unhealthy", body["status"])
		assert.Equal(t, "down", body["broker"])
	})
}
