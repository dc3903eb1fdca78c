package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimiter_Allow(t *testing.T) {
	config := RateLimiterConfig{
		RequestsPerSecond: 2.0,
		BurstSize:         3,
		CleanupInterval:   1 * time.Minute,
	}

	rl := NewRateLimiter(config)
	defer rl.Stop()

	clientID := "test-client-1"

	// First 3 requests should succeed (burst)
	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow(clientID), "request %d should be allowed (within burst)", i+1)
	}

	// 4th request should fail (burst exhausted)
	assert.False(t, rl.Allow(clientID), "request 4 should be denied (burst exhausted)")

	// Wait for tokens to refill (500ms = 1 token at 2/sec)
	time.Sleep(550 * time.Millisecond)

	assert.True(t, rl.Allow(clientID), "request should be allowed after token refill")
}

func TestRateLimiter_DifferentClients(t *testing.T) {
	config := RateLimiterConfig{
		RequestsPerSecond: 1.0,
		BurstSize:         2,
		CleanupInterval:   1 * time.Minute,
	}

	rl := NewRateLimiter(config)
	defer rl.Stop()

	client1 := "client-1"
	client2 := "client-2"

	// Each client has an independent budget
	for i := 0; i < 2; i++ {
		assert.True(t, rl.Allow(client1), "client 1 request %d should be allowed", i+1)
		assert.True(t, rl.Allow(client2), "client 2 request %d should be allowed", i+1)
	}

	assert.False(t, rl.Allow(client1), "client 1 should be rate limited")
	assert.False(t, rl.Allow(client2), "client 2 should be rate limited")
}

func TestRateLimiter_Cleanup(t *testing.T) {
	config := RateLimiterConfig{
		RequestsPerSecond: 10.0,
		BurstSize:         10,
		CleanupInterval:   100 * time.Millisecond,
	}

	rl := NewRateLimiter(config)
	defer rl.Stop()

	rl.Allow("client-1")
	rl.Allow("client-2")
	rl.Allow("client-3")

	require.Equal(t, 3, rl.GetLimiterCount())

	// Wait past the cleanup interval, then clean
	time.Sleep(150 * time.Millisecond)
	rl.cleanup()

	assert.Equal(t, 0, rl.GetLimiterCount(), "idle limiters should be removed")
}

func TestRateLimiter_PreservesActiveLimiters(t *testing.T) {
	config := RateLimiterConfig{
		RequestsPerSecond: 10.0,
		BurstSize:         10,
		CleanupInterval:   100 * time.Millisecond,
	}

	rl := NewRateLimiter(config)
	defer rl.Stop()

	rl.Allow("client-1")
	time.Sleep(60 * time.Millisecond)

	// refresh last seen
	rl.Allow("client-1")
	time.Sleep(60 * time.Millisecond)

	rl.cleanup()

	assert.Equal(t, 1, rl.GetLimiterCount(), "recently used limiter should survive cleanup")
}

func TestRateLimiter_BurstRecovery(t *testing.T) {
	config := RateLimiterConfig{
		RequestsPerSecond: 10.0, // 100ms per token
		BurstSize:         5,
		CleanupInterval:   1 * time.Minute,
	}

	rl := NewRateLimiter(config)
	defer rl.Stop()

	clientID := "test-client"

	for i := 0; i < 5; i++ {
		assert.True(t, rl.Allow(clientID), "request %d should be allowed (burst)", i+1)
	}
	assert.False(t, rl.Allow(clientID), "should be rate limited after burst")

	// Wait for partial recovery (220ms = 2 tokens)
	time.Sleep(220 * time.Millisecond)

	successCount := 0
	for i := 0; i < 3; i++ {
		if rl.Allow(clientID) {
			successCount++
		}
	}
	assert.Equal(t, 2, successCount, "expected 2 tokens after partial recovery")
}

func TestGinMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	config := RateLimiterConfig{
		RequestsPerSecond: 1.0,
		BurstSize:         2,
		CleanupInterval:   1 * time.Minute,
	}
	rl := NewRateLimiter(config)
	defer rl.Stop()

	router := gin.New()
	router.Use(rl.GinMiddleware())
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	doRequest := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = "10.0.0.1:12345"
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, doRequest())
	assert.Equal(t, http.StatusOK, doRequest())
	assert.Equal(t, http.StatusTooManyRequests, doRequest(), "burst exhausted")
}

func BenchmarkRateLimiter_Allow(b *testing.B) {
	rl := NewRateLimiter(DefaultRateLimiterConfig)
	defer rl.Stop()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		rl.Allow("benchmark-client")
	}
}
