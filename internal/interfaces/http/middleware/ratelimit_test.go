package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	t.Run("allows requests within limit", func(t *testing.T) {
		limiter := NewRateLimiter(5, time.Minute)

		for i := 0; i < 5; i++ {
			assert.True(t, limiter.Allow("client1"), "request %d should be allowed", i+1)
		}
	})

	t.Run("blocks requests exceeding limit", func(t *testing.T) {
		limiter := NewRateLimiter(3, time.Minute)

		for i := 0; i < 3; i++ {
			assert.True(t, limiter.Allow("client2"))
		}

		assert.False(t, limiter.Allow("client2"))
	})

	t.Run("separate limits per client", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute)

		assert.True(t, limiter.Allow("clientA"))
		assert.True(t, limiter.Allow("clientA"))
		assert.False(t, limiter.Allow("clientA"))

		// clientB should still have tokens
		assert.True(t, limiter.Allow("clientB"))
		assert.True(t, limiter.Allow("clientB"))
	})

	t.Run("resets after window", func(t *testing.T) {
		limiter := NewRateLimiter(2, 50*time.Millisecond)

		assert.True(t, limiter.Allow("client3"))
		assert.True(t, limiter.Allow("client3"))
		assert.False(t, limiter.Allow("client3"))

		time.Sleep(60 * time.Millisecond)

		assert.True(t, limiter.Allow("client3"))
	})

	t.Run("remaining returns correct count", func(t *testing.T) {
		limiter := NewRateLimiter(5, time.Minute)

		assert.Equal(t, 5, limiter.Remaining("newclient"))

		limiter.Allow("newclient")
		limiter.Allow("newclient")

		assert.Equal(t, 3, limiter.Remaining("newclient"))
	})

	t.Run("concurrent access is safe", func(t *testing.T) {
		limiter := NewRateLimiter(100, time.Minute)
		var wg sync.WaitGroup
		allowed := 0
		var mu sync.Mutex

		for i := 0; i < 150; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				if limiter.Allow("concurrent-client") {
					mu.Lock()
					allowed++
					mu.Unlock()
				}
			}()
		}

		wg.Wait()
		assert.Equal(t, 100, allowed)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("allows requests under the limit", func(t *testing.T) {
		limiter := NewRateLimiter(2, time.Minute)

		router := gin.New()
		router.Use(RateLimit(limiter))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	})

	t.Run("rejects requests over the limit", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)

		router := gin.New()
		router.Use(RateLimit(limiter))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		req1 := httptest.NewRequest(http.MethodGet, "/test", nil)
		w1 := httptest.NewRecorder()
		router.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)

		req2 := httptest.NewRequest(http.MethodGet, "/test", nil)
		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)
		assert.Contains(t, w2.Body.String(), "RATE_LIMIT_EXCEEDED")
	})

	t.Run("custom key extractor", func(t *testing.T) {
		limiter := NewRateLimiter(1, time.Minute)

		router := gin.New()
		router.Use(RateLimitByKey(limiter, func(c *gin.Context) string {
			return c.GetHeader("X-API-Key")
		}))
		router.GET("/test", func(c *gin.Context) {
			c.String(http.StatusOK, "ok")
		})

		// First key exhausts its limit
		req1 := httptest.NewRequest(http.MethodGet, "/test", nil)
		req1.Header.Set("X-API-Key", "key-one")
		w1 := httptest.NewRecorder()
		router.ServeHTTP(w1, req1)
		assert.Equal(t, http.StatusOK, w1.Code)

		req2 := httptest.NewRequest(http.MethodGet, "/test", nil)
		req2.Header.Set("X-API-Key", "key-one")
		w2 := httptest.NewRecorder()
		router.ServeHTTP(w2, req2)
		assert.Equal(t, http.StatusTooManyRequests, w2.Code)

		// A different key still passes
		req3 := httptest.NewRequest(http.MethodGet, "/test", nil)
		req3.Header.Set("X-API-Key", "key-two")
		w3 := httptest.NewRecorder()
		router.ServeHTTP(w3, req3)
		assert.Equal(t, http.StatusOK, w3.Code)
	})
}
