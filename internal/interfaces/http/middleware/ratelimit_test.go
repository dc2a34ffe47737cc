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

func TestRateLimiter_AllowWithinLimit(t *testing.T) {
	rl := NewRateLimiter(3, time.Minute)

	assert.True(t, rl.Allow("user-1"))
	assert.True(t, rl.Allow("user-1"))
	assert.True(t, rl.Allow("user-1"))
	assert.False(t, rl.Allow("user-1"))
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	rl := NewRateLimiter(1, time.Minute)

	assert.True(t, rl.Allow("user-1"))
	assert.False(t, rl.Allow("user-1"))
	assert.True(t, rl.Allow("user-2"))
}

func TestRateLimiter_WindowRefillsBucket(t *testing.T) {
	rl := NewRateLimiter(1, 20*time.Millisecond)

	require.True(t, rl.Allow("user-1"))
	require.False(t, rl.Allow("user-1"))

	time.Sleep(30 * time.Millisecond)
	assert.True(t, rl.Allow("user-1"))
}

func TestRateLimiter_Remaining(t *testing.T) {
	rl := NewRateLimiter(5, time.Minute)

	assert.Equal(t, 5, rl.Remaining("user-1"))
	rl.Allow("user-1")
	rl.Allow("user-1")
	assert.Equal(t, 3, rl.Remaining("user-1"))
}

func newRateLimitedEngine(limit int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(RateLimit(NewRateLimiter(limit, time.Minute)))
	engine.GET("/api/v1/advisor/metrics", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return engine
}

func TestRateLimit_Returns429PastLimit(t *testing.T) {
	engine := newRateLimitedEngine(2)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/advisor/metrics", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/advisor/metrics", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "RATE_LIMIT_EXCEEDED")
}

func TestRateLimit_SetsBudgetHeaders(t *testing.T) {
	engine := newRateLimitedEngine(10)

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/advisor/metrics", nil))

	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", w.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_ScopesBudgetToAuthenticatedUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()

	// Simulate the JWT middleware having identified two different users
	// behind the same client address.
	user := "user-a"
	engine.Use(func(c *gin.Context) {
		c.Set(JWTUserIDKey, user)
		c.Next()
	})
	engine.Use(RateLimit(NewRateLimiter(1, time.Minute)))
	engine.GET("/api/v1/assets", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	user = "user-b"
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/assets", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
