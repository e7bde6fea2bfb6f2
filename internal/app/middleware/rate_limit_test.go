package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/dajor/bewirtungsbeleg-sub002/pkg/config"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/logger"
	"github.com/dajor/bewirtungsbeleg-sub002/pkg/ratelimit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	logger.InitLogger(&config.Config{Log: config.LogConfig{Level: "error"}})
	os.Exit(m.Run())
}

func newLimitedRouter(cfg *config.RateLimitConfig) *gin.Engine {
	router := gin.New()
	router.POST("/send", EmailRateLimit(ratelimit.NewMemoryLimiter(), cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return router
}

func hit(router *gin.Engine) int {
	req := httptest.NewRequest(http.MethodPost, "/send", nil)
	req.RemoteAddr = "203.0.113.7:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestEmailRateLimitBlocksAfterLimit(t *testing.T) {
	router := newLimitedRouter(&config.RateLimitConfig{
		Enabled:     true,
		EmailLimit:  3,
		EmailWindow: 60,
	})

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(router))
	}

	assert.Equal(t, http.StatusTooManyRequests, hit(router))
}

func TestEmailRateLimitDisabled(t *testing.T) {
	router := newLimitedRouter(&config.RateLimitConfig{
		Enabled:     false,
		EmailLimit:  1,
		EmailWindow: 60,
	})

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, hit(router))
	}
}

func TestEmailRateLimitPerClient(t *testing.T) {
	router := newLimitedRouter(&config.RateLimitConfig{
		Enabled:     true,
		EmailLimit:  1,
		EmailWindow: 60,
	})

	first := httptest.NewRequest(http.MethodPost, "/send", nil)
	first.RemoteAddr = "198.51.100.1:1234"
	w := httptest.NewRecorder()
	router.ServeHTTP(w, first)
	assert.Equal(t, http.StatusOK, w.Code)

	// a different client IP has its own window
	second := httptest.NewRequest(http.MethodPost, "/send", nil)
	second.RemoteAddr = "198.51.100.2:1234"
	w = httptest.NewRecorder()
	router.ServeHTTP(w, second)
	assert.Equal(t, http.StatusOK, w.Code)
}
