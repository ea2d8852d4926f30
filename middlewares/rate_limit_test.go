package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gin-pantry/constants"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newLimitedRouter(rl *RateLimiter) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		if id := ctx.GetHeader("X-Test-User"); id == "1" {
			ctx.Set(constants.ContextUserID, uint(1))
		} else if id == "2" {
			ctx.Set(constants.ContextUserID, uint(2))
		}
		ctx.Next()
	})
	router.GET("/generate", rl.Handler(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})
	return router
}

func request(router *gin.Engine, user string) int {
	req := httptest.NewRequest(http.MethodGet, "/generate", nil)
	if user != "" {
		req.Header.Set("X-Test-User", user)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimiter_RejectsAfterBurst(t *testing.T) {
	rl := NewRateLimiter(1, 2, zap.NewNop())
	router := newLimitedRouter(rl)

	assert.Equal(t, http.StatusOK, request(router, "1"))
	assert.Equal(t, http.StatusOK, request(router, "1"))
	assert.Equal(t, http.StatusTooManyRequests, request(router, "1"))

	assert.Equal(t, http.StatusOK, request(router, "2"))
	assert.Equal(t, http.StatusOK, request(router, ""))
	assert.Equal(t, 3, rl.Size())
}

func TestRateLimiter_Prune(t *testing.T) {
	rl := NewRateLimiter(60, 1, zap.NewNop())
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return now }
	router := newLimitedRouter(rl)

	request(router, "1")
	now = now.Add(20 * time.Minute)
	request(router, "2")
	now = now.Add(15 * time.Minute)

	assert.Equal(t, 1, rl.Prune(30*time.Minute))
	assert.Equal(t, 1, rl.Size())
	assert.Equal(t, 0, rl.Prune(30*time.Minute))
}
