package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/devutils/toolbelt/api/handlers"
	"github.com/devutils/toolbelt/ratelimit"
)

func newRateLimitedRouter(limiter *ratelimit.Limiter, cfg ratelimit.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(requestIDMiddleware(), rateLimitMiddleware(limiter, cfg))
	router.GET("/ping", func(c *gin.Context) {
		handlers.WriteSuccess(c, http.StatusOK, "pong")
	})
	return router
}

func doPing(router *gin.Engine, forwardedFor string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/ping", nil)
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
	}
	router.ServeHTTP(w, req)
	return w
}

func TestRateLimitMiddlewareAllowsThenDenies(t *testing.T) {
	assert := require.New(t)

	clock := time.Unix(1_700_000_000, 0)
	limiter := ratelimit.NewWithClock(func() time.Time { return clock })
	router := newRateLimitedRouter(limiter, ratelimit.Config{Limit: 2, Window: time.Minute})

	first := doPing(router, "10.0.0.1")
	assert.Equal(http.StatusOK, first.Code)
	assert.Equal("2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal("1", first.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(first.Header().Get("X-Request-ID"))

	second := doPing(router, "10.0.0.1")
	assert.Equal(http.StatusOK, second.Code)
	assert.Equal("0", second.Header().Get("X-RateLimit-Remaining"))

	third := doPing(router, "10.0.0.1")
	assert.Equal(http.StatusTooManyRequests, third.Code)
	assert.Equal("60", third.Header().Get("Retry-After"))

	var response handlers.Response
	assert.NoError(json.Unmarshal(third.Body.Bytes(), &response))
	assert.False(response.Success)
	assert.Equal(handlers.CodeRateLimited, response.Error.Code)
	assert.EqualValues(60, response.Error.Details["retryAfter"])
	assert.NotNil(response.Meta.RateLimit)
	assert.Equal(0, response.Meta.RateLimit.Remaining)
}

func TestRateLimitMiddlewareKeysClientsSeparately(t *testing.T) {
	assert := require.New(t)

	limiter := ratelimit.New()
	router := newRateLimitedRouter(limiter, ratelimit.Config{Limit: 1, Window: time.Minute})

	assert.Equal(http.StatusOK, doPing(router, "10.0.0.1").Code)
	assert.Equal(http.StatusTooManyRequests, doPing(router, "10.0.0.1").Code)

	// A different client still has quota.
	assert.Equal(http.StatusOK, doPing(router, "10.0.0.2").Code)

	// No header at all collapses onto the shared "unknown" bucket.
	assert.Equal(http.StatusOK, doPing(router, "").Code)
	assert.Equal(http.StatusTooManyRequests, doPing(router, "").Code)
}

func TestClientKey(t *testing.T) {
	assert := require.New(t)

	req, _ := http.NewRequest(http.MethodGet, "/", nil)
	assert.Equal("unknown", clientKey(req))

	req.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	assert.Equal("1.2.3.4", clientKey(req))

	req.Header.Set("X-Forwarded-For", " , 5.6.7.8")
	assert.Equal("unknown", clientKey(req))
}
