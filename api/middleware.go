package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devutils/toolbelt/api/handlers"
	"github.com/devutils/toolbelt/logger"
	"github.com/devutils/toolbelt/ratelimit"
)

func loggingMiddleware(logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger.Info("request", "method", c.Request.Method, "path", c.Request.URL.Path)
		c.Next()
	}
}

func requestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set(handlers.CtxKeyRequestID, requestID)
		c.Header("X-Request-ID", requestID)
		c.Next()
	}
}

// rateLimitMiddleware charges every request against the client's fixed
// window before the handler runs. Denials answer 429 with a Retry-After
// header and never reach the handler.
func rateLimitMiddleware(limiter *ratelimit.Limiter, cfg ratelimit.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := limiter.Check(clientKey(c.Request), cfg)

		c.Set(handlers.CtxKeyRateLimit, handlers.RateLimitMeta{
			Limit:     result.Limit,
			Remaining: result.Remaining,
			Reset:     result.Reset,
		})
		c.Header("X-RateLimit-Limit", strconv.Itoa(result.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(result.Reset, 10))

		if !result.Allowed {
			c.Header("Retry-After", strconv.FormatInt(result.RetryAfter, 10))
			c.Abort()
			handlers.WriteError(c, http.StatusTooManyRequests, handlers.CodeRateLimited,
				"rate limit exceeded, try again later",
				map[string]any{"retryAfter": result.RetryAfter})
			return
		}

		c.Next()
	}
}

// clientKey derives the rate-limit bucket from the first X-Forwarded-For
// entry. Requests without the header all share the "unknown" bucket; that
// imprecision is accepted rather than guessed around.
func clientKey(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded == "" {
		return "unknown"
	}

	first := strings.TrimSpace(strings.Split(forwarded, ",")[0])
	if first == "" {
		return "unknown"
	}
	return first
}

// _CORSMiddleware starts with _ so that it is not imported outside of the server package.
func _CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, Authentication, accept, origin, Cache-Control, X-Requested-With") // nolint:lll
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)

			return
		}

		c.Next()
	}
}
