package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
)

const apiVersion = "1.0.0"

// Error codes surfaced in the response envelope.
const (
	CodeValidationError = "VALIDATION_ERROR"
	CodeNotFound        = "NOT_FOUND"
	CodeTransformError  = "TRANSFORM_ERROR"
	CodeRateLimited     = "RATE_LIMIT_EXCEEDED"
)

// Gin context keys populated by middleware and echoed back in Meta.
const (
	CtxKeyRequestID = "request_id"
	CtxKeyRateLimit = "rate_limit"
)

// Response is the envelope every API route answers with. Exactly one of Data
// and Error is set.
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data"`
	Error   *ErrorBody `json:"error"`
	Meta    Meta       `json:"meta"`
}

type ErrorBody struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type Meta struct {
	Timestamp string         `json:"timestamp"`
	Version   string         `json:"version"`
	RequestID string         `json:"requestId,omitempty"`
	RateLimit *RateLimitMeta `json:"rateLimit,omitempty"`
}

type RateLimitMeta struct {
	Limit     int   `json:"limit"`
	Remaining int   `json:"remaining"`
	Reset     int64 `json:"reset"`
}

func WriteSuccess(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    buildMeta(c),
	})
}

func WriteError(c *gin.Context, statusCode int, code string, message string, details map[string]any) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &ErrorBody{
			Code:    code,
			Message: message,
			Details: details,
		},
		Meta: buildMeta(c),
	})
}

func buildMeta(c *gin.Context) Meta {
	meta := Meta{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Version:   apiVersion,
	}
	if id, ok := c.Get(CtxKeyRequestID); ok {
		meta.RequestID, _ = id.(string)
	}
	if value, ok := c.Get(CtxKeyRateLimit); ok {
		if rateLimit, ok := value.(RateLimitMeta); ok {
			meta.RateLimit = &rateLimit
		}
	}

	return meta
}
