package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/pageza/repas/backend/internal/errors"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Code      apperrors.ErrorCode `json:"code"`
	Message   string              `json:"message"`
	RequestID string              `json:"request_id,omitempty"`
	Retryable bool                `json:"retryable"`
}

// StatusFor maps an error code to its HTTP status
func StatusFor(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case apperrors.ErrCodeGenerationFailed:
		return http.StatusBadGateway
	case apperrors.ErrCodeRateLimitExceeded:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

func retryable(code apperrors.ErrorCode) bool {
	switch code {
	case apperrors.ErrCodeGenerationFailed, apperrors.ErrCodeRateLimitExceeded, apperrors.ErrCodeInternal:
		return true
	default:
		return false
	}
}

// WriteError aborts the request with the JSON error reply for err. Errors
// without a code are reported as internal errors and their text is only
// logged. Upstream causes are never sent to the client.
func WriteError(c *gin.Context, err error) {
	code := apperrors.CodeOf(err)
	status := StatusFor(code)

	message := "Internal server error"
	var se *apperrors.StructuredError
	if errors.As(err, &se) && code != apperrors.ErrCodeInternal {
		message = se.Message
		if se.Cause != nil && code != apperrors.ErrCodeGenerationFailed {
			message = fmt.Sprintf("%s: %v", se.Message, se.Cause)
		}
	}

	if status >= http.StatusInternalServerError {
		slog.Error("request failed",
			"requestID", GetRequestID(c),
			"path", c.Request.URL.Path,
			"code", code,
			"error", err,
		)
	}

	c.AbortWithStatusJSON(status, ErrorResponse{
		Code:      code,
		Message:   message,
		RequestID: GetRequestID(c),
		Retryable: retryable(code),
	})
}

// Recovery turns a panic in a handler into an INTERNAL_ERROR reply
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		panicRecoveries.Inc()
		slog.Error("panic recovered",
			"error", fmt.Sprintf("%v", recovered),
			"requestID", GetRequestID(c),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		WriteError(c, apperrors.New(apperrors.ErrCodeInternal, "internal server error"))
	})
}
