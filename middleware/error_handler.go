package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/AsbestosServicesHampshire/ash-backend/errors"
	"github.com/AsbestosServicesHampshire/ash-backend/logger"
	"github.com/AsbestosServicesHampshire/ash-backend/types"
	"github.com/gin-gonic/gin"
)

// ErrorHandler converts the last error attached to the context into the wire
// error shape `{"error": "<message>"}`. Validation messages pass through
// verbatim; everything else collapses to a generic retry-or-call message with
// the real cause logged server-side only.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Capture stack trace before Next() to preserve the full call stack
		stackTrace := debug.Stack()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		log := logger.GetLogger()

		metadata := map[string]interface{}{
			"path":        c.Request.URL.Path,
			"method":      c.Request.Method,
			"client_ip":   c.ClientIP(),
			"user_agent":  c.Request.UserAgent(),
			"stack_trace": string(stackTrace),
		}

		// Handle AppError
		if appError, ok := err.(*errors.AppError); ok {
			statusCode := appError.GetHTTPStatus()

			metadata["error_type"] = string(appError.Type)
			metadata["error_message"] = appError.Message
			if appError.Detail != "" {
				metadata["error_detail"] = appError.Detail
			}
			logger.LogHTTPError(c, err, statusCode, fmt.Sprintf("%s error", appError.Type))

			message := appError.Message
			if statusCode >= 500 {
				// Never expose the underlying cause of a server failure.
				message = "Something went wrong. Please try again or call us directly."
			}

			c.JSON(statusCode, types.ErrorResponse{Error: message})
			return
		}

		// Handle Gin binding errors - which come as public errors
		if c.Errors.Last().Type == gin.ErrorTypeBind || c.Errors.Last().Type == gin.ErrorTypePublic {
			logger.LogHTTPError(c, err, 400, "Request binding error")
			c.JSON(400, types.ErrorResponse{Error: "Please fill in all required fields."})
			return
		}

		// Handle unknown errors
		logger.LogHTTPError(c, err, 500, "Unexpected server error")
		log.Errorw("Unhandled error", "error", err)
		c.JSON(500, types.ErrorResponse{Error: "Something went wrong. Please try again or call us directly."})
	}
}
