package middleware

import (
	"errors"
	"net/http"

	"talent-hub-backend/internal/delivery/http/response"
	"talent-hub-backend/pkg/apperror"
	"talent-hub-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		reqID := c.GetString("RequestID")

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed", "request_id", reqID, "path", c.FullPath(), "error", appErr.Err)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Unhandled error", "request_id", reqID, "path", c.FullPath(), "error", err)
		response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
	}
}
