package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
)

// ErrorHandler converts errors attached with c.Error into the JSON error
// envelope. Only the last error is reported. Errors that are not AppErrors
// are logged and answered with a generic INTERNAL_ERROR.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		log := logger.Named("http")

		var appErr *apperrors.AppError
		if !errors.As(err, &appErr) {
			log.Errorw("unexpected error",
				"error", err.Error(),
				"request_id", RequestID(c),
				"method", c.Request.Method,
				"path", c.Request.URL.Path,
			)
			appErr = apperrors.ErrInternalServer
		} else if appErr.Internal != nil {
			log.Errorw("app error",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"request_id", RequestID(c),
				"path", c.Request.URL.Path,
			)
		}

		c.JSON(appErr.StatusCode, gin.H{
			"error": gin.H{
				"code":    appErr.Code,
				"message": appErr.Message,
			},
		})
	}
}
