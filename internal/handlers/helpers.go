package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apperrors "budgetly/internal/errors"
	"budgetly/internal/logger"
	"budgetly/internal/models"
)

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// parseIndex parses an integer path parameter. Range checks are left to the
// service so out-of-range positions report INDEX_OUT_OF_RANGE.
func parseIndex(c *gin.Context, param string) (int, error) {
	idx, err := strconv.Atoi(c.Param(param))
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return idx, nil
}

// parseToday reads the optional "today" query parameter (YYYY-MM-DD or
// RFC 3339). It defaults to the current time.
func parseToday(c *gin.Context) (time.Time, error) {
	v := c.Query("today")
	if v == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	d, err := models.ParseDate(v)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidInput, "today must be YYYY-MM-DD or an RFC 3339 timestamp")
	}
	return d.Time, nil
}

// bindError converts a binding failure into an INVALID_INPUT error.
func bindError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error())
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	log := logger.Named("http")

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			log.Errorw("app error",
				"code", appErr.Code,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		c.JSON(appErr.StatusCode, ErrorResponse{Error: ErrorDetail{Code: appErr.Code, Message: appErr.Message}})
		return
	}

	log.Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	c.JSON(apperrors.ErrInternalServer.StatusCode, ErrorResponse{
		Error: ErrorDetail{Code: apperrors.ErrInternalServer.Code, Message: apperrors.ErrInternalServer.Message},
	})
}
