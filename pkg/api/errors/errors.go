package errors

import (
	stderrors "errors"
	"net/http"

	"github.com/jordanlanch/nexuscrm/pkg/domain"
	"github.com/jordanlanch/nexuscrm/pkg/logger"
	"github.com/jordanlanch/nexuscrm/pkg/models"
	"github.com/labstack/echo/v4"
)

var log = logger.Default()

// SetLogger replaces the logger used to record internal error details.
func SetLogger(l logger.Logger) {
	if l != nil {
		log = l
	}
}

// Respond writes the JSON error response matching a domain error. Messages of
// client errors are returned as-is; internal errors are logged and replaced by
// a generic message.
func Respond(c echo.Context, err error) error {
	var de *domain.DomainError
	if !stderrors.As(err, &de) {
		return InternalError(c, err)
	}

	switch de.Code {
	case domain.ErrCodeNotFound:
		return NotFoundError(c, de.Message)
	case domain.ErrCodeValidation:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "validation_error",
			Message: de.Message,
		})
	case domain.ErrCodeBadRequest:
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "bad_request",
			Message: de.Message,
		})
	case domain.ErrCodeUnauthorized:
		return UnauthorizedError(c, de.Message)
	case domain.ErrCodeUnavailable:
		return UnavailableError(c, err)
	default:
		return InternalError(c, err)
	}
}

// ValidationError returns a generic validation error without exposing internal details
func ValidationError(c echo.Context, err error) error {
	log.Warn("invalid request", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Error:   "validation_error",
		Message: "Invalid request data. Please check your input and try again.",
	})
}

// InternalError returns a generic internal server error
func InternalError(c echo.Context, err error) error {
	log.Error("internal error", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Error:   "internal_error",
		Message: "An internal error occurred. Please try again later.",
	})
}

// UnavailableError reports a failing downstream service
func UnavailableError(c echo.Context, err error) error {
	log.Error("service unavailable", "path", c.Request().URL.Path, "error", err)

	return c.JSON(http.StatusServiceUnavailable, models.ErrorResponse{
		Error:   "service_unavailable",
		Message: "A required service is unavailable. Please try again later.",
	})
}

// UnauthorizedError returns an unauthorized error
func UnauthorizedError(c echo.Context, message string) error {
	return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}

// NotFoundError returns a not found error
func NotFoundError(c echo.Context, message string) error {
	return c.JSON(http.StatusNotFound, models.ErrorResponse{
		Error:   "not_found",
		Message: message,
	})
}
