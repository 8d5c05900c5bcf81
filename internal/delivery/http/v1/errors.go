package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dkoroteev/go-coachly/internal/services"
)

var (
	errInvalidRequestBody      = errors.New("invalid request body")
	errMandatoryCookieNotFound = errors.New("mandatory cookie not found")
)

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func newAPIError(code int, message string) apiError {
	return apiError{
		Code:    code,
		Message: message,
	}
}

func (e apiError) Error() string {
	return e.Message
}

func abort(c *gin.Context, err apiError) {
	c.AbortWithStatusJSON(err.Code, gin.H{"error": err.Message})
}

func newStatusTextError(status int) apiError {
	return newAPIError(status, http.StatusText(status))
}

func newBadRequestError(message string) apiError {
	return newAPIError(http.StatusBadRequest, message)
}

func newUnauthorizedError(message string) apiError {
	return newAPIError(http.StatusUnauthorized, message)
}

func newNotFoundError(message string) apiError {
	return newAPIError(http.StatusNotFound, message)
}

func newConflictError(message string) apiError {
	return newAPIError(http.StatusConflict, message)
}

// abortWithServiceError maps a service failure onto the API's error
// taxonomy: invalid input is 400, a missing or foreign record is 404,
// and a timed-out backend call is 503 so clients know to retry.
func abortWithServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrReminderTitleRequired),
		errors.Is(err, services.ErrReminderDateTimeInvalid),
		errors.Is(err, services.ErrInvalidNotificationMethod),
		errors.Is(err, services.ErrInvalidReminderType),
		errors.Is(err, services.ErrGoalTitleRequired),
		errors.Is(err, services.ErrGoalProgressInvalid),
		errors.Is(err, services.ErrMessageContentMissing):
		abort(c, newBadRequestError(err.Error()))

	case errors.Is(err, services.ErrReminderNotFound),
		errors.Is(err, services.ErrGoalNotFound),
		errors.Is(err, services.ErrCheckInNotFound),
		errors.Is(err, services.ErrProfileNotFound):
		abort(c, newNotFoundError(err.Error()))

	case errors.Is(err, services.ErrSessionNotFound),
		errors.Is(err, services.ErrSessionExpired):
		abort(c, newUnauthorizedError(err.Error()))

	case errors.Is(err, context.DeadlineExceeded):
		c.Header("Retry-After", "1")
		abort(c, newStatusTextError(http.StatusServiceUnavailable))

	default:
		abort(c, newStatusTextError(http.StatusInternalServerError))
	}
}
