// Package httpapi exposes the REST API over Gin: authentication, body
// measurements, progress photos and the comparison grid.
package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"fitprogress/internal/common"
)

// statusFor translates service-layer sentinel errors into HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, common.ErrUnrecognizedDateFormat),
		errors.Is(err, common.ErrUnknownAngle):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrorUnauthorized),
		errors.Is(err, common.ErrInvalidToken),
		errors.Is(err, common.ErrTokenExpired),
		errors.Is(err, common.ErrRefreshTokenExpired):
		return http.StatusUnauthorized
	case errors.Is(err, common.ErrorForbidden):
		return http.StatusForbidden
	case errors.Is(err, common.ErrorNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrDuplicateDateEntry),
		errors.Is(err, common.ErrEmailAlreadyRegistered):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		// internal details stay in the logs
		msg = "internal error"
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}
