// Package common defines shared constants and sentinel errors used across
// fitprogress components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Service-level errors (generic/internal flow control).
	ErrorInternal     = errors.New("internal error")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorForbidden    = errors.New("forbidden")

	// Validation errors, user-correctable.
	ErrUnrecognizedDateFormat = errors.New("unrecognized date format")
	ErrUnknownAngle           = errors.New("unknown photo angle")
	ErrDuplicateDateEntry     = errors.New("duplicate entry for date")
	ErrEmailAlreadyRegistered = errors.New("email already registered")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired        = errors.New("token expired")
	ErrRefreshTokenExpired = errors.New("refresh token expired")
)
