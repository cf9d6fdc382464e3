// Package common defines shared constants and sentinel errors used across
// r2vault components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal          = errors.New("internal error")
	ErrorValidation        = errors.New("validation error")
	ErrorInvalidCredential = errors.New("invalid credential")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")

	// Token lifecycle errors.
	ErrTokenExpired = errors.New("token expired")
)
