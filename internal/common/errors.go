// Package common defines shared constants and sentinel errors used across
// the Digital Diary server layers. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")

	// Data-store client errors. ErrTimeout marks a call that exceeded its
	// per-call budget, as opposed to a downstream HTTP/SQL failure.
	ErrTimeout = errors.New("store call timed out")

	// Service-level errors.
	ErrInternal     = errors.New("internal error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrValidation   = errors.New("validation error")

	// Auth errors (invalid or malformed token).
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)
