package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrAccessDenied          = errors.New("access denied")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
	ErrStorageFailure        = errors.New("storage failure")
)
