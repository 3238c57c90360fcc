package utils

import "errors"

var (
	ErrInvalidCoordinates   = errors.New("invalid coordinates")
	ErrPlaceNotFound        = errors.New("place not found")
	ErrProviderUnavailable  = errors.New("place provider unavailable")
	ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")
	ErrAccountNotFound      = errors.New("account not found")
	ErrEmailAlreadyExists   = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrDatabaseError        = errors.New("database error")
)
