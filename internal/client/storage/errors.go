package storage

import "errors"

// Common client storage errors
var (
	// ErrAuthNotFound indicates that no session data exists
	ErrAuthNotFound = errors.New("authentication data not found")

	// ErrProfileNotFound indicates that no cached profile exists
	ErrProfileNotFound = errors.New("cached profile not found")

	// ErrConfigNotFound indicates that a config value was never saved
	ErrConfigNotFound = errors.New("config value not found")

	// ErrPartialTokenPair indicates an attempt to persist an incomplete pair
	ErrPartialTokenPair = errors.New("token pair must be stored whole")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
