package services

import "github.com/pkg/errors"

// Sentinel outcomes the controllers translate into user-facing pages.
// Store faults are anything else and pass through wrapped.
var (
	ErrNotFound         = errors.New("entity not found")
	ErrEmailTaken       = errors.New("user with this email already exists")
	ErrInvalidEmail     = errors.New("email address is not valid")
	ErrWrongCredentials = errors.New("email or password is incorrect")
)
