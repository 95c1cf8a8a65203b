package domain

import "errors"

// Common domain errors
var (
	ErrInvalidID    = errors.New("invalid id")
	ErrDuplicateKey = errors.New("duplicate key")
)
