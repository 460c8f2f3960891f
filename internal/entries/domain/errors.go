package domain

import "errors"

var (
	ErrInvalidEntry = errors.New("invalid entry: content must be a JSON object")
	ErrNoStore      = errors.New("entry store is not configured")

	ErrIntegerOverflow = errors.New("integer does not fit in 64 bits")
)
