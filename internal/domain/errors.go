package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrValidation marks input rejected before any state change.
	ErrValidation = errors.New("validation failed")
	// ErrForbidden indicates the acting role may not perform the operation.
	ErrForbidden = errors.New("forbidden")
)
