package domain

import "errors"

// Domain errors.
var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrAmbiguousID   = errors.New("ambiguous task id")
	ErrEmptyText     = errors.New("text cannot be empty")
	ErrInvalidFilter = errors.New("invalid filter")
	ErrInvalidFormat = errors.New("invalid output format")
	ErrUnavailable   = errors.New("task service unavailable")
	ErrCacheEmpty    = errors.New("no cached tasks")
	ErrInvalidTask   = errors.New("invalid task record")
)
