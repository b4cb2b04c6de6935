package models

import "errors"

// Outcomes the services return to their callers. Anything else is a store failure.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("already exists")
	ErrForbidden  = errors.New("forbidden")
	ErrNoChange   = errors.New("no fields to update")
	ErrValidation = errors.New("validation error")
)
