package models

import (
	"errors"
	"fmt"
)

// Common errors
var (
	ErrPersonNotFound   = errors.New("person not found")
	ErrInvalidPersonID  = errors.New("invalid person ID format")
	ErrPersonIDRequired = errors.New("person ID is required")
)

// ValidationError reports a single invalid input field
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// DuplicateKeyError is returned when a write would break a uniqueness constraint
type DuplicateKeyError struct {
	Field string
	Value string
	Err   error
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("duplicate key error: %s %q already exists", e.Field, e.Value)
}

func (e *DuplicateKeyError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err means the requested person does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPersonNotFound)
}
