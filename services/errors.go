package services

import (
	"errors"
	"strings"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrMalformedEstimation = errors.New("malformed estimation")
	ErrUpstream            = errors.New("reasoning service call failed")
	ErrProfileNotFound     = errors.New("profile not found")
)

// ValidationError lists the required inputs that were missing or invalid.
type ValidationError struct {
	Fields []string
	Msg    string
}

func (e *ValidationError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return "missing required fields: " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func missing(fields ...string) error {
	return &ValidationError{Fields: fields}
}

func invalid(field, msg string) error {
	return &ValidationError{Fields: []string{field}, Msg: msg}
}
