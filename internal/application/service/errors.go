package service

import "errors"

var (
	// ErrNotFound is returned when the requested entity does not exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput is returned when a request fails field validation
	ErrInvalidInput = errors.New("invalid input")
)
