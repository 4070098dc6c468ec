package domain

import "errors"

var (
	// ErrInvalidJSON is returned when imported text cannot be parsed as a
	// sessions document.
	ErrInvalidJSON = errors.New("invalid JSON format")
)
