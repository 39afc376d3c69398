package core

import (
	"errors"
)

var (
	ErrNilArgument     = errors.New("required argument is nil")
	ErrOutOfRange      = errors.New("index or length out of range")
	ErrNegativeRadius  = errors.New("radius must not be negative")
	ErrEmptySequence   = errors.New("sequence contains no elements")
	ErrInvalidBounds   = errors.New("minimum exceeds maximum")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidConfig   = errors.New("invalid configuration")
)
