// Package domain defines the value types shared by the pantry and the recipe book.
// It depends on nothing else in the module.
package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNullInput            = errors.New("required input is missing")
	ErrNotFound             = errors.New("not found")
	ErrDuplicateIdentity    = errors.New("duplicate identity")
	ErrInvalidValue         = errors.New("invalid value")
	ErrMissingField         = errors.New("missing field")
	ErrIncompatibleUnit     = errors.New("incompatible unit")
	ErrInsufficientQuantity = errors.New("insufficient quantity")
)
