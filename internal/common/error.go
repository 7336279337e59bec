// Package common defines sentinel errors and small helpers shared across
// gophquiz components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrCorruptData = errors.New("corrupt data")

	// Service-level errors.
	ErrorInternal = errors.New("internal error")
	ErrForbidden  = errors.New("forbidden")
)
