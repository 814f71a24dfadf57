package common

import "errors"

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrValidation means a mutation was rejected and state is unchanged:
	// empty required field, non-positive amount, blank post text.
	ErrValidation = errors.New("validation error")

	// ErrNotAuthenticated means the action needs a signed-in identity.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrMalformed means stored or imported data did not parse as a
	// snapshot document. Nothing is applied.
	ErrMalformed = errors.New("malformed snapshot")
)
