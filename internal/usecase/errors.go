package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrDependencyUnavailable = errors.New("dependency unavailable")

	// ErrIdentityCollision reports a surrogate event id landing inside the
	// occupied id space. The allocation offset makes this structurally
	// impossible; seeing it means the offset is too small for the data
	// scale and the run must be treated as a programming error.
	ErrIdentityCollision = errors.New("surrogate id collision")
)
