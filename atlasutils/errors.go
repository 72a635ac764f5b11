package atlasutils

import "github.com/pkg/errors"

var (
	// PowerOfTwoError is the error returned from CheckPow2 or other methods if the number being tested is not a power of two
	PowerOfTwoError error = errors.New("number must be a power of two")

	// ErrInvalidSize is returned when a region is requested with a zero extent on any axis
	ErrInvalidSize error = errors.New("region size must be positive on every axis")

	// ErrInvalidDimensions is returned when a page is created with a zero extent on any axis
	ErrInvalidDimensions error = errors.New("page dimensions must be positive on every axis")

	// ErrSizeMismatch is returned when a live handle is inserted again with a size that differs from
	// the size it was placed with. Handles must keep the same size for as long as they are live.
	ErrSizeMismatch error = errors.New("handle was requested with a different size than its live entry")
)
