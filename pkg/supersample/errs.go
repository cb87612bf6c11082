package supersample

import "errors"

var (
	// ErrInvalidConfig indicates a sample count below 1 or a non-positive
	// exposure time at construction.
	ErrInvalidConfig = errors.New("supersample: invalid configuration")

	// ErrLengthMismatch indicates that the number of values passed to
	// Average is not a multiple of the sample count.
	ErrLengthMismatch = errors.New("supersample: length mismatch")
)
