package bloom

import "errors"

// DefaultBits is the bitset capacity used by New.
const DefaultBits uint = 1024

var (
	ErrInvalidConfig      = errors.New("bloom: hash count and capacity must be positive")
	ErrIncompatibleFilter = errors.New("bloom: filters differ in capacity or hash count")
)
