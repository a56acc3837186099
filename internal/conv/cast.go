package conv

import (
	"fmt"
	"math"
	"unsafe"
)

// Unsigned is the set of integer types usable as counters and keys.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// BitWidth returns the number of bits in T.
func BitWidth[T Unsigned]() int {
	var zero T
	return int(unsafe.Sizeof(zero)) * 8
}

// MaxOf returns the largest value representable by T, widened to uint64.
func MaxOf[T Unsigned]() uint64 {
	var zero T
	return uint64(^zero)
}

// IntTo converts a non-negative int to T, failing if it does not fit.
func IntTo[T Unsigned](v int) (T, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint%d (negative)", v, BitWidth[T]())
	}
	if uint64(v) > MaxOf[T]() {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint%d (too large)", v, BitWidth[T]())
	}
	return T(v), nil
}

// ToInt converts an unsigned value to int, failing if it exceeds math.MaxInt.
func ToInt[T Unsigned](v T) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", uint64(v))
	}
	return int(v), nil
}
