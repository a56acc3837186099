// Package mem provides memory allocation utilities.
package mem

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the cache line size of the target architecture in bytes.
var CacheLineSize = int(unsafe.Sizeof(cpu.CacheLinePad{}))

// AllocSlice allocates a zeroed slice of n elements of T whose first element
// is aligned to CacheLineSize whenever the element size allows it.
//
// The slice is carved from a slightly larger Go allocation, so it stays fully
// visible to the garbage collector and T may contain pointers. Capacity is
// clamped to n so appends can never spill into the padding.
func AllocSlice[T any](n int) []T {
	if n <= 0 {
		return nil
	}

	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || CacheLineSize <= 1 {
		return make([]T, n)
	}

	extra := (CacheLineSize + size - 1) / size
	buf := make([]T, n+extra)

	for i := 0; i <= extra; i++ {
		addr := uintptr(unsafe.Pointer(&buf[i])) //nolint:gosec // address inspection only
		if addr%uintptr(CacheLineSize) == 0 {
			return buf[i : i+n : i+n]
		}
	}

	// Element size does not divide the cache line; no offset is aligned.
	return buf[:n:n]
}

// IsAligned reports whether the first element of s starts on a cache line.
func IsAligned[T any](s []T) bool {
	if len(s) == 0 {
		return false
	}
	addr := uintptr(unsafe.Pointer(&s[0])) //nolint:gosec // address inspection only
	return addr%uintptr(CacheLineSize) == 0
}
