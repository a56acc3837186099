package workspace

import (
	"unsafe"

	"github.com/hupe1980/bucketsort/bucketarray"
)

// Sizing describes the memory footprint of one workspace set.
type Sizing struct {
	Buckets    int
	Capacity   int
	KeyBytes   int
	ValueBytes int
}

// Layout returns the sizing for sets of S keys and V values.
func Layout[S bucketarray.KeyStorage, V any](buckets, capacity int) Sizing {
	var (
		s S
		v V
	)
	return Sizing{
		Buckets:    buckets,
		Capacity:   capacity,
		KeyBytes:   int(unsafe.Sizeof(s)),
		ValueBytes: int(unsafe.Sizeof(v)),
	}
}

// Slots returns the number of slots in one memory.
func (l Sizing) Slots() int {
	return l.Buckets * l.Capacity
}

// SetBytes returns the bytes held by a set: two key and two value memories.
func (l Sizing) SetBytes() int64 {
	return 2 * int64(l.Slots()) * int64(l.KeyBytes+l.ValueBytes)
}
