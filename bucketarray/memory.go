package bucketarray

import (
	"math"
	"unsafe"

	"github.com/hupe1980/bucketsort/internal/mem"
)

// Memory is reusable backing storage for one key or value bucket array:
// buckets rows of capacity slots of T, laid out contiguously so slot
// (bucket, item) lives at bucket*capacity+item.
//
// A Memory carries no validity information of its own. Whatever it held
// before is ignored by the next array that claims it, and only one array may
// hold a claim at a time.
type Memory[T any] struct {
	slots    []T
	buckets  int
	capacity int
	claimed  bool
}

// NewMemory allocates storage for buckets × capacity slots of T.
// It panics with *InternalError on a non-positive shape.
func NewMemory[T any](buckets, capacity int) *Memory[T] {
	if buckets <= 0 || capacity <= 0 {
		fault("NewMemory", "invalid shape %d×%d", buckets, capacity)
	}
	if uint64(buckets) > math.MaxUint32 {
		fault("NewMemory", "bucket count %d exceeds uint32", buckets)
	}
	if capacity > math.MaxInt/buckets {
		fault("NewMemory", "shape %d×%d overflows", buckets, capacity)
	}

	return &Memory[T]{
		slots:    mem.AllocSlice[T](buckets * capacity),
		buckets:  buckets,
		capacity: capacity,
	}
}

// Buckets returns the number of bucket rows.
func (m *Memory[T]) Buckets() int { return m.buckets }

// Capacity returns the number of slots per bucket.
func (m *Memory[T]) Capacity() int { return m.capacity }

// Len returns the total number of slots.
func (m *Memory[T]) Len() int { return len(m.slots) }

// SizeBytes returns the size of the slot storage in bytes.
func (m *Memory[T]) SizeBytes() int64 {
	var zero T
	return int64(len(m.slots)) * int64(unsafe.Sizeof(zero))
}

// Claimed reports whether an array currently wraps this memory.
func (m *Memory[T]) Claimed() bool { return m.claimed }

func (m *Memory[T]) claim(op string) {
	if m == nil {
		fault(op, "nil backing memory")
	}
	if m.claimed {
		fault(op, "backing memory is already claimed by another bucket array")
	}
	m.claimed = true
}

func (m *Memory[T]) release() {
	m.claimed = false
}

func (m *Memory[T]) index(bucket, item int) int {
	return bucket*m.capacity + item
}
