package bucketarray

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// core tracks per-bucket item counts. It is shared by the key/value and the
// value-only arrays and knows nothing about what is stored.
//
// Bucket b's valid items are exactly [0, counts[b]).
type core[C Count] struct {
	counts   []C
	capacity int
}

// newCore panics with *InternalError if capacity does not fit in C.
func newCore[C Count](op string, buckets, capacity int) *core[C] {
	countFromIndex[C](op, capacity)
	return &core[C]{
		counts:   make([]C, buckets),
		capacity: capacity,
	}
}

func (c *core[C]) checkBucket(op string, bucket int) {
	if bucket < 0 || bucket >= len(c.counts) {
		fault(op, "bucket %d out of range [0, %d)", bucket, len(c.counts))
	}
}

// itemRange returns the half-open range of valid items in bucket.
func (c *core[C]) itemRange(op string, bucket int) (int, int) {
	c.checkBucket(op, bucket)
	// counts never exceed capacity, which is an int.
	return 0, int(c.counts[bucket])
}

func (c *core[C]) checkItem(op string, bucket, item int) {
	if _, end := c.itemRange(op, bucket); item < 0 || item >= end {
		fault(op, "item %d out of range [0, %d) in bucket %d", item, end, bucket)
	}
}

// insert hands the next free slot of bucket to write and then marks it
// valid. A full bucket is left untouched.
func (c *core[C]) insert(op string, bucket int, write func(item int)) error {
	c.checkBucket(op, bucket)

	n := c.counts[bucket]
	item := int(n)
	if item >= c.capacity {
		return &BucketFullError{Bucket: bucket}
	}

	write(item)
	c.counts[bucket] = n + 1
	return nil
}

func (c *core[C]) total() int {
	var sum int
	for _, n := range c.counts {
		sum += int(n)
	}
	return sum
}

// bucketsWhere collects bucket indices whose count satisfies pred.
func (c *core[C]) bucketsWhere(pred func(n int) bool) *roaring.Bitmap {
	bm := roaring.New()
	for b, n := range c.counts {
		if pred(int(n)) {
			bm.Add(uint32(b)) //nolint:gosec // bucket counts are capped at MaxUint32 by NewMemory
		}
	}
	return bm
}

func (c *core[C]) full() *roaring.Bitmap {
	return c.bucketsWhere(func(n int) bool { return n == c.capacity })
}

func (c *core[C]) occupied() *roaring.Bitmap {
	return c.bucketsWhere(func(n int) bool { return n > 0 })
}
