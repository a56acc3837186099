package bucketarray

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// ValueBucketArray stores only values. Keys still select the bucket, but
// their remainders are discarded. It is produced by
// KeyValueBucketArray.DropKeyStorage or built directly for layers that never
// need key bits.
type ValueBucketArray[C Count, K Key, V any] struct {
	valueMem *Memory[V]
	shape    Shape[K]
	inner    *core[C]
	consumed bool
}

// NewValue wraps valueMem in an empty value-only array.
func NewValue[C Count, K Key, V any](valueMem *Memory[V]) *ValueBucketArray[C, K, V] {
	const op = "NewValue"

	if valueMem == nil {
		fault(op, "nil backing memory")
	}

	shape := NewShape[K](valueMem.buckets, valueMem.capacity)
	inner := newCore[C](op, shape.buckets, shape.capacity)

	valueMem.claim(op)

	return &ValueBucketArray[C, K, V]{
		valueMem: valueMem,
		shape:    shape,
		inner:    inner,
	}
}

func (a *ValueBucketArray[C, K, V]) live(op string) {
	if a.consumed {
		fault(op, "value bucket array used after Release")
	}
}

// Shape returns the bucket layout.
func (a *ValueBucketArray[C, K, V]) Shape() Shape[K] {
	a.live("Shape")
	return a.shape
}

// NumBuckets returns the number of buckets.
func (a *ValueBucketArray[C, K, V]) NumBuckets() int {
	return a.Shape().Buckets()
}

// BucketCapacity returns the item capacity of each bucket.
func (a *ValueBucketArray[C, K, V]) BucketCapacity() int {
	return a.Shape().BucketCapacity()
}

// ItemRange returns the half-open range [start, end) of valid items in bucket.
func (a *ValueBucketArray[C, K, V]) ItemRange(bucket int) (int, int) {
	a.live("ItemRange")
	return a.inner.itemRange("ItemRange", bucket)
}

// Len returns the number of items in bucket.
func (a *ValueBucketArray[C, K, V]) Len(bucket int) int {
	_, end := a.ItemRange(bucket)
	return end
}

// Total returns the number of items across all buckets.
func (a *ValueBucketArray[C, K, V]) Total() int {
	a.live("Total")
	return a.inner.total()
}

// Insert appends value to the bucket selected by key.
func (a *ValueBucketArray[C, K, V]) Insert(key K, value V) error {
	const op = "Insert"
	a.live(op)

	bucket, _ := a.shape.SplitWideKey(key)
	return a.inner.insert(op, bucket, func(item int) {
		a.valueMem.slots[a.valueMem.index(bucket, item)] = value
	})
}

// ItemValue returns the value of an item.
func (a *ValueBucketArray[C, K, V]) ItemValue(bucket, item int) V {
	const op = "ItemValue"
	a.live(op)
	a.inner.checkItem(op, bucket, item)
	return a.valueMem.slots[a.valueMem.index(bucket, item)]
}

// FullBuckets returns the set of buckets that reject further inserts.
func (a *ValueBucketArray[C, K, V]) FullBuckets() *roaring.Bitmap {
	a.live("FullBuckets")
	return a.inner.full()
}

// OccupiedBuckets returns the set of buckets holding at least one item.
func (a *ValueBucketArray[C, K, V]) OccupiedBuckets() *roaring.Bitmap {
	a.live("OccupiedBuckets")
	return a.inner.occupied()
}

// Release drops the claim on the value memory. Later calls on the array
// panic; releasing twice is a no-op.
func (a *ValueBucketArray[C, K, V]) Release() {
	if a.consumed {
		return
	}
	a.valueMem.release()
	a.valueMem = nil
	a.inner = nil
	a.consumed = true
}
