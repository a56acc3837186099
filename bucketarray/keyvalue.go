package bucketarray

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// KeyValueBucketArray stores a key remainder and a value for every item.
// It is the array used by sorting layers that still need key bits.
//
// Keys appear in the API at full width K; only the part not implied by the
// bucket index is kept, narrowed to S.
type KeyValueBucketArray[C Count, K Key, S KeyStorage, V any] struct {
	keyMem   *Memory[S]
	valueMem *Memory[V]
	shape    Shape[K]
	inner    *core[C]
	consumed bool
}

// NewKeyValue wraps keyMem and valueMem in an empty array.
//
// It panics with *InternalError if the memories differ in shape, if either is
// already claimed or they are the same memory, if S is wider than K, or if the
// bucket capacity does not fit in C. Neither memory is claimed when it panics.
func NewKeyValue[C Count, K Key, S KeyStorage, V any](keyMem *Memory[S], valueMem *Memory[V]) *KeyValueBucketArray[C, K, S, V] {
	const op = "NewKeyValue"

	if keyMem == nil || valueMem == nil {
		fault(op, "nil backing memory")
	}
	if keyMem.buckets != valueMem.buckets || keyMem.capacity != valueMem.capacity {
		fault(op, "key memory %d×%d does not match value memory %d×%d",
			keyMem.buckets, keyMem.capacity, valueMem.buckets, valueMem.capacity)
	}
	if any(keyMem) == any(valueMem) {
		fault(op, "key and value storage share one backing memory")
	}
	if keyMem.claimed || valueMem.claimed {
		fault(op, "backing memory is already claimed by another bucket array")
	}
	checkStorageWidth[K, S](op)

	shape := NewShape[K](valueMem.buckets, valueMem.capacity)
	inner := newCore[C](op, shape.buckets, shape.capacity)

	keyMem.claim(op)
	valueMem.claim(op)

	return &KeyValueBucketArray[C, K, S, V]{
		keyMem:   keyMem,
		valueMem: valueMem,
		shape:    shape,
		inner:    inner,
	}
}

func (a *KeyValueBucketArray[C, K, S, V]) live(op string) {
	if a.consumed {
		fault(op, "key/value bucket array used after DropKeyStorage or Release")
	}
}

// Shape returns the bucket layout.
func (a *KeyValueBucketArray[C, K, S, V]) Shape() Shape[K] {
	a.live("Shape")
	return a.shape
}

// NumBuckets returns the number of buckets.
func (a *KeyValueBucketArray[C, K, S, V]) NumBuckets() int {
	return a.Shape().Buckets()
}

// BucketCapacity returns the item capacity of each bucket.
func (a *KeyValueBucketArray[C, K, S, V]) BucketCapacity() int {
	return a.Shape().BucketCapacity()
}

// ItemRange returns the half-open range [start, end) of valid items in bucket.
func (a *KeyValueBucketArray[C, K, S, V]) ItemRange(bucket int) (int, int) {
	a.live("ItemRange")
	return a.inner.itemRange("ItemRange", bucket)
}

// Len returns the number of items in bucket.
func (a *KeyValueBucketArray[C, K, S, V]) Len(bucket int) int {
	_, end := a.ItemRange(bucket)
	return end
}

// Total returns the number of items across all buckets.
func (a *KeyValueBucketArray[C, K, S, V]) Total() int {
	a.live("Total")
	return a.inner.total()
}

// Insert appends (key, value) to the bucket selected by key.
func (a *KeyValueBucketArray[C, K, S, V]) Insert(key K, value V) error {
	const op = "Insert"
	a.live(op)

	bucket, remainder := a.shape.SplitWideKey(key)
	return a.inner.insert(op, bucket, func(item int) {
		i := a.valueMem.index(bucket, item)
		a.keyMem.slots[i] = StorageFromKey[S](remainder)
		a.valueMem.slots[i] = value
	})
}

// ItemStoredKey returns the stored remainder bits of an item.
func (a *KeyValueBucketArray[C, K, S, V]) ItemStoredKey(bucket, item int) S {
	const op = "ItemStoredKey"
	a.live(op)
	a.inner.checkItem(op, bucket, item)
	return a.keyMem.slots[a.keyMem.index(bucket, item)]
}

// ItemFullKey rebuilds a full width key from the bucket index and the stored
// remainder. It equals the inserted key only if that key's remainder fit in S.
func (a *KeyValueBucketArray[C, K, S, V]) ItemFullKey(bucket, item int) K {
	return a.shape.JoinWideKey(bucket, StorageToKey[K](a.ItemStoredKey(bucket, item)))
}

// ItemValue returns the value of an item.
func (a *KeyValueBucketArray[C, K, S, V]) ItemValue(bucket, item int) V {
	const op = "ItemValue"
	a.live(op)
	a.inner.checkItem(op, bucket, item)
	return a.valueMem.slots[a.valueMem.index(bucket, item)]
}

// FullBuckets returns the set of buckets that reject further inserts.
func (a *KeyValueBucketArray[C, K, S, V]) FullBuckets() *roaring.Bitmap {
	a.live("FullBuckets")
	return a.inner.full()
}

// OccupiedBuckets returns the set of buckets holding at least one item.
func (a *KeyValueBucketArray[C, K, S, V]) OccupiedBuckets() *roaring.Bitmap {
	a.live("OccupiedBuckets")
	return a.inner.occupied()
}

// DropKeyStorage converts the array into a value-only array holding the same
// values and counts. The key memory is released for reuse by the caller.
// The receiver is consumed and must not be used afterwards.
func (a *KeyValueBucketArray[C, K, S, V]) DropKeyStorage() *ValueBucketArray[C, K, V] {
	a.live("DropKeyStorage")

	out := &ValueBucketArray[C, K, V]{
		valueMem: a.valueMem,
		shape:    a.shape,
		inner:    a.inner,
	}

	a.keyMem.release()
	a.invalidate()
	return out
}

// Release drops the claims on both memories without transferring them.
// Releasing a consumed array is a no-op.
func (a *KeyValueBucketArray[C, K, S, V]) Release() {
	if a.consumed {
		return
	}
	a.keyMem.release()
	a.valueMem.release()
	a.invalidate()
}

func (a *KeyValueBucketArray[C, K, S, V]) invalidate() {
	a.keyMem = nil
	a.valueMem = nil
	a.inner = nil
	a.consumed = true
}
