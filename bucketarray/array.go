package bucketarray

// Inserter appends keyed items to a bucket array.
type Inserter[K Key, V any] interface {
	// Insert appends value to the bucket selected by key. It returns a
	// *BucketFullError when that bucket has no free slot.
	Insert(key K, value V) error
}

// Shaped exposes the bucket layout and the valid item range of each bucket.
type Shaped[K Key] interface {
	Shape() Shape[K]
	ItemRange(bucket int) (int, int)
}

// ValueLookup reads stored values.
type ValueLookup[K Key, V any] interface {
	Shaped[K]
	ItemValue(bucket, item int) V
}

// KeyLookup reads stored key remainders.
type KeyLookup[K Key, S KeyStorage] interface {
	Shaped[K]
	ItemStoredKey(bucket, item int) S
	ItemFullKey(bucket, item int) K
}

var (
	_ Inserter[uint32, uint16]    = (*KeyValueBucketArray[uint8, uint32, uint8, uint16])(nil)
	_ ValueLookup[uint32, uint16] = (*KeyValueBucketArray[uint8, uint32, uint8, uint16])(nil)
	_ KeyLookup[uint32, uint8]    = (*KeyValueBucketArray[uint8, uint32, uint8, uint16])(nil)
	_ Inserter[uint32, uint16]    = (*ValueBucketArray[uint8, uint32, uint16])(nil)
	_ ValueLookup[uint32, uint16] = (*ValueBucketArray[uint8, uint32, uint16])(nil)
)
