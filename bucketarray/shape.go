package bucketarray

// Shape holds the bucket arithmetic shared by every array of a given size.
// Keys are split into a bucket index (key mod N) and a remainder (key div N).
type Shape[K Key] struct {
	buckets  int
	capacity int
	divisor  K
}

// NewShape returns the shape for buckets buckets of capacity items each.
// It panics with *InternalError if the bucket count does not fit in K.
func NewShape[K Key](buckets, capacity int) Shape[K] {
	if buckets <= 0 || capacity <= 0 {
		fault("NewShape", "invalid shape %d×%d", buckets, capacity)
	}
	return Shape[K]{
		buckets:  buckets,
		capacity: capacity,
		divisor:  KeyFromBucketIndex[K](buckets),
	}
}

// Buckets returns the number of buckets.
func (s Shape[K]) Buckets() int { return s.buckets }

// BucketCapacity returns the item capacity of each bucket.
func (s Shape[K]) BucketCapacity() int { return s.capacity }

// Divisor returns the bucket count as a Key.
func (s Shape[K]) Divisor() K { return s.divisor }

// SplitWideKey splits key into its bucket index and the remaining quotient.
func (s Shape[K]) SplitWideKey(key K) (int, K) {
	return KeyToBucketIndex(key % s.divisor), key / s.divisor
}

// JoinWideKey rebuilds a wide key from a bucket index and a remainder.
func (s Shape[K]) JoinWideKey(bucket int, remainder K) K {
	return remainder*s.divisor + KeyFromBucketIndex[K](bucket)
}

// Complement returns the bucket whose keys sum with keys from bucket to a
// multiple of the divisor. Bucket 0 (and N/2 for even N) is its own complement.
func (s Shape[K]) Complement(bucket int) int {
	return (s.buckets - bucket) % s.buckets
}
