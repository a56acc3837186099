package bucketarray

import (
	"github.com/hupe1980/bucketsort/internal/conv"
)

// Count is a per-bucket item counter.
type Count interface {
	conv.Unsigned
}

// Key is a full width key. Go unsigned arithmetic wraps modulo 2^width,
// which is what the solver's modular sums rely on.
type Key interface {
	conv.Unsigned
}

// KeyStorage is the stored form of a key remainder. It must be no wider
// than the Key it is paired with.
type KeyStorage interface {
	conv.Unsigned
}

// WrappingAdd returns a + b modulo 2^width.
func WrappingAdd[K Key](a, b K) K {
	return a + b
}

// WrappingNeg returns -k modulo 2^width.
func WrappingNeg[K Key](k K) K {
	return ^k + 1
}

// LowBitsAreZero reports whether the n low bits of k are all zero.
func LowBitsAreZero[K Key](k K, n int) bool {
	if n <= 0 {
		return true
	}
	if n >= conv.BitWidth[K]() {
		return k == 0
	}
	mask := (K(1) << n) - 1
	return k&mask == 0
}

// KeyFromBucketIndex widens a bucket index into a Key.
// It panics with *InternalError if the index does not fit.
func KeyFromBucketIndex[K Key](i int) K {
	k, err := conv.IntTo[K](i)
	if err != nil {
		fault("KeyFromBucketIndex", "key type is too narrow for bucket index: %v", err)
	}
	return k
}

// KeyToBucketIndex narrows a Key known to be a bucket index back into an int.
// It panics with *InternalError if the key does not fit.
func KeyToBucketIndex[K Key](k K) int {
	i, err := conv.ToInt(k)
	if err != nil {
		fault("KeyToBucketIndex", "key is not a bucket index: %v", err)
	}
	return i
}

// StorageFromKey masks k to the width of S and narrows it. Bits above that
// width are discarded; the conversion never saturates.
func StorageFromKey[S KeyStorage, K Key](k K) S {
	mask := K(conv.MaxOf[S]())
	return S(k & mask)
}

// StorageToKey zero-extends a stored remainder back into a Key.
func StorageToKey[K Key, S KeyStorage](s S) K {
	return K(s)
}

// countFromIndex converts an item index into a counter value.
func countFromIndex[C Count](op string, i int) C {
	c, err := conv.IntTo[C](i)
	if err != nil {
		fault(op, "count type is too narrow for item index: %v", err)
	}
	return c
}

// checkStorageWidth panics unless S is no wider than K.
func checkStorageWidth[K Key, S KeyStorage](op string) {
	if conv.BitWidth[S]() > conv.BitWidth[K]() {
		fault(op, "key storage is %d bits, wider than the %d bit key", conv.BitWidth[S](), conv.BitWidth[K]())
	}
}
