package testutil

import (
	"errors"
	"testing"

	"github.com/hupe1980/bucketsort/bucketarray"
)

// Triple is one observable (bucket, item, value) entry of a bucket array.
type Triple[V any] struct {
	Bucket int
	Item   int
	Value  V
}

// Snapshot lists every valid item of arr in bucket then item order.
func Snapshot[K bucketarray.Key, V any](arr bucketarray.ValueLookup[K, V]) []Triple[V] {
	var out []Triple[V]
	for b := range arr.Shape().Buckets() {
		lo, hi := arr.ItemRange(b)
		for i := lo; i < hi; i++ {
			out = append(out, Triple[V]{Bucket: b, Item: i, Value: arr.ItemValue(b, i)})
		}
	}
	return out
}

// AssertInternalFault fails the test unless fn panics with a
// *bucketarray.InternalError.
func AssertInternalFault(t testing.TB, fn func()) {
	t.Helper()

	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Errorf("expected internal fault, got none")
			return
		}
		err, ok := r.(error)
		if !ok {
			t.Errorf("expected internal fault, got panic value %v", r)
			return
		}
		var ie *bucketarray.InternalError
		if !errors.As(err, &ie) {
			t.Errorf("expected *bucketarray.InternalError, got %T: %v", err, err)
		}
	}()

	fn()
}

// AssertAppendOrder fails the test unless bucket holds exactly want, in order.
func AssertAppendOrder[K bucketarray.Key, V comparable](t testing.TB, arr bucketarray.ValueLookup[K, V], bucket int, want []V) {
	t.Helper()

	lo, hi := arr.ItemRange(bucket)
	if lo != 0 || hi != len(want) {
		t.Errorf("bucket %d: item range [%d, %d), want [0, %d)", bucket, lo, hi, len(want))
		return
	}
	for i, v := range want {
		if got := arr.ItemValue(bucket, i); got != v {
			t.Errorf("bucket %d item %d: got %v, want %v", bucket, i, got, v)
		}
	}
}
