// Package bucketarray implements the bucket-sort layers used by the Equi-X
// solver.
//
// A bucket array groups numerically keyed items into a fixed number of
// buckets chosen by the key modulo the bucket count. Each bucket holds at
// most a fixed number of items, appended in insertion order. Counts, keys and
// values live in parallel arrays rather than one array of structs, which keeps
// the solver's per-bucket scans dense.
//
// # Memory Model
//
// Backing storage is allocated once by the caller as [Memory] and reused
// across solve attempts. A Memory is considered empty whenever no array wraps
// it: a new array always starts with zeroed counters and only exposes slots it
// has written itself.
//
//	keys := bucketarray.NewMemory[uint8](4, 2)
//	values := bucketarray.NewMemory[uint16](4, 2)
//
//	arr := bucketarray.NewKeyValue[uint8, uint32, uint8, uint16](keys, values)
//	_ = arr.Insert(0x106, 7)
//
//	lo, hi := arr.ItemRange(2)
//	for i := lo; i < hi; i++ {
//	    fmt.Println(arr.ItemFullKey(2, i), arr.ItemValue(2, i))
//	}
//
//	// Key bits are no longer needed: keep values and counts, free the keys.
//	vals := arr.DropKeyStorage()
//
// # Numeric Types
//
// Arrays are parameterized over four types so the narrowest possible
// representation can be picked per layer:
//
//   - C, the per-bucket counter ([Count])
//   - K, the wide key used for bucket selection and sums ([Key])
//   - S, the stored key remainder, no wider than K ([KeyStorage])
//   - V, the opaque value
//
// Narrowing a remainder into S masks away the high bits. This is lossy on
// purpose: ItemFullKey reconstructs a key from the bucket and the stored bits
// only.
//
// # Errors
//
// A full bucket is an ordinary, data dependent outcome and is reported as a
// [*BucketFullError] matching [ErrBucketFull]. Contract violations (bucket or
// item index out of range, a counter type too narrow for the capacity, use of
// a consumed array) panic with [*InternalError].
//
// # Concurrency
//
// Arrays are not safe for concurrent use. Parallel solvers allocate one set of
// Memory per worker.
package bucketarray
