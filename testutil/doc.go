// Package testutil provides testing utilities for bucketsort.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG for generating keys with uniform or
// skewed bucket distributions, plus shared assertions over bucket arrays.
//
// # Key Generation
//
//	rng := testutil.NewRNG(seed)
//	keys := rng.Keys(1024)                   // uniform uint64 keys
//	skew := rng.SkewedKeys(1024, 64, 1.5)    // Zipfian bucket clustering
//
// # Assertions
//
//	testutil.AssertInternalFault(t, func() { arr.ItemValue(0, 99) })
//	testutil.AssertAppendOrder(t, arr, bucket, want)
package testutil
