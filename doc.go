// Package bucketsort provides the bucket-sort storage engine behind an
// Equi-X proof-of-work solver.
//
// The solver searches for tuples of hash outputs whose sums vanish modulo a
// bucket count, across several layers of increasingly combined candidates.
// Each layer sorts candidates into fixed-capacity buckets by key modulo the
// bucket count, then pairs items from complementary buckets.
//
// # Packages
//
//   - bucketarray: the fixed-shape bucket arrays, backing memory and bucket arithmetic
//   - workspace: per-worker backing memory sets and a parallel attempt runner
//   - resource: memory budget, worker slots and attempt rate limiting
//   - keysource: deterministic layer-0 key derivation for tests and benchmarks
//
// This package ties them together with layer helpers that log and record
// metrics in one place.
//
// # Quick Start
//
//	keys := bucketarray.NewMemory[uint8](256, 32)
//	values := bucketarray.NewMemory[uint32](256, 32)
//
//	layer0 := bucketarray.NewKeyValue[uint16, uint64](keys, values)
//	stats, _ := bucketsort.Fill(ctx, layer0, keysource.NewXXHash(seed).Items(0, 8192))
//
//	bucketsort.ScanPairs(ctx, layer0, func(a, b bucketsort.ItemRef) bool {
//	    sum := layer0.ItemStoredKey(a.Bucket, a.Item) + layer0.ItemStoredKey(b.Bucket, b.Item)
//	    ...
//	    return true
//	})
//
//	// Keys of layer 0 are no longer needed once layer 1 is built.
//	values0 := bucketsort.Downgrade(ctx, layer0)
//
// # Full Buckets
//
// Hash outputs cluster unevenly, so some buckets fill up before the rest. By
// default Fill drops items that do not fit (DropOnFull), matching how the
// solver treats them. WithOverflowPolicy(FailOnFull) surfaces the first
// overflow as an *ErrBucketFull instead. A full bucket never panics; only
// contract violations such as out-of-range indices do.
//
// # Observability
//
//	stats, err := bucketsort.Fill(ctx, arr, items,
//	    bucketsort.WithLogger(bucketsort.NewJSONLogger(slog.LevelDebug)),
//	    bucketsort.WithMetricsCollector(&bucketsort.BasicMetricsCollector{}),
//	)
package bucketsort
