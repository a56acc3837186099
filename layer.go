package bucketsort

import (
	"context"
	"errors"
	"iter"
	"time"

	"github.com/hupe1980/bucketsort/bucketarray"
	"github.com/hupe1980/bucketsort/workspace"
)

// cancelCheckInterval is how many items Fill inserts between context checks.
const cancelCheckInterval = 256

// FillStats summarizes one Fill.
type FillStats struct {
	Inserted int
	Dropped  int
	Duration time.Duration
}

// Fill inserts every (key, value) pair from items into arr.
//
// Under DropOnFull (the default) items whose bucket is full are counted in
// FillStats.Dropped and skipped. Under FailOnFull the first full bucket stops
// the fill with an *ErrBucketFull. The context is checked periodically.
func Fill[K bucketarray.Key, V any](ctx context.Context, arr bucketarray.Inserter[K, V], items iter.Seq2[K, V], opts ...Option) (FillStats, error) {
	o := applyOptions(opts)
	start := time.Now()

	var (
		stats FillStats
		err   error
		n     int
	)
	for key, value := range items {
		if n%cancelCheckInterval == 0 {
			if err = ctx.Err(); err != nil {
				break
			}
		}
		n++

		if ierr := arr.Insert(key, value); ierr != nil {
			if o.overflow == FailOnFull || !errors.Is(ierr, bucketarray.ErrBucketFull) {
				err = translateError(ierr)
				break
			}
			stats.Dropped++
			continue
		}
		stats.Inserted++
	}

	stats.Duration = time.Since(start)
	o.metricsCollector.RecordFill(stats.Inserted, stats.Dropped, stats.Duration, err)
	o.logger.LogFill(ctx, stats, err)
	return stats, err
}

// ItemRef addresses one item of a bucket array.
type ItemRef struct {
	Bucket int
	Item   int
}

// ForEachPair calls fn for every candidate pair of items whose keys can sum
// to a multiple of the divisor: one item from bucket and one from its
// complement. When bucket is its own complement each unordered pair is
// visited once. It returns false if fn stopped the iteration.
func ForEachPair[K bucketarray.Key](arr bucketarray.Shaped[K], bucket int, fn func(a, b ItemRef) bool) bool {
	partner := arr.Shape().Complement(bucket)
	_, n := arr.ItemRange(bucket)

	if partner == bucket {
		for i := range n {
			for j := i + 1; j < n; j++ {
				if !fn(ItemRef{bucket, i}, ItemRef{bucket, j}) {
					return false
				}
			}
		}
		return true
	}

	_, m := arr.ItemRange(partner)
	for i := range n {
		for j := range m {
			if !fn(ItemRef{bucket, i}, ItemRef{partner, j}) {
				return false
			}
		}
	}
	return true
}

// ScanPairs runs ForEachPair over every bucket/complement couple exactly once
// and returns the number of pairs visited. It stops early when fn returns
// false or ctx is done.
func ScanPairs[K bucketarray.Key](ctx context.Context, arr bucketarray.Shaped[K], fn func(a, b ItemRef) bool, opts ...Option) (int, error) {
	o := applyOptions(opts)
	start := time.Now()

	var pairs int
	counted := func(a, b ItemRef) bool {
		pairs++
		return fn(a, b)
	}

	var err error
	shape := arr.Shape()
	for b := range shape.Buckets() {
		if shape.Complement(b) < b {
			continue
		}
		if err = ctx.Err(); err != nil {
			break
		}
		if !ForEachPair(arr, b, counted) {
			break
		}
	}

	d := time.Since(start)
	o.metricsCollector.RecordPairScan(pairs, d)
	o.logger.LogPairScan(ctx, pairs, d)
	return pairs, err
}

// Downgrade drops the key storage of arr, returning the value-only array
// that now owns its values and counts.
func Downgrade[C bucketarray.Count, K bucketarray.Key, S bucketarray.KeyStorage, V any](ctx context.Context, arr *bucketarray.KeyValueBucketArray[C, K, S, V], opts ...Option) *bucketarray.ValueBucketArray[C, K, V] {
	o := applyOptions(opts)

	items := arr.Total()
	out := arr.DropKeyStorage()

	o.metricsCollector.RecordDowngrade()
	o.logger.LogDowngrade(ctx, items)
	return out
}

// RunAttempts runs n solve attempts on sets from pool, in parallel as allowed
// by the pool's resource controller. See workspace.Run.
func RunAttempts[S bucketarray.KeyStorage, V any](ctx context.Context, pool *workspace.Pool[S, V], n int, fn workspace.AttemptFunc[S, V], opts ...Option) error {
	o := applyOptions(opts)

	err := workspace.Run(ctx, pool, n, fn)
	if err != nil {
		o.logger.ErrorContext(ctx, "solve attempts failed", "attempts", n, "error", err)
	}
	return translateError(err)
}
