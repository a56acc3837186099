package bucketsort

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordFill is called after each Fill. inserted and dropped count the
	// items stored and the items rejected by full buckets.
	RecordFill(inserted, dropped int, duration time.Duration, err error)

	// RecordPairScan is called after each ScanPairs with the number of
	// candidate pairs visited.
	RecordPairScan(pairs int, duration time.Duration)

	// RecordDowngrade is called whenever key storage is dropped.
	RecordDowngrade()
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordFill(int, int, time.Duration, error) {}
func (NoopMetricsCollector) RecordPairScan(int, time.Duration)         {}
func (NoopMetricsCollector) RecordDowngrade()                          {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	FillCount      atomic.Int64
	FillErrors     atomic.Int64
	FillInserted   atomic.Int64
	FillDropped    atomic.Int64
	FillTotalNanos atomic.Int64
	PairScanCount  atomic.Int64
	PairsVisited   atomic.Int64
	PairScanNanos  atomic.Int64
	DowngradeCount atomic.Int64
}

// RecordFill implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFill(inserted, dropped int, duration time.Duration, err error) {
	b.FillCount.Add(1)
	b.FillInserted.Add(int64(inserted))
	b.FillDropped.Add(int64(dropped))
	b.FillTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.FillErrors.Add(1)
	}
}

// RecordPairScan implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPairScan(pairs int, duration time.Duration) {
	b.PairScanCount.Add(1)
	b.PairsVisited.Add(int64(pairs))
	b.PairScanNanos.Add(duration.Nanoseconds())
}

// RecordDowngrade implements MetricsCollector.
func (b *BasicMetricsCollector) RecordDowngrade() {
	b.DowngradeCount.Add(1)
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	FillCount      int64
	FillErrors     int64
	FillInserted   int64
	FillDropped    int64
	FillAvgNanos   int64
	PairScanCount  int64
	PairsVisited   int64
	DowngradeCount int64
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		FillCount:      b.FillCount.Load(),
		FillErrors:     b.FillErrors.Load(),
		FillInserted:   b.FillInserted.Load(),
		FillDropped:    b.FillDropped.Load(),
		FillAvgNanos:   b.getAvgFillNanos(),
		PairScanCount:  b.PairScanCount.Load(),
		PairsVisited:   b.PairsVisited.Load(),
		DowngradeCount: b.DowngradeCount.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgFillNanos() int64 {
	count := b.FillCount.Load()
	if count == 0 {
		return 0
	}
	return b.FillTotalNanos.Load() / count
}
