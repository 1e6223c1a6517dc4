package bitgrid

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    rejected prometheus.Counter
//	}
//
//	func (p *PrometheusCollector) RecordSetData(duration time.Duration, err error) {
//	    if err != nil {
//	        p.rejected.Inc()
//	    }
//	}
type MetricsCollector interface {
	// RecordConstruct is called after each constructor call.
	// err is nil if a grid was produced.
	RecordConstruct(err error)

	// RecordSetData is called after each whole-buffer replacement.
	// duration is the total time taken, err is nil if successful.
	RecordSetData(duration time.Duration, err error)

	// RecordPopulationCount is called after each population count.
	RecordPopulationCount(duration time.Duration, population uint64)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordConstruct(error)                       {}
func (NoopMetricsCollector) RecordSetData(time.Duration, error)          {}
func (NoopMetricsCollector) RecordPopulationCount(time.Duration, uint64) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Safe for use by many grids at once.
type BasicMetricsCollector struct {
	ConstructCount  atomic.Int64
	ConstructErrors atomic.Int64
	SetDataCount    atomic.Int64
	SetDataErrors   atomic.Int64
	SetDataNanos    atomic.Int64
	PopCountCount   atomic.Int64
	PopCountNanos   atomic.Int64
	LastPopulation  atomic.Uint64
}

// RecordConstruct implements MetricsCollector.
func (b *BasicMetricsCollector) RecordConstruct(err error) {
	b.ConstructCount.Add(1)
	if err != nil {
		b.ConstructErrors.Add(1)
	}
}

// RecordSetData implements MetricsCollector.
func (b *BasicMetricsCollector) RecordSetData(duration time.Duration, err error) {
	b.SetDataCount.Add(1)
	b.SetDataNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.SetDataErrors.Add(1)
	}
}

// RecordPopulationCount implements MetricsCollector.
func (b *BasicMetricsCollector) RecordPopulationCount(duration time.Duration, population uint64) {
	b.PopCountCount.Add(1)
	b.PopCountNanos.Add(duration.Nanoseconds())
	b.LastPopulation.Store(population)
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		ConstructCount:   b.ConstructCount.Load(),
		ConstructErrors:  b.ConstructErrors.Load(),
		SetDataCount:     b.SetDataCount.Load(),
		SetDataErrors:    b.SetDataErrors.Load(),
		SetDataAvgNanos:  avgNanos(b.SetDataNanos.Load(), b.SetDataCount.Load()),
		PopCountCount:    b.PopCountCount.Load(),
		PopCountAvgNanos: avgNanos(b.PopCountNanos.Load(), b.PopCountCount.Load()),
		LastPopulation:   b.LastPopulation.Load(),
	}
}

func avgNanos(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	ConstructCount   int64
	ConstructErrors  int64
	SetDataCount     int64
	SetDataErrors    int64
	SetDataAvgNanos  int64
	PopCountCount    int64
	PopCountAvgNanos int64
	LastPopulation   uint64
}
