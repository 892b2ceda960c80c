package irc

import (
	"sync/atomic"
	"time"

	"github.com/sony/gobreaker/v2"
)

// StreamStats contains statistics about the inbound half of a Stream.
// All fields are safe for concurrent access.
type StreamStats struct {
	LinesRead   uint64    // Complete lines read from the transport
	BytesRead   uint64    // Bytes of complete lines, delimiters included
	ParseErrors uint64    // Lines that failed to parse
	LastRead    time.Time // When the last complete line arrived, zero if none

	Writer WriterStats
}

// WriterStats contains statistics shared by every clone of a Writer.
//
// For Prometheus integration, expose these as:
//   - Counters: Writes, BytesWritten, WriteErrors, AcquireCount, AcquireWaitCount, CanceledAcquires
//   - Histogram: acquire wait (use AcquireWaitCount and AcquireWaitTimeNs to calculate)
//   - Gauge: CircuitBreakerState
type WriterStats struct {
	Writes       uint64 // Successful writes
	BytesWritten uint64 // Encoded bytes written
	WriteErrors  uint64 // Failed writes, including guard acquisition failures

	AcquireCount      uint64 // Acquisitions of the write guard
	AcquireWaitCount  uint64 // Acquisitions that found the guard busy, plus the first one, which creates it
	CanceledAcquires  uint64 // Acquisitions abandoned because of the context
	AcquireWaitTimeNs uint64 // Total nanoseconds spent waiting for the guard

	LastWrite time.Time // When the last successful write completed

	CircuitBreakerState  gobreaker.State // Zero (closed) when no breaker is configured
	CircuitBreakerCounts gobreaker.Counts
}

// streamStatsCollector provides internal methods for updating stream stats.
// Not exported - the stream updates its own stats.
type streamStatsCollector struct {
	linesRead   atomic.Uint64
	bytesRead   atomic.Uint64
	parseErrors atomic.Uint64
	lastRead    atomic.Int64 // unix nanoseconds
}

func (c *streamStatsCollector) recordLine(n int, now time.Time) {
	c.linesRead.Add(1)
	c.bytesRead.Add(uint64(n))
	c.lastRead.Store(now.UnixNano())
}

func (c *streamStatsCollector) recordParseError() {
	c.parseErrors.Add(1)
}

func (c *streamStatsCollector) snapshot() StreamStats {
	return StreamStats{
		LinesRead:   c.linesRead.Load(),
		BytesRead:   c.bytesRead.Load(),
		ParseErrors: c.parseErrors.Load(),
		LastRead:    unixNanoTime(c.lastRead.Load()),
	}
}

// writerStatsCollector provides internal methods for updating writer stats.
// Guard statistics come from the pool and are not collected here.
type writerStatsCollector struct {
	writes       atomic.Uint64
	bytesWritten atomic.Uint64
	writeErrors  atomic.Uint64
	lastWrite    atomic.Int64 // unix nanoseconds
}

func (c *writerStatsCollector) recordWrite(n int, now time.Time) {
	c.writes.Add(1)
	c.bytesWritten.Add(uint64(n))
	c.lastWrite.Store(now.UnixNano())
}

func (c *writerStatsCollector) recordError() {
	c.writeErrors.Add(1)
}

func (c *writerStatsCollector) snapshot() WriterStats {
	return WriterStats{
		Writes:       c.writes.Load(),
		BytesWritten: c.bytesWritten.Load(),
		WriteErrors:  c.writeErrors.Load(),
		LastWrite:    unixNanoTime(c.lastWrite.Load()),
	}
}

func unixNanoTime(ns int64) time.Time {
	if ns == 0 {
		return time.Time{}
	}
	return time.Unix(0, ns)
}
