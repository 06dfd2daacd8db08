package logger

import (
	"sync/atomic"
)

// Stats tracks the outcome of records that passed the level gate. Log
// does not report write failures to its caller; FailedTotal is where
// they surface.
type Stats struct {
	processed atomic.Uint64
	failed    atomic.Uint64
}

// IncrementProcessed atomically increments the processed counter
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// IncrementFailed atomically increments the failed counter
func (s *Stats) IncrementFailed() {
	s.failed.Add(1)
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	s.processed.Store(0)
	s.failed.Store(0)
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	// ProcessedTotal counts records fully written to the sink
	ProcessedTotal uint64
	// FailedTotal counts records whose sink rejected a fragment
	FailedTotal uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	return Snapshot{
		ProcessedTotal: s.processed.Load(),
		FailedTotal:    s.failed.Load(),
	}
}
