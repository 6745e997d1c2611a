package rwlock

import (
	"sync/atomic"
	"time"
)

// Metrics defines the interface for recording lock operation outcomes.
// All methods must be safe for concurrent use.
type Metrics interface {
	// IncrAcquire increments counters for acquisition attempts.
	// `success` is false when a try-operation was refused.
	IncrAcquire(mode Mode, success bool)

	// IncrRelease increments counters for releases.
	// `success` is false for an illegal release.
	IncrRelease(mode Mode, success bool)

	// IncrCanceledWait increments counters for blocking acquires
	// abandoned due to context cancellation.
	IncrCanceledWait(mode Mode)

	// ObserveAcquireWait records how long a contested blocking acquire
	// waited before being granted.
	ObserveAcquireWait(mode Mode, wait time.Duration)
}

// NoOpMetrics is a Metrics implementation that discards all measurements.
type NoOpMetrics struct{}

func (NoOpMetrics) IncrAcquire(Mode, bool)                 {}
func (NoOpMetrics) IncrRelease(Mode, bool)                 {}
func (NoOpMetrics) IncrCanceledWait(Mode)                  {}
func (NoOpMetrics) ObserveAcquireWait(Mode, time.Duration) {}

// CounterMetrics is a Metrics implementation backed by atomic counters.
// The zero value is ready to use. Counters only ever increase; read them
// with the accessor methods.
type CounterMetrics struct {
	sharedAcquired    atomic.Uint64 // Reader permissions granted.
	sharedRefused     atomic.Uint64 // TryRLock refusals.
	sharedReleased    atomic.Uint64 // Successful RUnlock calls.
	exclusiveAcquired atomic.Uint64 // Writer permissions granted.
	exclusiveRefused  atomic.Uint64 // TryLock refusals.
	exclusiveReleased atomic.Uint64 // Successful Unlock calls.
	illegalReleases   atomic.Uint64 // Releases with no matching acquire.
	canceledWaits     atomic.Uint64 // Blocking acquires abandoned via context.

	waitTotalNanos atomic.Int64  // Sum of contested wait durations.
	waitCount      atomic.Uint64 // Count of contested waits, for the average.
	waitMaxNanos   atomic.Int64  // Longest observed contested wait.
}

// IncrAcquire implements Metrics.
func (m *CounterMetrics) IncrAcquire(mode Mode, success bool) {
	switch {
	case mode == ModeShared && success:
		m.sharedAcquired.Add(1)
	case mode == ModeShared:
		m.sharedRefused.Add(1)
	case success:
		m.exclusiveAcquired.Add(1)
	default:
		m.exclusiveRefused.Add(1)
	}
}

// IncrRelease implements Metrics.
func (m *CounterMetrics) IncrRelease(mode Mode, success bool) {
	if !success {
		m.illegalReleases.Add(1)
		return
	}
	if mode == ModeShared {
		m.sharedReleased.Add(1)
	} else {
		m.exclusiveReleased.Add(1)
	}
}

// IncrCanceledWait implements Metrics.
func (m *CounterMetrics) IncrCanceledWait(Mode) {
	m.canceledWaits.Add(1)
}

// ObserveAcquireWait implements Metrics.
func (m *CounterMetrics) ObserveAcquireWait(_ Mode, wait time.Duration) {
	ns := wait.Nanoseconds()
	m.waitTotalNanos.Add(ns)
	m.waitCount.Add(1)
	for {
		prev := m.waitMaxNanos.Load()
		if ns <= prev || m.waitMaxNanos.CompareAndSwap(prev, ns) {
			return
		}
	}
}

// Acquired returns the number of granted permissions in the given mode.
func (m *CounterMetrics) Acquired(mode Mode) uint64 {
	if mode == ModeShared {
		return m.sharedAcquired.Load()
	}
	return m.exclusiveAcquired.Load()
}

// Refused returns the number of refused try-acquisitions in the given mode.
func (m *CounterMetrics) Refused(mode Mode) uint64 {
	if mode == ModeShared {
		return m.sharedRefused.Load()
	}
	return m.exclusiveRefused.Load()
}

// Released returns the number of successful releases in the given mode.
func (m *CounterMetrics) Released(mode Mode) uint64 {
	if mode == ModeShared {
		return m.sharedReleased.Load()
	}
	return m.exclusiveReleased.Load()
}

// IllegalReleases returns the number of releases with no matching acquire.
func (m *CounterMetrics) IllegalReleases() uint64 {
	return m.illegalReleases.Load()
}

// CanceledWaits returns the number of abandoned blocking acquires.
func (m *CounterMetrics) CanceledWaits() uint64 {
	return m.canceledWaits.Load()
}

// AverageWait returns the mean contested wait duration, or zero when no
// contested acquire has completed.
func (m *CounterMetrics) AverageWait() time.Duration {
	count := m.waitCount.Load()
	if count == 0 {
		return 0
	}
	return time.Duration(m.waitTotalNanos.Load() / int64(count))
}

// MaxWait returns the longest contested wait observed so far.
func (m *CounterMetrics) MaxWait() time.Duration {
	return time.Duration(m.waitMaxNanos.Load())
}
