package rwlock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/mhollis/rwbound/logger"
)

// boundedRWLock is the concrete RWLock implementation: a monitor built
// from one mutex and a broadcast channel.
//
// Every operation runs its whole body holding mu, so no two operations
// observe or mutate the shared state concurrently. The following holds at
// every point outside that critical section:
//
//	writing      => readers == 0
//	readers > 0  => !writing
//	0 <= readers <= maxReaders
//
// Waiting works by snapshotting the current wake channel under mu, then
// selecting on it (and ctx.Done()) with mu released. A release broadcasts
// by closing the channel and installing a fresh one; every waiter then
// re-locks mu and re-checks its admission predicate, since a broadcast
// says only that something changed, not that this waiter may proceed.
type boundedRWLock struct {
	mu sync.Mutex

	maxReaders int  // Reader capacity, immutable after construction.
	readers    int  // Reader permissions currently held.
	writing    bool // Whether the writer permission is held.

	wake chan struct{} // Closed to broadcast; replaced under mu.

	logger  logger.Logger
	metrics Metrics
}

// New creates a bounded reader-writer lock admitting up to maxReaders
// concurrent readers. It returns ErrInvalidMaxReaders when maxReaders
// is zero or negative.
func New(maxReaders int, opts ...Option) (RWLock, error) {
	if maxReaders <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxReaders, maxReaders)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &boundedRWLock{
		maxReaders: maxReaders,
		wake:       make(chan struct{}),
		logger:     cfg.logger.WithComponent("rwlock"),
		metrics:    cfg.metrics,
	}, nil
}

// canRead reports the reader admission predicate. Callers must hold mu.
func (l *boundedRWLock) canRead() bool {
	return !l.writing && l.readers < l.maxReaders
}

// canWrite reports the writer admission predicate. Callers must hold mu.
func (l *boundedRWLock) canWrite() bool {
	return !l.writing && l.readers == 0
}

// broadcast wakes every goroutine currently blocked in RLock or Lock.
// Callers must hold mu.
func (l *boundedRWLock) broadcast() {
	close(l.wake)
	l.wake = make(chan struct{})
}

// TryRLock implements RWLock.
func (l *boundedRWLock) TryRLock() bool {
	l.mu.Lock()
	ok := l.canRead()
	if ok {
		l.readers++
	}
	l.mu.Unlock()

	l.metrics.IncrAcquire(ModeShared, ok)
	return ok
}

// RLock implements RWLock.
func (l *boundedRWLock) RLock(ctx context.Context) error {
	return l.acquire(ctx, ModeShared, l.canRead, func() { l.readers++ })
}

// RUnlock implements RWLock.
func (l *boundedRWLock) RUnlock() error {
	l.mu.Lock()
	if l.readers == 0 {
		l.mu.Unlock()
		l.metrics.IncrRelease(ModeShared, false)
		l.logger.Warnw("Read release without matching acquire")
		return fmt.Errorf("read release: %w", ErrIllegalRelease)
	}
	l.readers--
	if l.readers == 0 {
		// The last reader leaving may admit one writer or a fresh
		// batch of readers; every waiter re-checks for itself.
		l.broadcast()
	}
	l.mu.Unlock()

	l.metrics.IncrRelease(ModeShared, true)
	return nil
}

// TryLock implements RWLock.
func (l *boundedRWLock) TryLock() bool {
	l.mu.Lock()
	ok := l.canWrite()
	if ok {
		l.writing = true
	}
	l.mu.Unlock()

	l.metrics.IncrAcquire(ModeExclusive, ok)
	return ok
}

// Lock implements RWLock.
func (l *boundedRWLock) Lock(ctx context.Context) error {
	return l.acquire(ctx, ModeExclusive, l.canWrite, func() { l.writing = true })
}

// Unlock implements RWLock.
func (l *boundedRWLock) Unlock() error {
	l.mu.Lock()
	if !l.writing {
		l.mu.Unlock()
		l.metrics.IncrRelease(ModeExclusive, false)
		l.logger.Warnw("Write release without matching acquire")
		return fmt.Errorf("write release: %w", ErrIllegalRelease)
	}
	l.writing = false
	l.broadcast()
	l.mu.Unlock()

	l.metrics.IncrRelease(ModeExclusive, true)
	return nil
}

// Stats implements RWLock.
func (l *boundedRWLock) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Stats{
		MaxReaders:    l.maxReaders,
		ActiveReaders: l.readers,
		Writing:       l.writing,
	}
}

// acquire is the blocking path shared by RLock and Lock: wait until the
// admission predicate holds, applying grant under mu once it does.
//
// On cancellation the wait is abandoned with ctx's error; no permission is
// granted and the counters are untouched, so an abandoned wait is
// indistinguishable from a call that never happened.
func (l *boundedRWLock) acquire(ctx context.Context, mode Mode, admit func() bool, grant func()) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%s acquire abandoned: %w", mode, err)
	}

	var start time.Time

	l.mu.Lock()
	for !admit() {
		if start.IsZero() {
			start = time.Now()
		}
		wake := l.wake
		l.mu.Unlock()

		select {
		case <-ctx.Done():
			l.metrics.IncrCanceledWait(mode)
			l.logger.Debugw("Blocking acquire abandoned",
				"mode", mode,
				"err", ctx.Err(),
			)
			return fmt.Errorf("%s acquire abandoned: %w", mode, ctx.Err())
		case <-wake:
		}

		l.mu.Lock()
	}
	grant()
	l.mu.Unlock()

	l.metrics.IncrAcquire(mode, true)
	if !start.IsZero() {
		l.metrics.ObserveAcquireWait(mode, time.Since(start))
	}
	return nil
}
