// Package rwlock implements a bounded reader-writer lock: a monitor that
// admits up to a configured number of concurrent readers, or exactly one
// exclusive writer, with blocking and non-blocking acquisition and strict
// release-discipline checking.
package rwlock

import "context"

// RWLock is a bounded reader-writer lock: it admits up to a fixed number of
// concurrent readers, or exactly one exclusive writer, never both.
//
// The lock hands out permissions, not protection. Callers are expected to
// acquire the appropriate mode before touching the guarded resource and to
// release it afterward; nothing stops a caller that ignores the contract.
//
// There is no waiter queue and no priority between waiting readers and
// waiting writers: every release wakes all waiters and whichever re-checks
// its admission predicate first wins. If readers arrive fast enough to keep
// the reader count above zero, a waiting writer can starve indefinitely.
// That behavior is deliberate.
type RWLock interface {
	// TryRLock attempts to take one reader permission without blocking.
	// It returns false if a writer holds the lock or the reader capacity
	// is exhausted; in that case no state changes.
	TryRLock() bool

	// RLock blocks until a reader permission is available or ctx is done.
	//
	// Returns:
	//   - nil once a permission is granted.
	//   - ctx.Err() (wrapped) if the wait is abandoned; no permission is
	//     granted and the lock state is left untouched.
	RLock(ctx context.Context) error

	// RUnlock returns one previously granted reader permission. When the
	// last active reader leaves, every blocked acquirer is woken.
	//
	// Returns ErrIllegalRelease if no reader permission is outstanding.
	RUnlock() error

	// TryLock attempts to take the writer permission without blocking.
	// It returns false if any reader or writer is active; in that case no
	// state changes.
	TryLock() bool

	// Lock blocks until the writer permission is available or ctx is done.
	// Cancellation semantics match RLock.
	Lock(ctx context.Context) error

	// Unlock returns the writer permission and wakes every blocked
	// acquirer.
	//
	// Returns ErrIllegalRelease if no writer holds the lock.
	Unlock() error

	// Stats reports a consistent snapshot of the lock state. It grants
	// nothing and wakes nobody.
	Stats() Stats
}

// Stats is a point-in-time view of a lock's shared state.
type Stats struct {
	// MaxReaders is the reader capacity fixed at construction.
	MaxReaders int

	// ActiveReaders is the number of reader permissions currently held.
	ActiveReaders int

	// Writing reports whether the writer permission is currently held.
	Writing bool
}
