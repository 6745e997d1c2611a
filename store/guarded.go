package store

import (
	"context"

	"github.com/mhollis/rwbound/rwlock"
)

// ReadTx is the read-only view of a store handed to View callbacks.
type ReadTx interface {
	// Get returns the value stored under key and whether it was present.
	Get(key string) (string, bool)

	// Len returns the number of stored keys.
	Len() int
}

// WriteTx extends ReadTx with mutation.
type WriteTx interface {
	ReadTx

	// Put stores value under key, replacing any previous value.
	Put(key, value string)
}

// GuardedStore binds one bounded reader-writer lock to one Store and turns
// the documented caller contract into an enforced one: callbacks receive
// the store only while the matching permission is held, and the permission
// is always returned on the way out, so an illegal release cannot happen
// through this surface.
//
// The lock's lack of fairness is inherited: a steady stream of View calls
// can starve Update indefinitely.
type GuardedStore struct {
	lock  rwlock.RWLock
	store *Store
}

// NewGuarded creates a GuardedStore admitting up to maxReaders concurrent
// View callbacks. Options are forwarded to the underlying lock.
func NewGuarded(maxReaders int, opts ...rwlock.Option) (*GuardedStore, error) {
	lk, err := rwlock.New(maxReaders, opts...)
	if err != nil {
		return nil, err
	}
	return &GuardedStore{lock: lk, store: New()}, nil
}

// View runs fn with one reader permission held, releasing it when fn
// returns. It blocks until a permission is available or ctx is done; on
// cancellation fn is never called and fn's view is never created.
func (g *GuardedStore) View(ctx context.Context, fn func(ReadTx) error) error {
	if err := g.lock.RLock(ctx); err != nil {
		return err
	}
	defer func() { _ = g.lock.RUnlock() }() // cannot fail while the permission is held
	return fn(g.store)
}

// Update runs fn with the writer permission held, releasing it when fn
// returns. Cancellation semantics match View.
func (g *GuardedStore) Update(ctx context.Context, fn func(WriteTx) error) error {
	if err := g.lock.Lock(ctx); err != nil {
		return err
	}
	defer func() { _ = g.lock.Unlock() }() // cannot fail while the permission is held
	return fn(g.store)
}

// Get fetches one key under a reader permission.
func (g *GuardedStore) Get(ctx context.Context, key string) (value string, ok bool, err error) {
	err = g.View(ctx, func(tx ReadTx) error {
		value, ok = tx.Get(key)
		return nil
	})
	return value, ok, err
}

// Put stores one key under the writer permission.
func (g *GuardedStore) Put(ctx context.Context, key, value string) error {
	return g.Update(ctx, func(tx WriteTx) error {
		tx.Put(key, value)
		return nil
	})
}

// Stats reports the state of the underlying lock.
func (g *GuardedStore) Stats() rwlock.Stats {
	return g.lock.Stats()
}
