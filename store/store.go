// Package store provides the in-memory associative store guarded by a
// bounded reader-writer lock, in two flavors: a raw Store whose callers
// manage permissions themselves, and a GuardedStore that enforces the
// acquire-use-release discipline.
package store

// Store is a plain in-memory key-value map with no concurrency control of
// its own. Callers are expected to hold a reader permission for Get and
// the writer permission for Put on the lock guarding this store; nothing
// here verifies that. Use GuardedStore for an enforced contract.
type Store struct {
	data map[string]string
}

// New returns an empty store.
func New() *Store {
	return &Store{data: make(map[string]string)}
}

// Put stores value under key, replacing any previous value.
// The caller must hold the writer permission.
func (s *Store) Put(key, value string) {
	s.data[key] = value
}

// Get returns the value stored under key and whether it was present.
// The caller must hold a reader permission.
func (s *Store) Get(key string) (string, bool) {
	value, ok := s.data[key]
	return value, ok
}

// Len returns the number of stored keys.
// The caller must hold a reader permission.
func (s *Store) Len() int {
	return len(s.data)
}
