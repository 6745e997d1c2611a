package rwlock

import "errors"

var (
	// ErrInvalidMaxReaders indicates a non-positive reader capacity was
	// passed to New. With a capacity of zero or less, every read path
	// would block or fail forever, so construction refuses it outright.
	ErrInvalidMaxReaders = errors.New("rwlock: max readers must be positive")

	// ErrIllegalRelease indicates a release with no matching acquire:
	// RUnlock with zero active readers, or Unlock with no active writer.
	// It signals a caller bug and is never retryable; the lock state is
	// checked before any mutation, so it is left intact.
	ErrIllegalRelease = errors.New("rwlock: release without matching acquire")
)
