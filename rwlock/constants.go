package rwlock

// Mode identifies which kind of permission an operation concerns.
// It is used as a label in logs and metrics.
type Mode string

const (
	// ModeShared represents a reader (shared) permission.
	ModeShared Mode = "shared"

	// ModeExclusive represents the writer (exclusive) permission.
	ModeExclusive Mode = "exclusive"
)
