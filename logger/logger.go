// Package logger defines the structured logging interface used across the
// module, with no-op, standard-library and zap-backed implementations.
package logger

// Logger defines an interface for structured, context-aware logging.
//
// All logging methods support structured output by accepting a message and
// a variadic list of key-value pairs. Keys must be strings and must
// alternate with values in the form: key1, val1, key2, val2, ...
type Logger interface {
	// Debugw logs a debug-level message with optional structured context.
	Debugw(msg string, keysAndValues ...any)

	// Infow logs an info-level message with optional structured context.
	Infow(msg string, keysAndValues ...any)

	// Warnw logs a warning-level message with optional structured context.
	Warnw(msg string, keysAndValues ...any)

	// Errorw logs an error-level message with optional structured context.
	Errorw(msg string, keysAndValues ...any)

	// Fatalw logs a fatal-level message with optional structured context
	// and then terminates the application.
	Fatalw(msg string, keysAndValues ...any)

	// With returns a new logger whose context carries the given
	// additional key-value pairs.
	With(keysAndValues ...any) Logger

	// WithComponent returns a new logger with a component label
	// (e.g. "rwlock", "store") added to categorize log output.
	WithComponent(name string) Logger
}
