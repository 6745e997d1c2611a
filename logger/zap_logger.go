package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is a Logger implementation backed by a zap SugaredLogger.
// Use it when the embedding application already standardizes on zap or
// needs sampled, leveled JSON output.
type ZapLogger struct {
	sugar *zap.SugaredLogger
}

// NewZapLogger builds a production-configured zap backend filtered at the
// given minimum level. Unknown level strings fall back to info.
func NewZapLogger(minLevelStr string) (Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parseZapLevel(minLevelStr))

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, err
	}
	return &ZapLogger{sugar: base.Sugar()}, nil
}

// NewZapLoggerFrom wraps an existing zap logger in the Logger interface.
func NewZapLoggerFrom(base *zap.Logger) Logger {
	return &ZapLogger{sugar: base.Sugar()}
}

func parseZapLevel(levelStr string) zapcore.Level {
	switch parseLogLevel(levelStr) {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	case LevelFatal:
		return zapcore.FatalLevel
	default:
		return zapcore.InfoLevel
	}
}

func (l *ZapLogger) Debugw(msg string, kvs ...any) { l.sugar.Debugw(msg, kvs...) }
func (l *ZapLogger) Infow(msg string, kvs ...any)  { l.sugar.Infow(msg, kvs...) }
func (l *ZapLogger) Warnw(msg string, kvs ...any)  { l.sugar.Warnw(msg, kvs...) }
func (l *ZapLogger) Errorw(msg string, kvs ...any) { l.sugar.Errorw(msg, kvs...) }
func (l *ZapLogger) Fatalw(msg string, kvs ...any) { l.sugar.Fatalw(msg, kvs...) }

// With adds key-value pairs to the logger's context.
func (l *ZapLogger) With(kvs ...any) Logger {
	return &ZapLogger{sugar: l.sugar.With(kvs...)}
}

// WithComponent returns a logger with a component name added to the context.
func (l *ZapLogger) WithComponent(name string) Logger {
	return &ZapLogger{sugar: l.sugar.With("component", name)}
}
