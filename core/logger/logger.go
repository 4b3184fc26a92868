package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

func init() {
	// Default logger so packages can log before Init runs (tests, early startup).
	l, _ := zap.NewDevelopment()
	sugar = l.Sugar()
}

// Init replaces the default logger. In production mode output is JSON,
// otherwise the human-readable console encoder is used.
func Init(production bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if production {
		cfg := zap.NewProductionConfig()
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		l, err = cfg.Build(zap.AddCallerSkip(1))
	} else {
		l, err = zap.NewDevelopment(zap.AddCallerSkip(1))
	}
	if err != nil {
		return err
	}
	sugar = l.Sugar()
	return nil
}

// Sync flushes buffered log entries. Call on shutdown.
func Sync() {
	_ = sugar.Sync()
}

func Debug(msg string, keysAndValues ...any) {
	sugar.Debugw(msg, keysAndValues...)
}

func Info(msg string, keysAndValues ...any) {
	sugar.Infow(msg, keysAndValues...)
}

func Warn(msg string, keysAndValues ...any) {
	sugar.Warnw(msg, keysAndValues...)
}

// Error logs a message followed by the error and optional key/value context.
func Error(msg string, err error, keysAndValues ...any) {
	kv := append([]any{"error", err}, keysAndValues...)
	sugar.Errorw(msg, kv...)
}
