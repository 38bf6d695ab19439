// Package log carries a zap logger in a context.Context so that every layer
// logs with the fields of the request it is serving.
package log

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerKey struct{}

// New builds the root logger for the given environment
func New(environment string) (*zap.Logger, error) {
	if environment == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// WithLogger returns a new context derived from ctx that
// is associated with the given logger.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// WithFields returns a new context derived from ctx
// that has a logger that always logs the given fields.
func WithFields(ctx context.Context, fields ...zapcore.Field) context.Context {
	return WithLogger(ctx, Logger(ctx).With(fields...))
}

// Logger returns the logger associated with ctx. Contexts without a logger
// fall back to the process-wide zap logger (a no-op unless replaced).
func Logger(ctx context.Context) *zap.Logger {
	if ctx != nil {
		if logger, _ := ctx.Value(loggerKey{}).(*zap.Logger); logger != nil {
			return logger
		}
	}
	return zap.L()
}

func Debug(ctx context.Context, msg string, fields ...zapcore.Field) {
	loggerForCaller(ctx).Debug(msg, fields...)
}

func Info(ctx context.Context, msg string, fields ...zapcore.Field) {
	loggerForCaller(ctx).Info(msg, fields...)
}

func Warn(ctx context.Context, msg string, fields ...zapcore.Field) {
	loggerForCaller(ctx).Warn(msg, fields...)
}

func Error(ctx context.Context, msg string, fields ...zapcore.Field) {
	loggerForCaller(ctx).Error(msg, fields...)
}

func loggerForCaller(ctx context.Context) *zap.Logger {
	return Logger(ctx).WithOptions(zap.AddCaller(), zap.AddCallerSkip(1))
}
