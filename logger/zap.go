package logger

import (
	"go.uber.org/zap"

	"btreeset"
)

// Zap wraps a zap.Logger to implement btreeset.Logger.
type Zap struct {
	logger *zap.Logger
}

// NewZap creates a btreeset.Logger from a zap.Logger.
func NewZap(logger *zap.Logger) btreeset.Logger {
	return &Zap{logger: logger}
}

// Error logs an error message with key-value pairs.
func (z *Zap) Error(msg string, args ...any) {
	z.logger.Sugar().Errorw(msg, normalizeArgs(args)...)
}

// Warn logs a warning message with key-value pairs.
func (z *Zap) Warn(msg string, args ...any) {
	z.logger.Sugar().Warnw(msg, normalizeArgs(args)...)
}

// Info logs an info message with key-value pairs.
func (z *Zap) Info(msg string, args ...any) {
	z.logger.Sugar().Infow(msg, normalizeArgs(args)...)
}
