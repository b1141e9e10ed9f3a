// Package utils provides shared utilities for text, vector math, and logging.
package utils

import "go.uber.org/zap"

// NewLogger returns a zap logger. When debug is true, uses development config
// (human-readable, debug level); otherwise uses production config (JSON, info level).
func NewLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// NewNopLogger returns a logger that discards all output. Components that
// accept an optional logger fall back to this when none is provided.
func NewNopLogger() *zap.Logger {
	return zap.NewNop()
}
