// Package logger wraps zap for the application. The terminal belongs to the
// UI, so records go to a file or nowhere.
package logger

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SessionID is the field name carrying the per-run session identifier.
const SessionID = "session_id"

// ErrLoggerNotFound is returned by FromContext when ctx carries no logger.
var ErrLoggerNotFound = errors.New("logger not found in context")

type loggerKeyType struct{}

var loggerKey = loggerKeyType{}

// New builds a JSON file logger at level. An empty path yields a no-op logger.
// Every record carries a fresh session_id.
func New(level, path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir log dir: %w", err)
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{path}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return l.With(zap.String(SessionID, uuid.NewString())), nil
}

// NewContext returns a copy of ctx carrying l.
func NewContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext extracts the logger stored by NewContext.
func FromContext(ctx context.Context) (*zap.Logger, error) {
	if ctx == nil {
		return nil, fmt.Errorf("context validation: %w", ErrLoggerNotFound)
	}
	l, ok := ctx.Value(loggerKey).(*zap.Logger)
	if !ok {
		return nil, fmt.Errorf("logger lookup: %w", ErrLoggerNotFound)
	}
	return l, nil
}

// Log returns the context logger, or a no-op logger when there is none.
func Log(ctx context.Context) *zap.Logger {
	if l, err := FromContext(ctx); err == nil {
		return l
	}
	return zap.NewNop()
}
