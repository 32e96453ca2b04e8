package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options controls how the process logger is built
type Options struct {
	Debug  bool
	Format string // "console" or "json"
	File   string // empty logs to Output
	Output io.Writer
}

var (
	mu     sync.Mutex
	logger = zap.NewNop()
	file   *os.File
)

// Init builds the process logger and installs it as the zap global.
// Calling Init again replaces the previous logger.
func Init(opts Options) (*zap.Logger, error) {
	level := zap.NewAtomicLevelAt(zapcore.InfoLevel)
	if opts.Debug {
		level.SetLevel(zapcore.DebugLevel)
	}

	encoder, err := newEncoder(opts.Format)
	if err != nil {
		return nil, err
	}

	mu.Lock()
	defer mu.Unlock()

	var sink zapcore.WriteSyncer
	switch {
	case opts.File != "":
		if err := os.MkdirAll(filepath.Dir(opts.File), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		closeFileLocked()
		file = f
		sink = zapcore.AddSync(f)
	case opts.Output != nil:
		sink = zapcore.AddSync(opts.Output)
	default:
		sink = zapcore.Lock(os.Stderr)
	}

	logger = zap.New(zapcore.NewCore(encoder, sink, level))
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func newEncoder(format string) (zapcore.Encoder, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "console", "text":
		cfg := zap.NewDevelopmentEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewConsoleEncoder(cfg), nil
	case "json":
		cfg := zap.NewProductionEncoderConfig()
		cfg.EncodeTime = zapcore.ISO8601TimeEncoder
		return zapcore.NewJSONEncoder(cfg), nil
	default:
		return nil, fmt.Errorf("unsupported log format %q", format)
	}
}

// Close flushes the process logger and closes the log file, if any
func Close() {
	mu.Lock()
	defer mu.Unlock()

	_ = logger.Sync()
	closeFileLocked()
}

func closeFileLocked() {
	if file != nil {
		_ = file.Close()
		file = nil
	}
}

// Debug logs a debug message with key/value pairs
func Debug(msg string, args ...any) {
	zap.S().Debugw(msg, args...)
}

// Info logs an info message with key/value pairs
func Info(msg string, args ...any) {
	zap.S().Infow(msg, args...)
}

// Warn logs a warning message with key/value pairs
func Warn(msg string, args ...any) {
	zap.S().Warnw(msg, args...)
}

// Error logs an error message with key/value pairs
func Error(msg string, args ...any) {
	zap.S().Errorw(msg, args...)
}
