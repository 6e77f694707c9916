package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/natefinch/lumberjack"
)

var (
	infoLogger  *slog.Logger
	errorLogger *slog.Logger

	output io.Closer
)

// Init sends info and error logs to a size-rotated file. Logging is a
// no-op until Init or SetInfoOutput/SetErrorOutput is called.
func Init(file string) error {
	if file == "" {
		return fmt.Errorf("log file is required")
	}
	w := &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	output = w

	infoLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	errorLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
	return nil
}

// Close flushes and closes the log file opened by Init.
func Close() error {
	infoLogger = nil
	errorLogger = nil
	if output == nil {
		return nil
	}
	err := output.Close()
	output = nil
	return err
}

// Infof logs an info-level message with format string and arguments
func Infof(ctx context.Context, format string, args ...interface{}) {
	if infoLogger == nil {
		return
	}
	message := fmt.Sprintf(format, args...)
	infoLogger.InfoContext(ctx, message)
}

// Errorf logs an error-level message with format string and arguments
func Errorf(ctx context.Context, format string, args ...interface{}) {
	if errorLogger == nil {
		return
	}
	message := fmt.Sprintf(format, args...)
	errorLogger.ErrorContext(ctx, message)
}

// Info logs an info-level message
func Info(ctx context.Context, msg string, args ...any) {
	if infoLogger == nil {
		return
	}
	infoLogger.InfoContext(ctx, msg, args...)
}

// Error logs an error-level message
func Error(ctx context.Context, msg string, args ...any) {
	if errorLogger == nil {
		return
	}
	errorLogger.ErrorContext(ctx, msg, args...)
}

// SetInfoOutput sets a custom writer for info logs (useful for testing)
func SetInfoOutput(w io.Writer) {
	infoLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
}

// SetErrorOutput sets a custom writer for error logs (useful for testing)
func SetErrorOutput(w io.Writer) {
	errorLogger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelError,
	}))
}
