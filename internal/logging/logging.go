// Package logging builds the slog loggers used by the CLI, the TUI and the
// REST server.
package logging

import (
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/alexanderramin/focusflow/internal/config"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the TUI log file inside the configured log directory.
const LogFileName = "focusflow.log"

// NewCLILogger returns a text logger for non-interactive commands.
func NewCLILogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// FileLogger is a logger backed by a rotating file.
type FileLogger struct {
	Logger   *slog.Logger
	LogFile  io.WriteCloser
	FilePath string
}

// Close closes the log file if it was opened.
func (r *FileLogger) Close() error {
	if r.LogFile != nil {
		return r.LogFile.Close()
	}
	return nil
}

// SetupTUILogger writes JSON logs to a rotating file so log output never
// lands on the terminal the TUI is drawing.
func SetupTUILogger(logDir string, level slog.Leveler, rotation config.LogRotationConfig) (*FileLogger, error) {
	if err := os.MkdirAll(logDir, 0755); err != nil {
		return nil, err
	}
	path := filepath.Join(logDir, LogFileName)

	w := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    rotation.MaxSizeMB,
		MaxBackups: rotation.MaxBackups,
		MaxAge:     rotation.MaxAgeDays,
		Compress:   rotation.Compress,
	}

	return &FileLogger{
		Logger:   NewJSONLogger(w, level),
		LogFile:  w,
		FilePath: path,
	}, nil
}

// NewJSONLogger returns a JSON logger writing to w.
func NewJSONLogger(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))
}
