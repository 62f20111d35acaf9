package config

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Log rotation limits for OZPATH_LOG_FILE.
const (
	logMaxSizeMB  = 10
	logMaxBackups = 3
	logMaxAgeDays = 7
)

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// LogSink returns where diagnostics go: a rotated file when LogFile is set,
// stderr otherwise. It returns nil when call logging is off.
func (c Config) LogSink() io.WriteCloser {
	if !c.LogCalls {
		return nil
	}
	if c.LogFile == "" {
		return nopCloser{os.Stderr}
	}
	return &lumberjack.Logger{
		Filename:   c.LogFile,
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
		MaxAge:     logMaxAgeDays,
		Compress:   true,
	}
}

// NewLogger builds the use-case logger on top of sink. A nil sink yields nil,
// which the service layer treats as "no logging".
func NewLogger(sink io.Writer) *slog.Logger {
	if sink == nil {
		return nil
	}
	return slog.New(slog.NewTextHandler(sink, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
