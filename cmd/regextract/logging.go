package main

import (
	"io"
	"log/slog"

	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the CLI logger. Logs go to stderr unless logFile is
// set, in which case they are written to a size-rotated file. The
// returned close function is always non-nil.
func newLogger(logFile string, verbose bool, stderr io.Writer) (*slog.Logger, func()) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	opts := &slog.HandlerOptions{Level: level}

	if logFile == "" {
		return slog.New(slog.NewTextHandler(stderr, opts)), func() {}
	}

	lj := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
	return slog.New(slog.NewTextHandler(lj, opts)), func() { _ = lj.Close() }
}
