package main

import (
	"io"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log file rotation settings.
const (
	logFileName   = "parser.log"
	logMaxSizeMB  = 1
	logMaxBackups = 5
)

// newLogger returns a text logger writing to stderr and to a rotating file
// under baseDir/logs. Every record carries a per-invocation run id.
// The returned closer releases the log file.
func newLogger(baseDir, level string, stderr io.Writer) (*slog.Logger, io.Closer, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, err
	}

	file := &lumberjack.Logger{
		Filename:   filepath.Join(baseDir, "logs", logFileName),
		MaxSize:    logMaxSizeMB,
		MaxBackups: logMaxBackups,
	}

	handler := slog.NewTextHandler(io.MultiWriter(stderr, file), &slog.HandlerOptions{Level: lvl})
	logger := slog.New(handler).With("run", uuid.NewString())
	return logger, file, nil
}
