// Package logger provides levelled progress logging for the CLI.
package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Level represents the logging level
type Level int

const (
	// LevelOff disables all logging
	LevelOff Level = iota
	// LevelInfo shows session progress (--verbose)
	LevelInfo
	// LevelDebug also shows every substitution and file decision (--debug)
	LevelDebug
)

var (
	currentLevel           = LevelOff
	startTime              = time.Now()
	out          io.Writer = os.Stderr
)

// SetLevel sets the global logging level and restarts the elapsed clock.
func SetLevel(level Level) {
	currentLevel = level
	startTime = time.Now()
}

// GetLevel returns the current logging level
func GetLevel() Level {
	return currentLevel
}

// SetOutput redirects log output. A nil writer restores stderr.
func SetOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	out = w
}

// IsVerbose returns true if verbose logging is enabled
func IsVerbose() bool {
	return currentLevel >= LevelInfo
}

// IsDebug returns true if debug logging is enabled
func IsDebug() bool {
	return currentLevel >= LevelDebug
}

// Info logs an informational message (shown with --verbose)
func Info(format string, args ...interface{}) {
	logf(LevelInfo, "", format, args...)
}

// Debug logs a debug message (shown with --debug)
func Debug(format string, args ...interface{}) {
	logf(LevelDebug, "[DEBUG] ", format, args...)
}

// Error logs an error message (shown with --verbose)
func Error(format string, args ...interface{}) {
	logf(LevelInfo, "[ERROR] ", format, args...)
}

func logf(min Level, tag, format string, args ...interface{}) {
	if currentLevel < min {
		return
	}
	elapsed := time.Since(startTime).Round(time.Millisecond)
	fmt.Fprintf(out, "[%s] %s%s\n", elapsed, tag, fmt.Sprintf(format, args...))
}
