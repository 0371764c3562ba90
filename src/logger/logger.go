// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger defines the interface for logging operations.
// It provides methods for different log levels and formatted output.
//
// This interface supports both interactive CLI output and structured JSON
// logging, allowing seamless switching between human-readable output and
// machine-readable records.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package.
// It's designed for command-line interface output with human-readable formatting.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger with timestamps disabled.
// This is suitable for user-facing CLI output.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stdout, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger emitting one JSON object per line.
// It is intended for non-interactive callers such as login hosts, cron
// wrappers, and log shippers. When silent, all output is suppressed so the
// verifier's stdout stays reserved for the verdict itself.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewJSONLogger creates a new structured JSON logger.
// Pass silent=true to suppress output entirely; otherwise provide a writer
// such as os.Stderr or a log file.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// Printf is safe for concurrent use by multiple goroutines.
func (m *JSONLogger) Printf(format string, v ...any) {
	if m.silent {
		return
	}
	m.emit(fmt.Sprintf(format, v...))
}

// Println logs a structured message in JSON format.
// Output is suppressed if silent mode is enabled.
//
// Println is safe for concurrent use by multiple goroutines.
func (m *JSONLogger) Println(v ...any) {
	if m.silent {
		return
	}
	m.emit(fmt.Sprint(v...))
}

func (m *JSONLogger) emit(msg string) {
	logEntry := map[string]any{
		"level":   "info",
		"message": msg,
	}

	data, _ := json.Marshal(logEntry)

	m.mu.Lock()
	fmt.Fprintln(m.writer, string(data))
	m.mu.Unlock()
}

// SetOutput sets the output destination for the JSON logger.
//
// SetOutput is safe for concurrent use by multiple goroutines.
func (m *JSONLogger) SetOutput(w io.Writer) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if w == nil {
		m.writer = io.Discard
	} else {
		m.writer = w
	}
}
