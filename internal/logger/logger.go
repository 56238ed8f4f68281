/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides a configurable stderr logger that can be silenced
// or redirected by embedding hosts.
package logger

import (
	"io"
	"log"
	"os"
)

// Logger writes warnings and errors to a single output stream.
type Logger struct {
	l *log.Logger
}

// Default is the process-wide logger, created once at startup.
// It logs to stderr. Use SetOutput(io.Discard) for silent mode.
var Default = New(os.Stderr)

// New creates a logger writing to w.
func New(w io.Writer) *Logger {
	return &Logger{l: log.New(w, "", 0)}
}

// SetOutput redirects the default logger's output destination.
func SetOutput(w io.Writer) {
	Default.l = log.New(w, "", 0)
}

// Warnf logs a warning message.
func (lg *Logger) Warnf(format string, args ...any) {
	lg.l.Printf("warning: "+format, args...)
}

// Errorf logs an error message.
func (lg *Logger) Errorf(format string, args ...any) {
	lg.l.Printf("error: "+format, args...)
}

// Infof logs an informational message.
func (lg *Logger) Infof(format string, args ...any) {
	lg.l.Printf(format, args...)
}
