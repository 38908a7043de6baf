// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package clilog writes the interactive session log: one timestamped
// line per event (session start, input lines, diagnostics), tagged with
// a per-session ID and rotated on disk.
package clilog

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger appends timestamped lines to a rotating log file. A nil
// *Logger is valid and discards everything, so callers never need to
// guard their log sites.
type Logger struct {
	mu      sync.Mutex
	w       io.WriteCloser
	session string
	now     func() time.Time
}

// New opens a rotating log at path. Rotation keeps files small enough
// to tail: 10 MB per file, 5 backups, 28 days.
func New(path string) *Logger {
	return &Logger{
		w: &lumberjack.Logger{
			Filename:   path,
			MaxSize:    10,
			MaxBackups: 5,
			MaxAge:     28,
		},
		session: uuid.NewString()[:8],
		now:     time.Now,
	}
}

// NewWriter builds a logger over an arbitrary writer. Used by tests and
// by hosts that manage their own sinks.
func NewWriter(w io.WriteCloser) *Logger {
	return &Logger{w: w, session: uuid.NewString()[:8], now: time.Now}
}

// Session returns the short per-session ID stamped on every line.
func (l *Logger) Session() string {
	if l == nil {
		return ""
	}
	return l.session
}

// Printf appends one formatted, timestamped line.
func (l *Logger) Printf(format string, a ...any) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintf(l.w, "%s [%s] %s\n",
		l.now().Format("2006-01-02 15:04:05"), l.session, fmt.Sprintf(format, a...))
}

// Close flushes and closes the underlying sink.
func (l *Logger) Close() error {
	if l == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Close()
}
