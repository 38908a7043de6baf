// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package clilog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

type bufCloser struct {
	bytes.Buffer
	closed bool
}

func (b *bufCloser) Close() error {
	b.closed = true
	return nil
}

func TestLogger_Printf(t *testing.T) {
	var buf bufCloser
	l := NewWriter(&buf)
	l.now = func() time.Time {
		return time.Date(2025, 3, 14, 15, 9, 26, 0, time.UTC)
	}

	l.Printf("input: %s", "help -long")

	line := buf.String()
	if !strings.HasPrefix(line, "2025-03-14 15:09:26 [") {
		t.Errorf("line = %q, want timestamp prefix", line)
	}
	if !strings.Contains(line, "] input: help -long\n") {
		t.Errorf("line = %q, want message suffix", line)
	}
	if !strings.Contains(line, l.Session()) {
		t.Errorf("line = %q, missing session ID %q", line, l.Session())
	}
}

func TestLogger_SessionIDStable(t *testing.T) {
	var buf bufCloser
	l := NewWriter(&buf)
	if l.Session() == "" || len(l.Session()) != 8 {
		t.Errorf("Session() = %q, want 8 chars", l.Session())
	}
	if l.Session() != l.Session() {
		t.Error("session ID must not change between calls")
	}
}

func TestLogger_Close(t *testing.T) {
	var buf bufCloser
	l := NewWriter(&buf)
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if !buf.closed {
		t.Error("Close must reach the sink")
	}
}

func TestLogger_NilSafe(t *testing.T) {
	var l *Logger
	l.Printf("dropped %d", 1) // must not panic
	if l.Session() != "" {
		t.Errorf("nil Session() = %q, want empty", l.Session())
	}
	if err := l.Close(); err != nil {
		t.Errorf("nil Close() = %v, want nil", err)
	}
}

func TestNew_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.log")
	l := New(path)
	l.Printf("session started")
	if err := l.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	// lumberjack creates the file on first write.
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}
