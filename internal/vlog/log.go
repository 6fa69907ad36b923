// Copyright 2026 The steamvdf Authors. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package vlog is a small leveled logger in the shape that the rest of
// this module expects: a Logger that accepts a level plus key/value pairs,
// a Filter that drops anything below a configured level, and a Helper that
// adds printf-style convenience methods on top. It mirrors the
// Logger/Helper/Filter split saferwall/pe's file.go consumes from its own
// log subpackage.
package vlog

import (
	"fmt"
	"io"
	"sync"
)

// Level is the severity of a log record.
type Level int

// Severity levels, lowest to highest.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal sink every log record passes through.
type Logger interface {
	Log(level Level, keyvals ...interface{}) error
}

// stdLogger writes records to an io.Writer, one line per record.
type stdLogger struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStdLogger returns a Logger that writes "LEVEL key=val key=val" lines to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{w: w}
}

func (l *stdLogger) Log(level Level, keyvals ...interface{}) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, err := fmt.Fprintf(l.w, "%s", level.String()); err != nil {
		return err
	}
	for i := 0; i+1 < len(keyvals); i += 2 {
		if _, err := fmt.Fprintf(l.w, " %v=%v", keyvals[i], keyvals[i+1]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(l.w)
	return err
}

// FilterOption configures a filtering Logger.
type FilterOption func(*filter)

// FilterLevel drops any record below the given level.
func FilterLevel(level Level) FilterOption {
	return func(f *filter) {
		f.level = level
	}
}

type filter struct {
	next  Logger
	level Level
}

// NewFilter wraps next with a minimum-level gate.
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &filter{next: next, level: LevelDebug}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, keyvals ...interface{}) error {
	if level < f.level {
		return nil
	}
	return f.next.Log(level, keyvals...)
}

// Helper adds printf-style convenience methods on top of a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...interface{}) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, "msg", fmt.Sprintf(format, args...))
}

// Debugf logs at debug level.
func (h *Helper) Debugf(format string, args ...interface{}) { h.log(LevelDebug, format, args...) }

// Infof logs at info level.
func (h *Helper) Infof(format string, args ...interface{}) { h.log(LevelInfo, format, args...) }

// Warnf logs at warn level.
func (h *Helper) Warnf(format string, args ...interface{}) { h.log(LevelWarn, format, args...) }

// Errorf logs at error level.
func (h *Helper) Errorf(format string, args ...interface{}) { h.log(LevelError, format, args...) }
