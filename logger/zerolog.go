// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// MaskValue replaces the value of sensitive string fields.
const MaskValue = "***"

// sensitiveKeys are matched case-insensitively against whole field
// names.
var sensitiveKeys = map[string]struct{}{
	"password":      {},
	"token":         {},
	"access_token":  {},
	"access-token":  {},
	"authorization": {},
	"cookie":        {},
	"set-cookie":    {},
	"secret":        {},
}

// Sensitive reports whether values logged under key are masked.
func Sensitive(key string) bool {
	_, ok := sensitiveKeys[strings.ToLower(key)]
	return ok
}

// ZeroLogger implements Logger on top of zerolog.
type ZeroLogger struct {
	zlog zerolog.Logger
}

var _ Logger = (*ZeroLogger)(nil)

// New returns a logger writing to w at the named level ("debug",
// "info", ...). An unknown level means info. If pretty is set the
// output is zerolog's human-readable console format; otherwise it is
// JSON lines. A nil w means os.Stderr.
func New(level string, pretty bool, w io.Writer) *ZeroLogger {
	if w == nil {
		w = os.Stderr
	}
	if pretty {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return &ZeroLogger{zlog: zerolog.New(w).Level(lvl).With().Timestamp().Logger()}
}

func (l *ZeroLogger) Debug() LogEvent { return &event{e: l.zlog.Debug()} }
func (l *ZeroLogger) Info() LogEvent { return &event{e: l.zlog.Info()} }
func (l *ZeroLogger) Warn() LogEvent { return &event{e: l.zlog.Warn()} }
func (l *ZeroLogger) Error() LogEvent { return &event{e: l.zlog.Error()} }

// WithFields returns a logger that adds fields to every entry.
// Sensitive string fields are masked.
func (l *ZeroLogger) WithFields(fields map[string]any) Logger {
	masked := make(map[string]any, len(fields))
	for k, v := range fields {
		if _, ok := v.(string); ok && Sensitive(k) {
			v = MaskValue
		}
		masked[k] = v
	}
	return &ZeroLogger{zlog: l.zlog.With().Fields(masked).Logger()}
}

// event wraps a zerolog event. A disabled level yields a nil
// *zerolog.Event, whose methods are no-ops.
type event struct {
	e *zerolog.Event
}

func (ev *event) Msg(msg string) {
	ev.e.Msg(msg)
}

func (ev *event) Msgf(format string, args ...any) {
	ev.e.Msgf(format, args...)
}

func (ev *event) Err(err error) LogEvent {
	ev.e = ev.e.Err(err)
	return ev
}

func (ev *event) Str(key, value string) LogEvent {
	if Sensitive(key) {
		value = MaskValue
	}
	ev.e = ev.e.Str(key, value)
	return ev
}

func (ev *event) Int(key string, value int) LogEvent {
	ev.e = ev.e.Int(key, value)
	return ev
}

func (ev *event) Bool(key string, b bool) LogEvent {
	ev.e = ev.e.Bool(key, b)
	return ev
}

func (ev *event) Dur(key string, d time.Duration) LogEvent {
	ev.e = ev.e.Dur(key, d)
	return ev
}

func (ev *event) Interface(key string, i any) LogEvent {
	ev.e = ev.e.Interface(key, i)
	return ev
}

func (ev *event) Bytes(key string, val []byte) LogEvent {
	ev.e = ev.e.Bytes(key, val)
	return ev
}
