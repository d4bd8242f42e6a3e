// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logger

import "time"

// Nop returns a logger that discards everything.
func Nop() Logger {
	return nop{}
}

type nop struct{}

func (nop) Debug() LogEvent { return nopEvent{} }
func (nop) Info() LogEvent { return nopEvent{} }
func (nop) Warn() LogEvent { return nopEvent{} }
func (nop) Error() LogEvent { return nopEvent{} }
func (n nop) WithFields(map[string]any) Logger { return n }

type nopEvent struct{}

func (nopEvent) Msg(string) {}
func (nopEvent) Msgf(string, ...any) {}
func (e nopEvent) Err(error) LogEvent { return e }
func (e nopEvent) Str(string, string) LogEvent { return e }
func (e nopEvent) Int(string, int) LogEvent { return e }
func (e nopEvent) Bool(string, bool) LogEvent { return e }
func (e nopEvent) Dur(string, time.Duration) LogEvent { return e }
func (e nopEvent) Interface(string, any) LogEvent { return e }
func (e nopEvent) Bytes(string, []byte) LogEvent { return e }
