// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"errors"
	"fmt"
)

// A Kind is the outcome of a single request attempt.
type Kind int

const (
	// Success means the attempt received a response that satisfied
	// the plan's contract.
	Success Kind = iota
	// Transient means the attempt received a response whose status
	// code is in the retry policy's retryable set. A retry may succeed.
	Transient
	// Terminal means the attempt failed in a way retrying will not
	// fix: a transport error, a non-retryable status, or a response
	// body that does not meet the plan's contract.
	Terminal
)

var kindNames = [...]string{"success", "transient", "terminal"}

// String returns the lowercase name of the outcome kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// ErrRetryableStatus is the cause recorded for an attempt whose status
// code is in the retryable set.
var ErrRetryableStatus = errors.New("retryable server status")

// An Error describes a failed request attempt. The client always
// exposes it wrapped inside a *url.Error, so use errors.As to obtain it.
type Error struct {
	// Kind is Transient or Terminal.
	Kind Kind
	// StatusCode is the HTTP status received, or 0 if the attempt
	// failed before a response arrived.
	StatusCode int
	// Err is the underlying cause.
	Err error
}

// NewTransient returns a transient attempt error for status code s.
func NewTransient(s int) *Error {
	return &Error{Kind: Transient, StatusCode: s, Err: ErrRetryableStatus}
}

// NewTerminal returns a terminal attempt error. Pass 0 for s if no
// response was received.
func NewTerminal(s int, cause error) *Error {
	return &Error{Kind: Terminal, StatusCode: s, Err: cause}
}

func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("%s failure: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("%s failure (status %d): %v", e.Kind, e.StatusCode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Transient reports whether the attempt may succeed on retry.
func (e *Error) Transient() bool {
	return e.Kind == Transient
}

// Timeout reports whether the underlying cause is a timeout. The
// *url.Error wrapper delegates its own Timeout method here.
func (e *Error) Timeout() bool {
	var t interface{ Timeout() bool }
	return errors.As(e.Err, &t) && t.Timeout()
}

// Status returns the HTTP status code carried by err, if any. It
// reports false when err carries no *Error or no response was received.
func Status(err error) (int, bool) {
	var e *Error
	if errors.As(err, &e) && e.StatusCode != 0 {
		return e.StatusCode, true
	}
	return 0, false
}
