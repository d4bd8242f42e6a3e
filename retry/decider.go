// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"time"

	"github.com/gogama/adagx/request"
)

// A Decider decides if a retry should be done after an attempt.
//
// Implementations of Decider must be safe for concurrent use by
// multiple goroutines.
//
// Use the constructors Times, StatusCode and Before, and the decider
// TransientOutcome; or implement your own. DeciderFunc converts an
// ordinary function into a Decider and composes deciders with And and Or.
type Decider interface {
	Decide(e *request.Execution) bool
}

// The DeciderFunc type is an adapter to allow the use of ordinary
// functions as retry deciders.
//
// Every DeciderFunc must be safe for concurrent use by multiple
// goroutines.
type DeciderFunc func(e *request.Execution) bool

// TransientOutcome is a decider that indicates a retry if the most
// recent attempt's outcome is request.Transient. Successes, terminal
// failures and errors of unknown shape are never retried.
var TransientOutcome DeciderFunc = transientOutcome

// Decide returns true if a retry should be done.
func (f DeciderFunc) Decide(e *request.Execution) bool {
	return f(e)
}

// And composes two deciders into one that returns true only if both
// do. g is not evaluated if f returns false.
func (f DeciderFunc) And(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) && g(e)
	}
}

// Or composes two deciders into one that returns true if either does.
// g is not evaluated if f returns true.
func (f DeciderFunc) Or(g DeciderFunc) DeciderFunc {
	return func(e *request.Execution) bool {
		return f(e) || g(e)
	}
}

// Times constructs a decider which allows up to n retries. It returns
// true while the zero-based attempt index e.Attempt is less than n.
func Times(n int) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Attempt < n
	}
}

// Before constructs a decider allowing retries while the execution has
// been running for less than d.
func Before(d time.Duration) DeciderFunc {
	return func(e *request.Execution) bool {
		return e.Duration() < d
	}
}

// StatusCode constructs a decider that returns true if the most recent
// attempt received a response with one of the status codes ss.
func StatusCode(ss ...int) DeciderFunc {
	c := Statuses(ss...)
	return func(e *request.Execution) bool {
		return e.Response != nil && c.Transient(e.StatusCode())
	}
}

func transientOutcome(e *request.Execution) bool {
	return e.Err != nil && e.Outcome() == request.Transient
}
