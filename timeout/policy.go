// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package timeout provides policies for the timeout of each individual
// request attempt. Every attempt must end, so the client always applies
// one; the plan context can additionally bound the call as a whole.
package timeout

import (
	"time"

	"github.com/gogama/adagx/request"
)

// A Policy returns the timeout for the next attempt of an execution.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	Timeout(e *request.Execution) time.Duration
}

// DefaultTimeout is the attempt timeout used by DefaultPolicy.
const DefaultTimeout = 30 * time.Second

// DefaultPolicy gives every attempt DefaultTimeout.
var DefaultPolicy Policy = Fixed(DefaultTimeout)

// Fixed returns a policy that gives every attempt the timeout d. A
// non-positive d is replaced by DefaultTimeout, since an attempt
// without a deadline might never end.
func Fixed(d time.Duration) Policy {
	if d <= 0 {
		d = DefaultTimeout
	}
	return steps{d}
}

// Adaptive returns a policy that lengthens the timeout after an attempt
// timed out.
//
// The attempt after an attempt that did not time out gets usual. The
// attempt after the n-th timed-out attempt gets after[n-1], or the last
// element of after once the timeouts outnumber it.
//
//	p := Adaptive(2*time.Second, 5*time.Second, 20*time.Second)
func Adaptive(usual time.Duration, after ...time.Duration) Policy {
	s := make(steps, 0, 1+len(after))
	s = append(s, usual)
	return append(s, after...)
}

type steps []time.Duration

func (s steps) Timeout(e *request.Execution) time.Duration {
	if !e.Timeout() || e.AttemptTimeouts < 1 {
		return s[0]
	}

	i := e.AttemptTimeouts
	if i >= len(s) {
		i = len(s) - 1
	}

	return s[i]
}
