// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/gogama/adagx/request"
)

// A Waiter specifies how long to wait before retrying a failed attempt.
//
// Implementations of Waiter must be safe for concurrent use by multiple
// goroutines.
//
// The client does not call the Waiter if the Decider returned false.
type Waiter interface {
	Wait(e *request.Execution) time.Duration
}

// NewFixedWaiter constructs a Waiter that always returns d.
func NewFixedWaiter(d time.Duration) Waiter {
	return fixedWaiter(d)
}

type fixedWaiter time.Duration

func (w fixedWaiter) Wait(_ *request.Execution) time.Duration {
	return time.Duration(w)
}

// NewExpWaiter constructs a Waiter implementing multiplicative backoff
// with optional jitter. The wait after zero-based attempt k is
//
//	ceil := base * factor**k
//
// capped at max when max is positive. A factor below 1 is treated as 1,
// giving a constant wait. base must be positive and a positive max must
// be at least base.
//
// Pass nil for jitter to get exactly ceil on each attempt. Otherwise
// pass a seed (time.Time, int or int64) or a rand.Source, and each wait
// is drawn uniformly from [0, ceil), the "Full Jitter" approach of
// https://aws.amazon.com/blogs/architecture/exponential-backoff-and-jitter.
func NewExpWaiter(base time.Duration, factor float64, max time.Duration, jitter interface{}) Waiter {
	if base < 1 {
		panic("adagx/retry: base must be positive")
	}
	if max > 0 && max < base {
		panic("adagx/retry: max must be at least base")
	}
	if factor < 1 || math.IsNaN(factor) {
		factor = 1
	}
	return &expWaiter{
		base:   base,
		factor: factor,
		max:    max,
		rand:   jitterToRand(jitter),
	}
}

type expWaiter struct {
	base   time.Duration
	factor float64
	max    time.Duration
	rand   *rand.Rand
	lock   sync.Mutex
}

func (w *expWaiter) Wait(e *request.Execution) time.Duration {
	ceil := w.ceil(e.Attempt)
	if w.rand == nil || ceil <= 0 {
		return ceil
	}

	w.lock.Lock()
	defer w.lock.Unlock()
	return time.Duration(w.rand.Int63n(int64(ceil)))
}

func (w *expWaiter) ceil(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}

	f := float64(w.base) * math.Pow(w.factor, float64(attempt))
	limit := float64(math.MaxInt64)
	if w.max > 0 {
		limit = float64(w.max)
	}
	if f >= limit || math.IsInf(f, 1) {
		if w.max > 0 {
			return w.max
		}
		return time.Duration(math.MaxInt64)
	}

	return time.Duration(f)
}

func jitterToRand(jitter interface{}) *rand.Rand {
	var s rand.Source
	switch j := jitter.(type) {
	case nil:
		return nil
	case time.Time:
		s = rand.NewSource(j.UnixNano())
	case int:
		s = rand.NewSource(int64(j))
	case int64:
		s = rand.NewSource(j)
	case *rand.Rand:
		if j == nil {
			panic("adagx/retry: jitter may not be a typed nil")
		}
		return j
	case rand.Source:
		s = j
	default:
		panic("adagx/retry: invalid jitter type")
	}
	return rand.New(s)
}
