// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogama/adagx/request"
)

// A Policy controls if and how retries are done in a plan execution.
//
// The client consults the Classifier when an attempt receives a
// response, to tell a transient status from one that should be decoded.
// After every attempt it asks the Decider whether to retry and, if so,
// the Waiter how long to back off first.
//
// Implementations of Policy must be safe for concurrent use by multiple
// goroutines.
type Policy interface {
	Classifier
	Decider
	Waiter
}

// A Classifier reports whether an HTTP status code is transient, that
// is, whether the server may answer differently if asked again.
type Classifier interface {
	Transient(status int) bool
}

// Budget is implemented by policies that know their retry budget.
// The client uses it to report "attempt n of m" in its retry logs.
type Budget interface {
	MaxRetries() int
}

// Settings is the tunable value object from which a retry policy is
// built. The zero value never retries.
type Settings struct {
	// MaxRetries is the number of retries allowed beyond the first
	// attempt. Up to 1+MaxRetries attempts are made.
	MaxRetries int `koanf:"maxretries" validate:"gte=0,lte=100"`
	// InitialDelay is the wait before the first retry.
	InitialDelay time.Duration `koanf:"initialdelay" validate:"gte=0"`
	// Multiplier is the factor by which the wait grows on each further
	// retry. It must be at least 1 whenever InitialDelay is positive.
	Multiplier float64 `koanf:"multiplier" validate:"gte=1"`
	// RetryableStatus lists the status codes treated as transient.
	RetryableStatus []int `koanf:"retryablestatus" validate:"dive,gte=100,lte=599"`
	// MaxDelay caps every wait. Zero means uncapped.
	MaxDelay time.Duration `koanf:"maxdelay" validate:"gte=0"`
	// Jitter enables full jitter below the exponential ceiling.
	Jitter bool `koanf:"jitter"`
}

// DefaultSettings are the settings of DefaultPolicy: up to 3 retries,
// starting at 1 second and doubling, on 500, 502, 503 and 504.
var DefaultSettings = Settings{
	MaxRetries:      3,
	InitialDelay:    1 * time.Second,
	Multiplier:      2,
	RetryableStatus: []int{500, 502, 503, 504},
}

// DefaultPolicy is the retry policy built from DefaultSettings.
var DefaultPolicy = DefaultSettings.Policy()

// Never is a policy that never retries and treats no status as
// transient.
var Never Policy = NewPolicy(Statuses(), Times(0), NewFixedWaiter(0))

var errNegativeRetries = errors.New("adagx/retry: negative max retries")

// Validate reports settings that cannot describe a sensible policy.
func (s Settings) Validate() error {
	switch {
	case s.MaxRetries < 0:
		return errNegativeRetries
	case s.InitialDelay < 0:
		return fmt.Errorf("adagx/retry: negative initial delay %s", s.InitialDelay)
	case s.MaxDelay < 0:
		return fmt.Errorf("adagx/retry: negative max delay %s", s.MaxDelay)
	case s.InitialDelay > 0 && !(s.Multiplier >= 1):
		return fmt.Errorf("adagx/retry: multiplier %g is below 1", s.Multiplier)
	}
	for _, code := range s.RetryableStatus {
		if code < 100 || code > 599 {
			return fmt.Errorf("adagx/retry: invalid retryable status %d", code)
		}
	}
	return nil
}

// Policy builds an immutable retry policy from the settings. The status
// list is copied, so later changes to s.RetryableStatus have no effect
// on the returned policy. Negative values are treated as zero.
func (s Settings) Policy() Policy {
	n := s.MaxRetries
	if n < 0 {
		n = 0
	}

	var w Waiter
	if s.InitialDelay <= 0 {
		w = NewFixedWaiter(0)
	} else {
		maxDelay := s.MaxDelay
		if maxDelay < 0 {
			maxDelay = 0
		}
		var jitter interface{}
		if s.Jitter {
			jitter = time.Now()
		}
		w = NewExpWaiter(s.InitialDelay, s.Multiplier, maxDelay, jitter)
	}

	return budgetPolicy{
		policy: policy{
			classifier: Statuses(s.RetryableStatus...),
			decider:    Times(n).And(TransientOutcome),
			waiter:     w,
		},
		max: n,
	}
}

type policy struct {
	classifier Classifier
	decider    Decider
	waiter     Waiter
}

// NewPolicy composes a Classifier, a Decider and a Waiter into a retry
// Policy.
func NewPolicy(c Classifier, d Decider, w Waiter) Policy {
	return policy{classifier: c, decider: d, waiter: w}
}

func (p policy) Transient(status int) bool {
	return p.classifier.Transient(status)
}

func (p policy) Decide(e *request.Execution) bool {
	return p.decider.Decide(e)
}

func (p policy) Wait(e *request.Execution) time.Duration {
	return p.waiter.Wait(e)
}

type budgetPolicy struct {
	policy
	max int
}

func (p budgetPolicy) MaxRetries() int {
	return p.max
}

// Statuses returns a Classifier that treats exactly the listed status
// codes as transient. The list is copied.
func Statuses(ss ...int) Classifier {
	set := make(statusSet, len(ss))
	for _, s := range ss {
		set[s] = struct{}{}
	}
	return set
}

type statusSet map[int]struct{}

func (set statusSet) Transient(status int) bool {
	_, ok := set[status]
	return ok
}
