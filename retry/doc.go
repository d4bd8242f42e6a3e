// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package retry provides policies for retrying transient attempts during
// a plan execution, and for how long to wait before retrying.
//
// Most callers build a policy from Settings, the tunable value object
// that config loads:
//
//	p := retry.Settings{
//		MaxRetries:      3,
//		InitialDelay:    time.Second,
//		Multiplier:      2,
//		RetryableStatus: []int{500, 502, 503, 504},
//	}.Policy()
//
// A Policy can also be assembled by hand with NewPolicy from a
// Classifier, a Decider and a Waiter:
//
//	d := retry.Times(3).And(retry.Before(10 * time.Second)).And(retry.TransientOutcome)
//	w := retry.NewExpWaiter(100*time.Millisecond, 2, 2*time.Second, nil)
//	p := retry.NewPolicy(retry.Statuses(429, 503), d, w)
package retry
