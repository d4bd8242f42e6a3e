// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adagx

// An Event identifies a point in a plan execution at which a Client
// runs the handlers installed for it.
type Event int

const (
	// BeforeExecutionStart occurs before the first attempt. Only the
	// execution's Plan is set.
	BeforeExecutionStart Event = iota
	// BeforeAttempt occurs before each attempt is sent. The execution's
	// Request is the request that will be sent once the handlers are
	// done.
	//
	// Handlers may replace or change the Request. Its URL and Header
	// are shared with the Plan, so clone them before making changes.
	BeforeAttempt
	// BeforeReadBody occurs after an attempt received a response whose
	// status is not transient, before the body is read and decoded.
	//
	// It never fires for transport failures or transient statuses,
	// whose bodies are discarded unread.
	BeforeReadBody
	// AfterAttemptTimeout occurs after an attempt failed because of a
	// timeout. The attempt timeout counter has already been increased.
	AfterAttemptTimeout
	// AfterAttempt occurs after every attempt, whatever its outcome,
	// before the retry policy is asked for a decision. Either Response
	// or Err, or both, are set.
	AfterAttempt
	// BeforeRetryWait occurs after the retry policy decided to retry
	// and chose a wait, and before the wait starts. The execution's
	// Wait holds the chosen backoff.
	BeforeRetryWait
	// AfterPlanTimeout occurs when the plan context deadline has passed,
	// either at the end of an attempt or during a retry wait. It always
	// follows AfterAttempt.
	AfterPlanTimeout
	// AfterExecutionEnd occurs once the execution has ended. The
	// execution is in its final state, End included.
	AfterExecutionEnd

	eventSentinel

	numEvents = int(eventSentinel)
)

var eventNames = []string{
	"BeforeExecutionStart",
	"BeforeAttempt",
	"BeforeReadBody",
	"AfterAttemptTimeout",
	"AfterAttempt",
	"BeforeRetryWait",
	"AfterPlanTimeout",
	"AfterExecutionEnd",
}

// Events returns every event, in the order they can occur.
func Events() []Event {
	return []Event{
		BeforeExecutionStart,
		BeforeAttempt,
		BeforeReadBody,
		AfterAttemptTimeout,
		AfterAttempt,
		BeforeRetryWait,
		AfterPlanTimeout,
		AfterExecutionEnd,
	}
}

// Name returns the name of the event.
func (evt Event) Name() string {
	return eventNames[int(evt)]
}

func (evt Event) String() string {
	return evt.Name()
}
