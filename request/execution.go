// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gogama/adagx/decode"
	"github.com/gogama/adagx/transient"
)

// An Execution represents the state of a single Plan execution.
//
// The client creates an Execution when a call starts, updates it as
// attempts complete, and returns it when the call ends. Timeout and
// retry policies and event handlers receive the same Execution; they
// should treat its exported fields as read-only, with the exception of
// reasonable changes to Request before it is sent.
type Execution struct {
	// Plan is the request plan being executed, resolved against the
	// client's base URL. It is never nil.
	Plan *Plan

	// Start is the start time of the execution.
	Start time.Time

	// End is the end time of the execution. It is the zero time until
	// the execution ends.
	End time.Time

	// Attempt is the zero-based index of the current attempt. An
	// execution that ends after an initial attempt plus two retries has
	// an Attempt of 2.
	Attempt int

	// AttemptTimeouts counts the attempts that ended in a timeout.
	AttemptTimeouts int

	// Request is the HTTP request of the current or most recent attempt.
	Request *http.Request

	// Response is the HTTP response of the most recent attempt. It is
	// nil if the attempt failed before a response arrived.
	//
	// The client closes the response body itself; handlers must not
	// read from it except during BeforeReadBody.
	Response *http.Response

	// Err is the error of the most recent attempt, or nil if the
	// attempt succeeded. Whenever Err is non-nil it is a *url.Error
	// wrapping an *Error.
	Err error

	// Body is the decompressed response body of the most recent attempt.
	// It is nil for transient attempts, whose bodies are discarded.
	Body []byte

	// Document is the decoded response of a successful attempt.
	Document decode.Document

	// Wait is the backoff the retry policy chose before the next
	// attempt. It is set just before the BeforeRetryWait event.
	Wait time.Duration

	// data holds values set by event handlers via SetValue.
	data context.Context
}

// StatusCode returns the status code of the most recent HTTP response,
// or 0 if there is none.
func (e *Execution) StatusCode() int {
	if e.Response == nil {
		return 0
	}

	return e.Response.StatusCode
}

// Header returns the headers of the most recent HTTP response, or a nil
// header if there is none. A nil header is safe for reads.
func (e *Execution) Header() http.Header {
	if e.Response == nil {
		return nil
	}

	return e.Response.Header
}

// Outcome classifies the most recent attempt.
//
// Before the first attempt completes, Outcome reports Terminal since
// there is nothing a retry could improve on.
func (e *Execution) Outcome() Kind {
	if e.Err == nil {
		if e.Response != nil {
			return Success
		}
		return Terminal
	}
	var reqErr *Error
	if errors.As(e.Err, &reqErr) {
		return reqErr.Kind
	}
	return Terminal
}

// Duration returns the duration of the execution: zero before it
// starts, End minus Start after it ends, and the elapsed time otherwise.
func (e *Execution) Duration() time.Duration {
	if !e.Started() {
		return 0
	} else if !e.Ended() {
		return time.Since(e.Start)
	}

	return e.End.Sub(e.Start)
}

// Started indicates whether the execution has started.
func (e *Execution) Started() bool {
	return !e.Start.IsZero()
}

// Ended indicates whether the execution has ended. Once it has, the
// execution does not change any more.
func (e *Execution) Ended() bool {
	return !e.End.IsZero()
}

// Timeout indicates whether Err currently holds a timeout, either of the
// most recent attempt or of the plan as a whole.
func (e *Execution) Timeout() bool {
	return transient.Categorize(e.Err) == transient.Timeout
}

// SetValue stores arbitrary handler data in the execution. The key
// follows the rules of context.WithValue: it must be comparable and
// should be an unexported type owned by the handler.
func (e *Execution) SetValue(key, value interface{}) {
	ctx := e.data
	if ctx == nil {
		ctx = context.Background()
	}

	e.data = context.WithValue(ctx, key, value)
}

// Value returns the value stored for key, or nil.
func (e *Execution) Value(key interface{}) interface{} {
	if e.data == nil {
		return nil
	}

	return e.data.Value(key)
}
