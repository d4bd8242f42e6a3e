// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"errors"
	"syscall"
)

// A Category is the transience category of an attempt error, as
// reported by Categorize.
//
// Only Status is retried by the default retry policy. The remaining
// categories describe transport failures that may or may not clear up
// on their own; they are reported for diagnostics and feed the adaptive
// timeout policy, but a plain transport failure is terminal.
type Category int

const (
	// Not indicates a nil error, or an error with no transient aspect.
	Not Category = iota
	// Status indicates the attempt received a response whose status
	// code is in the retryable set.
	//
	// Categorize returns Status if the error or any of its wrapped
	// causes has a Transient method that reports true.
	Status
	// Timeout indicates a client-side timeout of the attempt or of the
	// whole call.
	//
	// Categorize returns Timeout if the error or any of its wrapped
	// causes has a Timeout method that reports true.
	Timeout
	// ConnRefused indicates the remote host refused the connection
	// (syscall.ECONNREFUSED).
	ConnRefused
	// ConnReset indicates the remote host reset a previously active
	// connection (syscall.ECONNRESET).
	ConnReset
)

var categoryNames = [...]string{"not", "status", "timeout", "conn-refused", "conn-reset"}

// String returns a short lowercase name for the category, suitable as a
// log field value.
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Categorize returns the transience category of err, looking through
// wrapped causes. A nil error is Not.
func Categorize(err error) Category {
	if err == nil {
		return Not
	}

	var ht hasTransient
	if errors.As(err, &ht) && ht.Transient() {
		return Status
	}

	var hto hasTimeout
	if errors.As(err, &hto) && hto.Timeout() {
		return Timeout
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch errno {
		case syscall.ECONNRESET:
			return ConnReset
		case syscall.ECONNREFUSED:
			return ConnRefused
		}
	}

	return Not
}

type hasTransient interface {
	Transient() bool
}

type hasTimeout interface {
	Timeout() bool
}
