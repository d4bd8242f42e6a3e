// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transient

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCategorize(t *testing.T) {
	testCases := []struct {
		name string
		err  error
		want Category
	}{
		{"nil", nil, Not},
		{"plain", errors.New("foo"), Not},
		{"empty wrapper", wrapper{}, Not},
		{"wrapped plain", wrapper{errors.New("bar")}, Not},
		{"unreachable", syscall.EHOSTUNREACH, Not},
		{"status", status{true}, Status},
		{"not status", status{false}, Not},
		{"url-wrapped status", &url.Error{Op: "Get", URL: "x", Err: status{true}}, Status},
		{"deeply wrapped status", wrapper{wrapper{status{true}}}, Status},
		{"ETIMEDOUT", syscall.ETIMEDOUT, Timeout},
		{"deadline", context.DeadlineExceeded, Timeout},
		{"url-wrapped timeout", &url.Error{Err: syscall.ETIMEDOUT}, Timeout},
		{"wrapped timeout", wrapper{wrapper{timeoutErr{}}}, Timeout},
		{"timeout beats errno", timeoutWrapper{true, syscall.ECONNRESET}, Timeout},
		{"ECONNRESET", syscall.ECONNRESET, ConnReset},
		{"wrapped ECONNRESET", wrapper{syscall.ECONNRESET}, ConnReset},
		{"no-timeout ECONNRESET", timeoutWrapper{false, syscall.ECONNRESET}, ConnReset},
		{"ECONNREFUSED", syscall.ECONNREFUSED, ConnRefused},
		{"url-wrapped ECONNREFUSED", &url.Error{Err: wrapper{timeoutWrapper{false, syscall.ECONNREFUSED}}}, ConnRefused},
	}
	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.want, Categorize(testCase.err))
		})
	}
}

func TestCategory_String(t *testing.T) {
	assert.Equal(t, "not", Not.String())
	assert.Equal(t, "status", Status.String())
	assert.Equal(t, "timeout", Timeout.String())
	assert.Equal(t, "conn-refused", ConnRefused.String())
	assert.Equal(t, "conn-reset", ConnReset.String())
	assert.Equal(t, "unknown", Category(42).String())
}

type status struct {
	transient bool
}

func (err status) Error() string {
	return fmt.Sprintf("status - transient %t", err.transient)
}

func (err status) Transient() bool {
	return err.transient
}

type timeoutErr struct{}

func (err timeoutErr) Error() string {
	return "timeout"
}

func (timeoutErr) Timeout() bool {
	return true
}

type wrapper struct {
	wrappedError error
}

func (err wrapper) Error() string {
	return fmt.Sprintf("wrapper - wraps %v", err.wrappedError)
}

func (err wrapper) Unwrap() error {
	return err.wrappedError
}

type timeoutWrapper struct {
	timeout      bool
	wrappedError error
}

func (err timeoutWrapper) Error() string {
	return fmt.Sprintf("timeoutWrapper - timeout %t, wraps %v", err.timeout, err.wrappedError)
}

func (err timeoutWrapper) Timeout() bool {
	return err.timeout
}

func (err timeoutWrapper) Unwrap() error {
	return err.wrappedError
}
