// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"net/http"

	"golang.org/x/time/rate"
)

// Limit wraps next so that every round trip first waits for a token
// from l. The wait honors the request context, so an attempt timeout
// also bounds time spent queued.
func Limit(next http.RoundTripper, l *rate.Limiter) http.RoundTripper {
	if l == nil {
		return next
	}
	if next == nil {
		next = http.DefaultTransport
	}
	return &limited{next: next, limiter: l}
}

type limited struct {
	next    http.RoundTripper
	limiter *rate.Limiter
}

func (l *limited) RoundTrip(r *http.Request) (*http.Response, error) {
	if err := l.limiter.Wait(r.Context()); err != nil {
		return nil, err
	}
	return l.next.RoundTrip(r)
}

// CloseIdleConnections forwards to the wrapped transport.
func (l *limited) CloseIdleConnections() {
	type idleCloser interface {
		CloseIdleConnections()
	}
	if c, ok := l.next.(idleCloser); ok {
		c.CloseIdleConnections()
	}
}
