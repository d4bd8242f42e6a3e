// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package transport builds the *http.Client the API client sends its
// attempts through: TLS policy, HTTP/2, connection pooling and optional
// client-side rate limiting.
package transport

import (
	"net"
	"net/http"
	"time"

	"golang.org/x/net/http2"
	"golang.org/x/time/rate"
)

// Options configure New. The zero value is a verifying, unlimited,
// HTTP/2-capable transport.
type Options struct {
	// TLS selects certificate handling.
	TLS TLSPolicy
	// Limit is the sustained number of attempts per second. Zero or
	// negative disables limiting.
	Limit float64
	// Burst is the number of attempts allowed at once. Values below 1
	// are raised to 1 when Limit is set.
	Burst int
	// DisableHTTP2 keeps the transport on HTTP/1.1.
	DisableHTTP2 bool
	// DialTimeout bounds connection establishment. Zero means 10s.
	DialTimeout time.Duration
	// MaxIdleConnsPerHost overrides the idle pool size per host.
	MaxIdleConnsPerHost int
}

const (
	defaultDialTimeout  = 10 * time.Second
	defaultIdlePerHost  = 10
	idleConnTimeout     = 90 * time.Second
	tlsHandshakeTimeout = 10 * time.Second
)

// New returns an *http.Client for o. The client has no overall timeout
// and does not follow cookies; per-attempt timeouts come from the
// caller's context.
func New(o Options) (*http.Client, error) {
	rt, err := NewRoundTripper(o)
	if err != nil {
		return nil, err
	}
	return &http.Client{Transport: rt}, nil
}

// NewRoundTripper returns the round tripper New installs.
func NewRoundTripper(o Options) (http.RoundTripper, error) {
	dial := o.DialTimeout
	if dial <= 0 {
		dial = defaultDialTimeout
	}
	idle := o.MaxIdleConnsPerHost
	if idle <= 0 {
		idle = defaultIdlePerHost
	}

	t := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   dial,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		TLSClientConfig:     o.TLS.Config(),
		TLSHandshakeTimeout: tlsHandshakeTimeout,
		MaxIdleConnsPerHost: idle,
		IdleConnTimeout:     idleConnTimeout,
		// The decoder handles Content-Encoding itself.
		DisableCompression: true,
	}
	if !o.DisableHTTP2 {
		if err := http2.ConfigureTransport(t); err != nil {
			return nil, err
		}
	}

	if o.Limit <= 0 {
		return t, nil
	}
	burst := o.Burst
	if burst < 1 {
		burst = 1
	}
	return Limit(t, rate.NewLimiter(rate.Limit(o.Limit), burst)), nil
}
