// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package adagx provides a resilient client for the JSON-over-HTTPS API
gateway of the estimate management platform.

A Client executes request plans, retrying attempts that fail with a
transient server status. Build it from configuration:

	cfg, err := config.Load(config.Options{})
	...
	hc, err := transport.New(transport.Options{TLS: cfg.TLSPolicy()})
	...
	client := &adagx.Client{
		HTTPDoer:    hc,
		BaseURL:     cfg.BaseURL(),
		RetryPolicy: cfg.RetrySettings().Policy(),
		Logger:      logger.New(cfg.Log.Level, cfg.Log.Pretty, nil),
	}

The endpoint operations live in package adag:

	api := adag.API{Doer: client}
	created, err := api.CreateEstimate(ctx, token)

Every failure is a *url.Error wrapping a *request.Error. Use errors.As
to inspect it, and errors.As or errors.Is on the decode package's error
types for decoder failures:

	var missing *decode.MissingFieldError
	if errors.As(err, &missing) {
		...
	}

Client runs handlers at designated events of each execution (see Event),
which is how package tracing attaches OpenTelemetry spans.
*/
package adagx
