// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package request contains the core types Plan (one logical API call),
Execution (the state of running a Plan), and Error (the failure of one
attempt).

A Plan carries everything needed to send the same HTTP request again if
an attempt fails transiently: method, URL, headers, a pre-buffered body,
and the decode.Contract the response has to meet.

	p, err := request.NewPlanWithContext(ctx, "GET", "/ADAG/sso/logout", nil)
	...
	e, err := client.Do(p)

Each attempt ends in one of three outcomes, reported by
Execution.Outcome: Success, Transient (the status code is in the retry
policy's retryable set), or Terminal (anything else that went wrong).
A failed attempt always records an *Error, wrapped in a *url.Error, that
carries the outcome kind and, when a response arrived, its status code:

	var reqErr *request.Error
	if errors.As(err, &reqErr) && reqErr.Kind == request.Terminal {
		...
	}
*/
package request
