// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adagx

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gogama/adagx/decode"
	"github.com/gogama/adagx/logger"
	"github.com/gogama/adagx/request"
	"github.com/gogama/adagx/retry"
	"github.com/gogama/adagx/timeout"
)

// An HTTPDoer implements a Do method in the same manner as the standard
// library http.Client.
type HTTPDoer interface {
	// Do sends an HTTP request and returns an HTTP response, following
	// the contract documented on http.Client.
	Do(r *http.Request) (*http.Response, error)
}

var emptyHandlers = HandlerGroup{}

// A Client executes request plans against the API gateway, retrying
// transient failures. Its zero value is a valid configuration for
// absolute plan URLs.
//
// The zero value client uses http.DefaultClient as the HTTPDoer,
// timeout.DefaultPolicy, retry.DefaultPolicy, no event handlers and a
// logger that discards everything.
//
// Client is safe for concurrent use by multiple goroutines. Its
// HTTPDoer usually caches connections, so reuse Client instances.
//
// Each attempt goes through three layers. The retry loop in Do decides
// whether to try again. The attempt itself sends the request and
// classifies the response status. The plan's decode.Contract turns a
// final response into a decode.Document or a typed error.
type Client struct {
	// HTTPDoer sends the HTTP requests. Build one with transport.New
	// to get the environment's TLS policy.
	//
	// If HTTPDoer is nil, http.DefaultClient is used.
	HTTPDoer HTTPDoer
	// BaseURL is the scheme and host relative plans are resolved
	// against. It may carry a path prefix.
	BaseURL *url.URL
	// RetryPolicy classifies statuses, decides when to retry, and how
	// long to wait before doing so.
	//
	// If RetryPolicy is nil, retry.DefaultPolicy is used.
	RetryPolicy retry.Policy
	// TimeoutPolicy sets the timeout of each attempt.
	//
	// If TimeoutPolicy is nil, timeout.DefaultPolicy is used.
	TimeoutPolicy timeout.Policy
	// Handlers are invoked when designated events occur during a plan
	// execution.
	//
	// If Handlers is nil, no handlers are run.
	Handlers *HandlerGroup
	// Logger receives response diagnostics at debug level and a warning
	// before every retry.
	//
	// If Logger is nil, nothing is logged.
	Logger logger.Logger
}

// Do executes a request plan and returns the result of the final
// attempt.
//
// Attempts are made strictly one after another. An attempt whose
// response status is in the retry policy's transient set is retried
// while the policy allows, after the policy's wait. Any other failure,
// and any success, ends the execution at once. When the retry budget
// runs out, the last transient error is returned unchanged.
//
// The returned Execution is never nil. When the returned error is nil,
// the Execution holds the final Response, the decompressed Body and the
// decoded Document. Otherwise the error is a *url.Error wrapping a
// *request.Error, whose Kind tells a transient failure from a terminal
// one and whose StatusCode is that of the final response, or 0 if the
// attempt failed before one arrived. The Execution's Err field always
// references the same error.
//
// A relative plan URL is resolved against BaseURL first. If that fails
// no request is sent and no handler runs.
//
// Cancelling the plan context stops the execution, including during a
// retry wait. The error is then terminal and wraps the context error.
func (c *Client) Do(p *request.Plan) (*request.Execution, error) {
	resolved, err := p.Resolve(c.BaseURL)
	if err != nil {
		now := time.Now()
		e := request.Execution{Plan: p, Start: now, End: now}
		e.Err = wrapErr(p, request.NewTerminal(0, err))
		return &e, e.Err
	}
	p = resolved

	e := request.Execution{
		Plan: p,
	}

	doer := c.doer()
	log := c.logger()

	timeoutPolicy := c.TimeoutPolicy
	if timeoutPolicy == nil {
		timeoutPolicy = timeout.DefaultPolicy
	}

	retryPolicy := c.RetryPolicy
	if retryPolicy == nil {
		retryPolicy = retry.DefaultPolicy
	}

	handlers := c.Handlers
	if handlers == nil {
		handlers = &emptyHandlers
	}
	handlers.run(BeforeExecutionStart, &e)
	e.Start = time.Now()

RetryLoop:
	for {
		attempt(p, &e, doer, handlers, timeoutPolicy, retryPolicy, log)
		if e.Timeout() {
			e.AttemptTimeouts++
			handlers.run(AfterAttemptTimeout, &e)
		}
		handlers.run(AfterAttempt, &e)

		if planCtxErr := p.Context().Err(); planCtxErr != nil {
			if e.Err != nil {
				e.Err = wrapErr(p, request.NewTerminal(e.StatusCode(), planCtxErr))
			}
			if errors.Is(planCtxErr, context.DeadlineExceeded) {
				handlers.run(AfterPlanTimeout, &e)
			}
			break
		}

		if !retryPolicy.Decide(&e) {
			break
		}

		e.Wait = retryPolicy.Wait(&e)
		logRetry(log, &e, retryPolicy)
		handlers.run(BeforeRetryWait, &e)

		timer := time.NewTimer(e.Wait)
		select {
		case <-timer.C:
		case <-p.Context().Done():
			timer.Stop()
			ctxErr := p.Context().Err()
			e.Err = wrapErr(p, request.NewTerminal(e.StatusCode(), ctxErr))
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				handlers.run(AfterPlanTimeout, &e)
			}
			break RetryLoop
		}

		e.Response = nil
		e.Err = nil
		e.Body = nil
		e.Document = decode.Document{}
		e.Attempt++
	}

	e.End = time.Now()
	handlers.run(AfterExecutionEnd, &e)
	return &e, e.Err
}

func attempt(p *request.Plan, e *request.Execution, doer HTTPDoer, handlers *HandlerGroup,
	timeoutPolicy timeout.Policy, retryPolicy retry.Policy, log logger.Logger) {
	ctx, cancel := context.WithTimeout(p.Context(), timeoutPolicy.Timeout(e))
	defer cancel()
	e.Request = p.ToRequest(ctx)
	handlers.run(BeforeAttempt, e)

	resp, err := doer.Do(e.Request)
	if err != nil {
		if resp != nil && resp.Body != nil {
			_ = resp.Body.Close()
		}
		e.Err = wrapErr(p, request.NewTerminal(0, innerErr(err)))
		log.Debug().
			Str("request_id", requestID(e)).
			Str("method", p.Method).
			Str("url", p.URL.String()).
			Err(err).
			Msg("transport failure")
		return
	}

	e.Response = resp
	logResponse(log, e)

	if status := resp.StatusCode; retryPolicy.Transient(status) {
		_ = decode.Drain(resp.Body)
		e.Err = wrapErr(p, request.NewTransient(status))
		return
	}

	readBody(p, e, handlers, log)
}

func readBody(p *request.Plan, e *request.Execution, handlers *HandlerGroup, log logger.Logger) {
	defer func() {
		_ = e.Response.Body.Close()
	}()
	handlers.run(BeforeReadBody, e)

	status := e.Response.StatusCode
	if !p.Expect.WantsBody() && status >= 200 && status <= 299 {
		_ = decode.Drain(e.Response.Body)
		e.Body = []byte{}
		e.Document, _ = p.Expect.Decode(status, nil)
		return
	}

	body, err := decode.ReadBody(e.Response)
	if err != nil {
		e.Err = wrapErr(p, request.NewTerminal(status, err))
		return
	}
	log.Debug().
		Str("request_id", requestID(e)).
		Int("status", status).
		Bytes("body", body).
		Msg("response body")

	doc, err := p.Expect.Decode(status, body)
	if err != nil {
		e.Err = wrapErr(p, request.NewTerminal(status, err))
		return
	}
	if body == nil {
		body = []byte{}
	}
	e.Body = body
	e.Document = doc
}

func logResponse(log logger.Logger, e *request.Execution) {
	resp := e.Response
	redacted := make(map[string]string, len(resp.Header))
	for k, vs := range resp.Header {
		v := strings.Join(vs, ", ")
		if logger.Sensitive(k) {
			v = logger.MaskValue
		}
		redacted[k] = v
	}
	log.Debug().
		Str("request_id", requestID(e)).
		Int("attempt", e.Attempt+1).
		Int("status", resp.StatusCode).
		Str("content_encoding", resp.Header.Get("Content-Encoding")).
		Interface("headers", redacted).
		Msg("response received")
}

func logRetry(log logger.Logger, e *request.Execution, p retry.Policy) {
	ev := log.Warn().
		Str("request_id", requestID(e)).
		Int("attempt", e.Attempt+1).
		Int("status", e.StatusCode()).
		Dur("delay", e.Wait)
	if b, ok := p.(retry.Budget); ok {
		ev = ev.Int("max_retries", b.MaxRetries())
	}
	ev.Msgf("transient failure, retrying in %s", e.Wait)
}

func requestID(e *request.Execution) string {
	if e.Request == nil {
		return ""
	}
	return e.Request.Header.Get("X-Request-ID")
}

// CloseIdleConnections invokes the same method on the client's
// HTTPDoer, if it has one.
func (c *Client) CloseIdleConnections() {
	if ic, ok := c.doer().(IdleCloser); ok {
		ic.CloseIdleConnections()
	}
}

func (c *Client) doer() HTTPDoer {
	if c.HTTPDoer == nil {
		return http.DefaultClient
	}

	return c.HTTPDoer
}

func (c *Client) logger() logger.Logger {
	if c.Logger == nil {
		return logger.Nop()
	}

	return c.Logger
}

// innerErr strips the *url.Error the standard client adds, so the
// attempt error is wrapped exactly once.
func innerErr(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Err != nil {
		return urlErr.Err
	}
	return err
}

func wrapErr(p *request.Plan, err *request.Error) error {
	u := ""
	if p.URL != nil {
		u = p.URL.String()
	}
	return &url.Error{
		Op:  urlErrorOp(p.Method),
		URL: u,
		Err: err,
	}
}

// urlErrorOp is lifted verbatim from net/http/client.go
func urlErrorOp(method string) string {
	if method == "" {
		return "Get"
	}
	return method[:1] + strings.ToLower(method[1:])
}
