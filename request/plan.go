// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"

	"golang.org/x/net/http/httpguts"

	"github.com/gogama/adagx/decode"
)

const (
	nilCtxMsg  = "adagx/request: nil context"
	noBaseMsg  = "adagx/request: relative URL requires a base URL"
	relBaseMsg = "adagx/request: base URL must be absolute"
	badPathMsg = "adagx/request: invalid path"
)

// A Plan describes one logical call to the API: the method, target,
// headers, pre-buffered body, and the contract the response has to meet.
//
// A Plan is never modified by the client executing it. The client may
// make several HTTP request attempts from the same Plan when an attempt
// fails transiently, and each attempt sends exactly the same bytes.
//
// The URL may be absolute, or relative to the base URL configured on the
// client. A relative Plan is resolved against the base URL with Resolve,
// which returns a copy.
type Plan struct {
	// Method specifies the HTTP method (GET, POST, PUT, etc.).
	// An empty string means GET.
	Method string

	// URL specifies the URL to access. It may be relative, in which
	// case only its path and query are used.
	URL *urlpkg.URL

	// Header contains the request header fields to be sent on every
	// attempt.
	Header http.Header

	// Body is the pre-buffered request body to be sent. A nil or
	// empty body indicates no request body should be sent.
	Body []byte

	// Close stipulates whether to close the connection after each
	// attempt. Setting it prevents a later attempt from reusing the
	// connection of an earlier, failed one.
	Close bool

	// Host optionally overrides the Host header to send. If empty, the
	// value of URL.Host will be sent.
	Host string

	// Expect is the contract the final response must satisfy. The zero
	// value accepts any 2xx status and ignores the body.
	Expect decode.Contract

	// ctx allows the entire Plan execution to be cancelled. It should
	// only be modified by copying the whole Plan using WithContext.
	ctx context.Context
}

// NewPlan wraps NewPlanWithContext using the background context.
func NewPlan(method, url string, body interface{}) (*Plan, error) {
	return NewPlanWithContext(context.Background(), method, url, body)
}

// NewPlanWithContext returns a new Plan given a method, URL, and
// optional body.
//
// Parameter body may be nil (empty body), or it may be a string,
// []byte, io.Reader, or io.ReadCloser. If body is an io.Reader, it is
// read to the end and buffered into a []byte. If body is an
// io.ReadCloser, it is closed after buffering.
func NewPlanWithContext(ctx context.Context, method, url string, body interface{}) (*Plan, error) {
	if ctx == nil {
		return nil, errors.New(nilCtxMsg)
	}
	if method == "" {
		method = http.MethodGet
	}
	if !validMethod(method) {
		return nil, fmt.Errorf("adagx/request: invalid method %q", method)
	}
	u, err := urlpkg.Parse(url)
	if err != nil {
		return nil, err
	}
	u.Host = strings.TrimSuffix(u.Host, ":")
	b, err := BodyBytes(body)
	if err != nil {
		return nil, err
	}
	return &Plan{
		ctx:    ctx,
		Method: method,
		URL:    u,
		Header: make(http.Header),
		Body:   b,
		Host:   u.Host,
	}, nil
}

// Context returns the request plan's context. The returned context is
// always non-nil; it defaults to the background context.
func (p *Plan) Context() context.Context {
	if p.ctx != nil {
		return p.ctx
	}
	return context.Background()
}

// WithContext returns a shallow copy of p with its context changed to
// ctx, which must be non-nil.
//
// The context bounds the whole call: every attempt, every event
// handler, and every retry wait.
func (p *Plan) WithContext(ctx context.Context) *Plan {
	if ctx == nil {
		panic(nilCtxMsg)
	}
	p2 := new(Plan)
	*p2 = *p
	p2.ctx = ctx
	return p2
}

// Resolve returns p itself if its URL is absolute. Otherwise it returns
// a shallow copy of p whose URL is base with p's path appended to base's
// path and p's query in place of base's query.
func (p *Plan) Resolve(base *urlpkg.URL) (*Plan, error) {
	if p.URL.IsAbs() {
		return p, nil
	}
	if base == nil {
		return nil, errors.New(noBaseMsg)
	}
	if !base.IsAbs() {
		return nil, errors.New(relBaseMsg)
	}
	u, err := joinPath(base, p.URL.EscapedPath())
	if err != nil {
		return nil, err
	}
	u.RawQuery = p.URL.RawQuery
	u.Fragment = ""
	p2 := new(Plan)
	*p2 = *p
	p2.URL = u
	if p2.Host == "" {
		p2.Host = u.Host
	}
	return p2, nil
}

// joinPath appends the escaped path rel to base's path. The result is
// always rooted, and dot segments are kept verbatim rather than cleaned.
func joinPath(base *urlpkg.URL, rel string) (*urlpkg.URL, error) {
	u := *base
	joined := strings.TrimSuffix(base.EscapedPath(), "/")
	if rel != "" {
		joined += "/" + strings.TrimPrefix(rel, "/")
	}
	if !strings.HasPrefix(joined, "/") {
		joined = "/" + joined
	}
	path, err := urlpkg.PathUnescape(joined)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", badPathMsg, err)
	}
	u.Path = path
	u.RawPath = ""
	if path != joined {
		u.RawPath = joined
	}
	return &u, nil
}

// AddCookie adds a cookie to the plan. Per RFC 6265 section 5.4,
// AddCookie does not attach more than one Cookie header field, so all
// cookies are written into the same line separated by semicolons.
func (p *Plan) AddCookie(c *http.Cookie) {
	s := (&http.Cookie{Name: c.Name, Value: c.Value}).String()
	if h := p.Header.Get("Cookie"); h != "" {
		p.Header.Set("Cookie", h+"; "+s)
	} else {
		p.Header.Set("Cookie", s)
	}
}

// ToRequest creates an HTTP request for one attempt of the plan. The
// context of the new request is set to ctx, which may not be nil.
//
// The request shares the plan's URL and Header; callers that change
// either must clone it first.
func (p *Plan) ToRequest(ctx context.Context) *http.Request {
	r := (&http.Request{
		Method:     p.Method,
		URL:        p.URL,
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     p.Header,
		Close:      p.Close,
		Host:       p.Host,
	}).WithContext(ctx)
	if len(p.Body) > 0 {
		r.Body = io.NopCloser(bytes.NewReader(p.Body))
		r.GetBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(p.Body)), nil
		}
		r.ContentLength = int64(len(p.Body))
	}
	return r
}

func validMethod(method string) bool {
	return strings.IndexFunc(method, func(r rune) bool {
		return !httpguts.IsTokenRune(r)
	}) == -1
}
