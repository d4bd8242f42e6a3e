// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package endpoint

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/gogama/adagx"
	"github.com/gogama/adagx/decode"
	"github.com/gogama/adagx/request"
)

const (
	// TokenCookie is the name of the session cookie carrying the
	// access token.
	TokenCookie = "Access-Token"
	// HeaderRequestID is the header carrying the per-call request ID.
	HeaderRequestID = "X-Request-ID"
)

// ErrNoToken is returned, before any request is sent, when a call is
// made without an access token.
var ErrNoToken = errors.New("no authentication token provided")

// A Descriptor declares one endpoint.
type Descriptor[T any] struct {
	// Name identifies the endpoint in errors.
	Name string
	// Method is the HTTP method. Empty means GET.
	Method string
	// Path is the path template relative to the client's base URL.
	// Each "{name}" segment is replaced with the path-escaped value of
	// Args.Path[name].
	Path string
	// Header holds fixed headers sent on every call, typically Accept.
	Header http.Header
	// Expect is the contract the response must satisfy.
	Expect decode.Contract
	// Result maps a decoded document into the endpoint's result. It is
	// only called after Expect accepted the response.
	Result func(doc decode.Document) (T, error)
}

// Args are the per-call inputs of an endpoint.
type Args struct {
	// Token is the access token sent in the session cookie. Required.
	Token string
	// Path holds the values of the path template parameters.
	Path map[string]string
	// Query holds query parameters appended to the expanded path.
	Query url.Values
	// Body is the request body, in any form accepted by
	// request.BodyBytes. Values other than strings, byte slices and
	// readers are JSON-encoded.
	Body interface{}
}

// Plan builds the request plan for one call of d.
//
// Every plan asks for a compressed response, carries the token as the
// Access-Token cookie and gets a fresh X-Request-ID. A plan with a body
// gets a JSON Content-Type unless d.Header sets one.
func (d Descriptor[T]) Plan(ctx context.Context, args Args) (*request.Plan, error) {
	if args.Token == "" {
		return nil, fmt.Errorf("adagx/endpoint: %s: %w", d.Name, ErrNoToken)
	}
	path, err := expand(d.Path, args.Path)
	if err != nil {
		return nil, fmt.Errorf("adagx/endpoint: %s: %w", d.Name, err)
	}
	if len(args.Query) > 0 {
		path += "?" + args.Query.Encode()
	}

	p, err := request.NewPlanWithContext(ctx, d.Method, path, args.Body)
	if err != nil {
		return nil, fmt.Errorf("adagx/endpoint: %s: %w", d.Name, err)
	}
	for k, vs := range d.Header {
		for _, v := range vs {
			p.Header.Add(k, v)
		}
	}
	p.Header.Set("Accept-Encoding", decode.AcceptEncoding)
	if len(p.Body) > 0 && p.Header.Get("Content-Type") == "" {
		p.Header.Set("Content-Type", "application/json")
	}
	p.Header.Set(HeaderRequestID, uuid.NewString())
	p.AddCookie(&http.Cookie{Name: TokenCookie, Value: args.Token})
	p.Expect = d.Expect
	return p, nil
}

// Call executes one call of d through doer and maps the result.
//
// Errors from the doer are returned as they are, so callers can inspect
// the *request.Error inside.
func Call[T any](ctx context.Context, doer adagx.Doer, d Descriptor[T], args Args) (T, error) {
	var zero T
	p, err := d.Plan(ctx, args)
	if err != nil {
		return zero, err
	}
	e, err := doer.Do(p)
	if err != nil {
		return zero, err
	}
	return d.Result(e.Document)
}

func expand(tmpl string, params map[string]string) (string, error) {
	var b strings.Builder
	for {
		i := strings.IndexByte(tmpl, '{')
		if i < 0 {
			b.WriteString(tmpl)
			return b.String(), nil
		}
		j := strings.IndexByte(tmpl[i:], '}')
		if j < 0 {
			return "", fmt.Errorf("unterminated parameter in path %q", tmpl)
		}
		name := tmpl[i+1 : i+j]
		v := params[name]
		if v == "" {
			return "", fmt.Errorf("missing path parameter %q", name)
		}
		if v == "." || v == ".." {
			return "", fmt.Errorf("path parameter %q must not be a dot segment", name)
		}
		b.WriteString(tmpl[:i])
		b.WriteString(url.PathEscape(v))
		tmpl = tmpl[i+j+1:]
	}
}
