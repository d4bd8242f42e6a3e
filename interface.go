// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package adagx

import (
	"context"

	"github.com/gogama/adagx/request"
)

// A Doer executes request plans. *Client is the Doer of this package;
// endpoint callers accept any Doer so they can be tested against fakes.
type Doer interface {
	Do(p *request.Plan) (*request.Execution, error)
}

// An IdleCloser closes idle connections.
type IdleCloser interface {
	CloseIdleConnections()
}

// Get executes a GET plan for url through d. url may be relative to the
// Doer's base URL.
func Get(ctx context.Context, d Doer, url string) (*request.Execution, error) {
	p, err := request.NewPlanWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	return d.Do(p)
}

// Post executes a POST plan for url through d. body may be any value
// accepted by request.BodyBytes; a non-empty contentType is set as the
// Content-Type header.
func Post(ctx context.Context, d Doer, url, contentType string, body interface{}) (*request.Execution, error) {
	p, err := request.NewPlanWithContext(ctx, "POST", url, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		p.Header.Set("Content-Type", contentType)
	}
	return d.Do(p)
}

// DoerFunc adapts an ordinary function to the Doer interface.
type DoerFunc func(p *request.Plan) (*request.Execution, error)

// Do calls f(p).
func (f DoerFunc) Do(p *request.Plan) (*request.Execution, error) {
	return f(p)
}
