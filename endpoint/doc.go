// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package endpoint describes API gateway endpoints declaratively and
// calls them through an adagx.Doer.
//
// A Descriptor names the method, path template, fixed headers, response
// contract and result mapper of one endpoint. Call turns the descriptor
// and per-call Args into a request plan, executes it, and maps the
// decoded document into the endpoint's result type. Descriptors hold no
// state and are safe to share.
package endpoint
