// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import "github.com/tidwall/gjson"

// A Document is the decoded result of a successful call. It is built
// fresh for every call and never shared.
type Document struct {
	// StatusCode is the HTTP status of the final response.
	StatusCode int
	// Raw is the decompressed response body. It is nil when the
	// contract ignored the body.
	Raw []byte

	root gjson.Result
}

// IsJSON reports whether the document holds a parsed JSON body.
func (d Document) IsJSON() bool {
	return d.root.Exists()
}

// Get returns the value at the gjson path.
func (d Document) Get(path string) gjson.Result {
	return d.root.Get(path)
}

// String returns the value at path as a string, or "" if absent.
func (d Document) String(path string) string {
	return d.root.Get(path).String()
}

// Value returns the whole parsed body as the generic types produced by
// encoding/json (map[string]interface{}, []interface{}, float64, ...).
// It returns nil for documents without a JSON body.
func (d Document) Value() interface{} {
	return d.root.Value()
}
