// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"errors"
	"fmt"
)

// ErrEmptyResponse is returned for a 2xx response with a blank body
// under a JSON contract.
var ErrEmptyResponse = errors.New("empty response")

var errInvalidJSON = errors.New("invalid JSON")

// excerptLen bounds the body text carried by a StatusError.
const excerptLen = 256

// A StatusError reports a final response whose status is outside 2xx.
type StatusError struct {
	StatusCode int
	// Excerpt is the start of the decompressed body, possibly empty.
	Excerpt string
}

func (e *StatusError) Error() string {
	if e.Excerpt == "" {
		return fmt.Sprintf("unexpected status %d", e.StatusCode)
	}
	return fmt.Sprintf("unexpected status %d: %s", e.StatusCode, e.Excerpt)
}

// A SyntaxError reports a body that is not valid JSON.
type SyntaxError struct {
	Err error
}

func (e *SyntaxError) Error() string {
	return "invalid JSON response: " + e.Err.Error()
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// A MissingFieldError reports a required field absent from a JSON
// response.
type MissingFieldError struct {
	Field Field
}

func (e *MissingFieldError) Error() string {
	return e.Field.Name + " not found in response"
}

func excerpt(body []byte) string {
	if len(body) > excerptLen {
		body = body[:excerptLen]
	}
	return string(body)
}
