// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package request

import (
	"encoding/json"
	"fmt"
	"io"
)

// BodyBytes converts a generic body parameter to a byte slice for use
// as a request plan body.
//
// The conversion logic is:
//
// • nil yields a nil byte slice;
//
// • a []byte is returned unchanged, and a string is converted;
//
// • an io.Reader is read to the end, and closed afterward if it is also
// an io.Closer;
//
// • any other value is encoded as JSON.
//
// A read, close, or encoding failure is returned as an error together
// with a nil byte slice.
func BodyBytes(body interface{}) ([]byte, error) {
	switch x := body.(type) {
	case nil:
		return nil, nil
	case string:
		return []byte(x), nil
	case []byte:
		return x, nil
	case io.ReadCloser:
		b, err := io.ReadAll(x)
		if err != nil {
			return nil, err
		}
		if err = x.Close(); err != nil {
			return nil, err
		}
		return b, nil
	case io.Reader:
		return BodyBytes(io.NopCloser(x))
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return nil, fmt.Errorf("adagx/request: encode body: %w", err)
		}
		return b, nil
	}
}
