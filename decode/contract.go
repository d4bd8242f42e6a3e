// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"bytes"
	"encoding/json"

	"github.com/tidwall/gjson"
)

// A Field is a value that must be present in a JSON response.
type Field struct {
	// Path is the gjson path of the value, e.g. "estimates.0.id".
	Path string
	// Name is the human-readable name used in MissingFieldError.
	Name string
}

// A Contract describes what a successful response must contain. The
// zero value is StatusOnly.
type Contract struct {
	json   bool
	fields []Field
}

// StatusOnly returns a contract satisfied by any 2xx status. The body
// is ignored.
func StatusOnly() Contract {
	return Contract{}
}

// JSON returns a contract requiring a 2xx status and a valid JSON body
// in which each of fields is present, non-null and, if a string,
// non-empty. The fields are copied.
func JSON(fields ...Field) Contract {
	fs := make([]Field, len(fields))
	copy(fs, fields)
	return Contract{json: true, fields: fs}
}

// WantsBody reports whether Decode looks at the response body. When it
// does not, the caller may discard the body unread.
func (c Contract) WantsBody() bool {
	return c.json
}

// Fields returns a copy of the required fields.
func (c Contract) Fields() []Field {
	fs := make([]Field, len(c.fields))
	copy(fs, c.fields)
	return fs
}

// Decode checks a final response against the contract. body must be
// already decompressed.
//
// A status outside 2xx yields a *StatusError, whatever the body holds.
// For JSON contracts a blank body yields ErrEmptyResponse, malformed
// JSON a *SyntaxError, and an absent required field a
// *MissingFieldError naming the first one missing.
func (c Contract) Decode(status int, body []byte) (Document, error) {
	if status < 200 || status > 299 {
		return Document{}, &StatusError{StatusCode: status, Excerpt: excerpt(body)}
	}

	doc := Document{StatusCode: status, Raw: body}
	if !c.json {
		return doc, nil
	}

	if len(bytes.TrimSpace(body)) == 0 {
		return Document{}, ErrEmptyResponse
	}

	if !gjson.ValidBytes(body) {
		return Document{}, syntaxError(body)
	}
	doc.root = gjson.ParseBytes(body)

	for _, f := range c.fields {
		if missing(doc.root.Get(f.Path)) {
			return Document{}, &MissingFieldError{Field: f}
		}
	}

	return doc, nil
}

func missing(r gjson.Result) bool {
	switch {
	case !r.Exists():
		return true
	case r.Type == gjson.Null:
		return true
	case r.Type == gjson.String && r.Str == "":
		return true
	}
	return false
}

// syntaxError builds a *SyntaxError from the standard decoder, which
// reports the byte offset of the problem.
func syntaxError(body []byte) error {
	var v interface{}
	err := json.Unmarshal(body, &v)
	if err == nil {
		err = errInvalidJSON
	}
	return &SyntaxError{Err: err}
}
