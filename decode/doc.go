// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

// Package decode turns a final HTTP response into a Document or a typed
// error.
//
// A Contract states what a successful response looks like. StatusOnly
// accepts any 2xx status and ignores the body. JSON additionally
// requires a non-empty, syntactically valid JSON body containing every
// listed Field, addressed by gjson path:
//
//	c := decode.JSON(
//		decode.Field{Path: "estimates.0.id", Name: "estimate ID"},
//		decode.Field{Path: "estimates.0.estimateNumber", Name: "estimate number"},
//	)
//
// Bodies are decompressed according to Content-Encoding before decoding;
// see NewReader.
package decode
