// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package decode

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zlib"
)

// AcceptEncoding is the Accept-Encoding value matching the codings
// NewReader understands.
const AcceptEncoding = "gzip, deflate, br"

// DrainLimit bounds how much of a discarded body is read so the
// connection can be reused.
const DrainLimit = 64 << 10

// NewReader returns a reader that undoes the content codings listed in
// encoding, a Content-Encoding header value. Codings are undone last
// first. Empty and "identity" codings pass r through.
//
// Recognized codings are gzip (and x-gzip), deflate and br. For
// deflate, both the zlib-wrapped form required by RFC 9110 and the raw
// form some servers send are accepted.
func NewReader(encoding string, r io.Reader) (io.ReadCloser, error) {
	codings := strings.Split(encoding, ",")
	rc := io.NopCloser(r)
	closers := make([]io.Closer, 0, len(codings))
	for i := len(codings) - 1; i >= 0; i-- {
		next, wrapped, err := decoder(strings.ToLower(strings.TrimSpace(codings[i])), rc)
		if err != nil {
			_ = closeAll(closers)
			return nil, err
		}
		if wrapped {
			closers = append(closers, next)
		}
		rc = next
	}
	return &multiCloser{ReadCloser: rc, closers: closers}, nil
}

func decoder(coding string, r io.ReadCloser) (io.ReadCloser, bool, error) {
	switch coding {
	case "", "identity":
		return r, false, nil
	case "gzip", "x-gzip", "deflate", "br":
	default:
		return nil, false, fmt.Errorf("adagx/decode: unsupported content encoding %q", coding)
	}

	// An empty coded stream is an empty body, not a truncated one.
	br := bufio.NewReader(r)
	if _, err := br.Peek(1); err == io.EOF {
		return io.NopCloser(br), false, nil
	}

	switch coding {
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, false, fmt.Errorf("adagx/decode: gzip: %w", err)
		}
		return zr, true, nil
	case "deflate":
		if isZlib(br) {
			zr, err := zlib.NewReader(br)
			if err != nil {
				return nil, false, fmt.Errorf("adagx/decode: deflate: %w", err)
			}
			return zr, true, nil
		}
		return flate.NewReader(br), true, nil
	default:
		return io.NopCloser(brotli.NewReader(br)), true, nil
	}
}

// isZlib peeks at the two-byte zlib header: compression method 8 and a
// header checksum divisible by 31.
func isZlib(br *bufio.Reader) bool {
	h, err := br.Peek(2)
	if err != nil {
		return false
	}
	return h[0]&0x0f == 8 && (uint16(h[0])<<8|uint16(h[1]))%31 == 0
}

type multiCloser struct {
	io.ReadCloser
	closers []io.Closer
}

func (m *multiCloser) Close() error {
	return closeAll(m.closers)
}

func closeAll(closers []io.Closer) error {
	var first error
	for i := len(closers) - 1; i >= 0; i-- {
		if err := closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

// ReadBody reads resp.Body to completion, decompressing it according to
// the Content-Encoding header. It does not close resp.Body.
//
// If the transport already decompressed the body, it is read as is.
func ReadBody(resp *http.Response) ([]byte, error) {
	if resp.Body == nil || resp.Body == http.NoBody {
		return nil, nil
	}

	encoding := resp.Header.Get("Content-Encoding")
	if resp.Uncompressed {
		encoding = ""
	}

	r, err := NewReader(encoding, resp.Body)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return io.ReadAll(r)
}

// Drain discards up to DrainLimit bytes of body and closes it.
func Drain(body io.ReadCloser) error {
	if body == nil {
		return nil
	}
	_, _ = io.CopyN(io.Discard, body, DrainLimit)
	return body.Close()
}
