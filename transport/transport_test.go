// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package transport

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestTLSPolicy(t *testing.T) {
	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "verify", Verify.String())
		assert.Equal(t, "permissive", Permissive.String())
		assert.Equal(t, "TLSPolicy(7)", TLSPolicy(7).String())
	})
	t.Run("Parse", func(t *testing.T) {
		for in, want := range map[string]TLSPolicy{"": Verify, "verify": Verify, " Permissive ": Permissive} {
			got, err := ParseTLSPolicy(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
		_, err := ParseTLSPolicy("lax")
		assert.EqualError(t, err, `adagx/transport: unknown TLS policy "lax"`)
	})
	t.Run("Config", func(t *testing.T) {
		v := Verify.Config()
		assert.False(t, v.InsecureSkipVerify)
		assert.Equal(t, uint16(tls.VersionTLS12), v.MinVersion)
		assert.Equal(t, tls.RenegotiateNever, v.Renegotiation)

		p := Permissive.Config()
		assert.True(t, p.InsecureSkipVerify)
		assert.Equal(t, uint16(tls.VersionTLS10), p.MinVersion)
		assert.Equal(t, tls.RenegotiateFreelyAsClient, p.Renegotiation)
	})
}

func TestNew(t *testing.T) {
	server := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "ok")
	}))
	defer server.Close()

	t.Run("verify rejects self-signed", func(t *testing.T) {
		c, err := New(Options{})
		require.NoError(t, err)
		_, err = c.Get(server.URL)
		assert.Error(t, err)
	})
	t.Run("permissive accepts self-signed", func(t *testing.T) {
		c, err := New(Options{TLS: Permissive, DisableHTTP2: true})
		require.NoError(t, err)
		resp, err := c.Get(server.URL)
		require.NoError(t, err)
		defer func() { _ = resp.Body.Close() }()
		b, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, "ok", string(b))
	})
	t.Run("compression left to caller", func(t *testing.T) {
		rt, err := NewRoundTripper(Options{})
		require.NoError(t, err)
		ht, ok := rt.(*http.Transport)
		require.True(t, ok)
		assert.True(t, ht.DisableCompression)
	})
	t.Run("limited", func(t *testing.T) {
		rt, err := NewRoundTripper(Options{Limit: 5})
		require.NoError(t, err)
		assert.IsType(t, &limited{}, rt)
	})
}

func TestLimit(t *testing.T) {
	var calls int32
	next := roundTripperFunc(func(r *http.Request) (*http.Response, error) {
		atomic.AddInt32(&calls, 1)
		return &http.Response{StatusCode: 200, Body: io.NopCloser(strings.NewReader("")), Request: r}, nil
	})

	t.Run("nil limiter", func(t *testing.T) {
		rt := Limit(next, nil)
		_, ok := rt.(roundTripperFunc)
		assert.True(t, ok)
	})
	t.Run("waits for token", func(t *testing.T) {
		rt := Limit(next, rate.NewLimiter(rate.Every(time.Hour), 1))
		r1, _ := http.NewRequest(http.MethodGet, "https://example.com", nil)
		_, err := rt.RoundTrip(r1)
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()
		r2, _ := http.NewRequestWithContext(ctx, http.MethodGet, "https://example.com", nil)
		_, err = rt.RoundTrip(r2)
		assert.Error(t, err)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})
	t.Run("cancelled context", func(t *testing.T) {
		rt := Limit(next, rate.NewLimiter(rate.Every(time.Hour), 1))
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		r, _ := http.NewRequestWithContext(ctx, http.MethodGet, "https://example.com", nil)
		_, err := rt.RoundTrip(r)
		assert.True(t, errors.Is(err, context.Canceled))
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) {
	return f(r)
}
