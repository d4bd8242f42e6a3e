// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", false, &buf)
	l.Warn().
		Int("attempt", 1).
		Dur("delay", time.Second).
		Str("request_id", "r-1").
		Bool("retry", true).
		Err(errors.New("boom")).
		Msg("retrying")

	entry := decodeLine(t, buf.String())
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "retrying", entry["message"])
	assert.Equal(t, float64(1), entry["attempt"])
	assert.Equal(t, "r-1", entry["request_id"])
	assert.Equal(t, true, entry["retry"])
	assert.Equal(t, "boom", entry["error"])
	assert.Contains(t, entry, "time")
}

func TestNew_Level(t *testing.T) {
	var buf bytes.Buffer
	l := New("warn", false, &buf)
	l.Debug().Msg("hidden")
	l.Info().Msgf("hidden %d", 2)
	assert.Empty(t, buf.String())
	l.Error().Msg("shown")
	assert.Contains(t, buf.String(), "shown")

	buf.Reset()
	New("nonsense", false, &buf).Debug().Msg("hidden")
	assert.Empty(t, buf.String(), "unknown level falls back to info")
}

func TestNew_Pretty(t *testing.T) {
	var buf bytes.Buffer
	New("info", true, &buf).Info().Str("env", "qa").Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.Contains(t, buf.String(), "env=")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestSensitive(t *testing.T) {
	var buf bytes.Buffer
	l := New("debug", false, &buf)
	l.Debug().Str("Cookie", "Access-Token=abc").Str("Authorization", "Bearer x").Msg("headers")
	entry := decodeLine(t, buf.String())
	assert.Equal(t, MaskValue, entry["Cookie"])
	assert.Equal(t, MaskValue, entry["Authorization"])

	buf.Reset()
	l.WithFields(map[string]any{"password": "hunter2", "user": "userOne", "token": 7}).Info().Msg("login")
	entry = decodeLine(t, buf.String())
	assert.Equal(t, MaskValue, entry["password"])
	assert.Equal(t, "userOne", entry["user"])
	assert.Equal(t, float64(7), entry["token"], "only strings are masked")

	assert.True(t, Sensitive("SET-COOKIE"))
	assert.False(t, Sensitive("content-encoding"))
}

func TestNop(t *testing.T) {
	l := Nop()
	assert.NotPanics(t, func() {
		l.WithFields(map[string]any{"a": 1}).Warn().
			Str("k", "v").Int("n", 1).Bool("b", true).Dur("d", time.Second).
			Interface("i", nil).Bytes("raw", []byte("x")).Err(nil).Msgf("%d", 1)
	})
}

func decodeLine(t *testing.T, s string) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(s), "\n")
	require.Len(t, lines, 1)
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &m))
	return m
}
