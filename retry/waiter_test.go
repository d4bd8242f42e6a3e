// Copyright 2026 The adagx Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

package retry

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"github.com/gogama/adagx/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestFixedWaiter(t *testing.T) {
	w := NewFixedWaiter(250 * time.Millisecond)
	for i := 0; i < 5; i++ {
		assert.Equal(t, 250*time.Millisecond, w.Wait(&request.Execution{Attempt: i}))
	}
}

func TestNewExpWaiter(t *testing.T) {
	t.Run("invalid base", func(t *testing.T) {
		assert.Panics(t, func() { NewExpWaiter(-1, 2, 0, nil) }, "negative base")
		assert.Panics(t, func() { NewExpWaiter(0, 2, 0, nil) }, "zero base")
	})
	t.Run("invalid max", func(t *testing.T) {
		assert.Panics(t, func() { NewExpWaiter(2, 2, 1, nil) }, "max less than base")
	})
	t.Run("invalid jitter", func(t *testing.T) {
		assert.Panics(t, func() { NewExpWaiter(time.Millisecond, 2, 0, float64(1)) }, "float64")
		var nilRand *rand.Rand
		assert.Panics(t, func() { NewExpWaiter(time.Millisecond, 2, 0, nilRand) }, "nil *rand.Rand")
	})
	t.Run("jitter types", func(t *testing.T) {
		for _, j := range []interface{}{time.Now(), 7, int64(7), rand.NewSource(7), rand.New(rand.NewSource(7))} {
			w := NewExpWaiter(time.Millisecond, 2, 0, j).(*expWaiter)
			assert.NotNil(t, w.rand)
		}
	})
}

func TestExpWaiter_Wait(t *testing.T) {
	t.Run("doubling", func(t *testing.T) {
		w := NewExpWaiter(time.Second, 2, 0, nil)
		want := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second}
		for k, d := range want {
			assert.Equal(t, d, w.Wait(&request.Execution{Attempt: k}), "attempt %d", k)
		}
	})
	t.Run("fractional factor", func(t *testing.T) {
		w := NewExpWaiter(100*time.Millisecond, 1.5, 0, nil)
		assert.Equal(t, 100*time.Millisecond, w.Wait(&request.Execution{Attempt: 0}))
		assert.Equal(t, 150*time.Millisecond, w.Wait(&request.Execution{Attempt: 1}))
		assert.Equal(t, 225*time.Millisecond, w.Wait(&request.Execution{Attempt: 2}))
	})
	t.Run("factor below one", func(t *testing.T) {
		w := NewExpWaiter(time.Second, 0.5, 0, nil)
		assert.Equal(t, time.Second, w.Wait(&request.Execution{Attempt: 4}))
	})
	t.Run("capped", func(t *testing.T) {
		w := NewExpWaiter(time.Second, 2, 5*time.Second, nil)
		assert.Equal(t, 4*time.Second, w.Wait(&request.Execution{Attempt: 2}))
		assert.Equal(t, 5*time.Second, w.Wait(&request.Execution{Attempt: 3}))
		assert.Equal(t, 5*time.Second, w.Wait(&request.Execution{Attempt: 300}))
	})
	t.Run("overflow", func(t *testing.T) {
		w := NewExpWaiter(time.Hour, 10, 0, nil)
		assert.Equal(t, time.Duration(math.MaxInt64), w.Wait(&request.Execution{Attempt: 1000}))
	})
	t.Run("jitter below ceiling", func(t *testing.T) {
		w := NewExpWaiter(time.Second, 2, 0, 42)
		for k := 0; k < 10; k++ {
			d := w.Wait(&request.Execution{Attempt: k})
			assert.GreaterOrEqual(t, d, time.Duration(0))
			assert.Less(t, d, time.Second<<k)
		}
	})
}

func TestExpWaiter_Growth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		base := time.Duration(rapid.Int64Range(1, int64(10*time.Second)).Draw(t, "base"))
		factor := rapid.Float64Range(1, 4).Draw(t, "factor")
		k := rapid.IntRange(0, 10).Draw(t, "k")

		w := NewExpWaiter(base, factor, 0, nil)
		prev := w.Wait(&request.Execution{Attempt: k})
		next := w.Wait(&request.Execution{Attempt: k + 1})

		want := float64(base) * math.Pow(factor, float64(k))
		require.InDelta(t, want, float64(prev), want*1e-9+1)
		require.GreaterOrEqual(t, next, prev)
	})
}
