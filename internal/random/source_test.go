package random

import (
	"bytes"
	"crypto/rand"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	c.reads++
	return c.r.Read(p)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("stream closed")
}

func TestCryptoInRange(t *testing.T) {
	src := NewCrypto()

	tests := []struct {
		name string
		min  int
		max  int
	}{
		{"positive range", 1, 10},
		{"zero min", 0, 5},
		{"same values", 5, 5},
		{"negative range", -10, -3},
		{"large range", 0, 1 << 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 200; i++ {
				got, err := src.InRange(tt.min, tt.max)
				require.NoError(t, err)
				if got < tt.min || got > tt.max {
					t.Fatalf("InRange(%d, %d) = %d, want value in range", tt.min, tt.max, got)
				}
			}
		})
	}
}

func TestCryptoInRangeCoversBounds(t *testing.T) {
	src := NewCrypto()
	seen := map[int]bool{}
	for i := 0; i < 500; i++ {
		got, err := src.InRange(0, 3)
		require.NoError(t, err)
		seen[got] = true
	}
	assert.Len(t, seen, 4)
}

func TestInRangeRejectsInvertedBounds(t *testing.T) {
	_, err := NewCrypto().InRange(5, 4)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = NewSeeded(1).InRange(5, 4)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestInRangeRejectsOverflowingSpan(t *testing.T) {
	for _, src := range []Source{NewCrypto(), NewSeeded(1)} {
		_, err := src.InRange(math.MinInt, math.MaxInt)
		require.ErrorIs(t, err, ErrInvalidRange)

		_, err = src.InRange(-1, math.MaxInt)
		require.ErrorIs(t, err, ErrInvalidRange)

		v, err := src.InRange(math.MaxInt-1, math.MaxInt)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, v, math.MaxInt-1)

		v, err = src.InRange(math.MinInt, math.MinInt)
		require.NoError(t, err)
		assert.Equal(t, math.MinInt, v)
	}
}

func TestCryptoPropagatesReaderFailure(t *testing.T) {
	src := NewCryptoFrom(failingReader{})
	_, err := src.InRange(0, 10)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stream closed")

	_, err = src.Chance(50)
	require.Error(t, err)
}

func TestChanceBoundsConsumeNoDraws(t *testing.T) {
	reader := &countingReader{r: rand.Reader}
	src := NewCryptoFrom(reader)

	ok, err := src.Chance(100)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = src.Chance(0)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = src.Chance(-5)
	require.NoError(t, err)
	assert.False(t, ok)

	assert.Equal(t, 0, reader.reads)

	_, err = src.Chance(50)
	require.NoError(t, err)
	assert.Positive(t, reader.reads)
}

func TestChanceUsesPercentLadder(t *testing.T) {
	// A stream of zero bytes always yields the lowest roll.
	src := NewCryptoFrom(bytes.NewReader(make([]byte, 64)))
	ok, err := src.Chance(1)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSeededIsDeterministic(t *testing.T) {
	a := NewSeeded(42)
	b := NewSeeded(42)
	for i := 0; i < 50; i++ {
		va, err := a.InRange(0, 1000)
		require.NoError(t, err)
		vb, err := b.InRange(0, 1000)
		require.NoError(t, err)
		if va != vb {
			t.Fatalf("iteration %d: %d != %d", i, va, vb)
		}
	}
}

func TestSeededChanceFrequency(t *testing.T) {
	src := NewSeeded(7)
	hits := 0
	const rounds = 4000
	for i := 0; i < rounds; i++ {
		ok, err := src.Chance(25)
		require.NoError(t, err)
		if ok {
			hits++
		}
	}
	ratio := float64(hits) / rounds
	assert.InDelta(t, 0.25, ratio, 0.05)
}

func BenchmarkCryptoInRange(b *testing.B) {
	src := NewCrypto()
	for i := 0; i < b.N; i++ {
		_, _ = src.InRange(0, 93)
	}
}
