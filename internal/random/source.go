// Package random provides the random source consumed by the sequence engine.
package random

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	mrand "math/rand/v2"
)

// ErrInvalidRange is returned when max is below min or the range is too
// wide to draw from.
var ErrInvalidRange = errors.New("invalid random range")

// Source draws bounded integers and percentage chances.
//
// Implementations are single-stream and not safe for concurrent use. Callers
// should give every generation its own Source.
type Source interface {
	// InRange returns a uniform integer in [min, max].
	InRange(min, max int) (int, error)
	// Chance returns true with the given percent likelihood. Values <= 0
	// are always false and values >= 100 always true; neither consumes a draw.
	Chance(percent int) (bool, error)
}

// Crypto reads from a cryptographically secure byte stream.
type Crypto struct {
	reader io.Reader
}

// NewCrypto returns a Source over crypto/rand.
func NewCrypto() *Crypto {
	return &Crypto{reader: rand.Reader}
}

// NewCryptoFrom wraps a caller supplied secure stream.
func NewCryptoFrom(r io.Reader) *Crypto {
	if r == nil {
		r = rand.Reader
	}
	return &Crypto{reader: r}
}

// InRange implements Source using rejection sampling from crypto/rand.Int.
func (c *Crypto) InRange(min, max int) (int, error) {
	n, err := rangeSize(min, max)
	if err != nil {
		return 0, err
	}
	if n == 1 {
		return min, nil
	}
	v, err := rand.Int(c.reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("failed to read random stream: %w", err)
	}
	return min + int(v.Int64()), nil
}

// Chance implements Source.
func (c *Crypto) Chance(percent int) (bool, error) {
	return chance(c, percent)
}

// Seeded is a deterministic Source for tests and reproducible output.
// It must never be used for real passwords.
type Seeded struct {
	rnd *mrand.Rand
}

// NewSeeded returns a PCG-backed Source for the given seed.
func NewSeeded(seed uint64) *Seeded {
	return &Seeded{rnd: mrand.New(mrand.NewPCG(seed, 0))}
}

// InRange implements Source.
func (s *Seeded) InRange(min, max int) (int, error) {
	n, err := rangeSize(min, max)
	if err != nil {
		return 0, err
	}
	if n == 1 {
		return min, nil
	}
	return min + s.rnd.IntN(n), nil
}

// Chance implements Source.
func (s *Seeded) Chance(percent int) (bool, error) {
	return chance(s, percent)
}

// rangeSize returns the number of integers in [min, max]. Ranges whose size
// does not fit in an int are rejected.
func rangeSize(min, max int) (int, error) {
	if max < min {
		return 0, fmt.Errorf("%w: [%d, %d]", ErrInvalidRange, min, max)
	}
	diff := uint64(max) - uint64(min)
	if diff >= uint64(math.MaxInt) {
		return 0, fmt.Errorf("%w: [%d, %d] is too wide", ErrInvalidRange, min, max)
	}
	return int(diff) + 1, nil
}

func chance(src Source, percent int) (bool, error) {
	if percent <= 0 {
		return false, nil
	}
	if percent >= 100 {
		return true, nil
	}
	roll, err := src.InRange(1, 100)
	if err != nil {
		return false, err
	}
	return roll <= percent, nil
}
