package fastmath

import (
	"math/bits"

	"github.com/rotemdan/entropy-coding"
)

// maxFastDiv31Divisor is the exclusive upper bound on divisors FastDiv31
// accepts: 2^31, the limit under which the magic-multiplier scheme below
// stays within a 64-bit intermediate product for any valid numerator.
const maxFastDiv31Divisor = 1 << 31

// FastDiv31 implements division by a fixed divisor d in [0, 2^31) using
// the precomputed-magic-number technique of Hacker's Delight §10: a
// one-time multiply/shift computation replaces a division in the hot
// loop with a multiply and a shift. The quotient is exact for every
// numerator n in [0, 2^31).
type FastDiv31 struct {
	divisor    uint32
	multiplier uint64
	shift      uint
}

// NewFastDiv31 precomputes the magic multiplier and shift for d.
func NewFastDiv31(d uint32) (*FastDiv31, error) {
	if d >= maxFastDiv31Divisor {
		return nil, entropy.NewInvalidArgument("divisor must be within [0, 2^31), got %d", d)
	}
	if d == 0 {
		// Defined-on-zero shim: Divide always returns 0.
		return &FastDiv31{}, nil
	}

	b := uint(0)
	if d > 1 {
		b = uint(bits.Len32(d - 1))
	}
	shift := 32 + b
	multiplier := ((uint64(1) << shift) + uint64(d) - 1) / uint64(d)

	return &FastDiv31{divisor: d, multiplier: multiplier, shift: shift}, nil
}

// Divide returns floor(n/d) for 0 <= n < 2^31.
func (f *FastDiv31) Divide(n uint32) uint32 {
	if f.divisor == 0 {
		return 0
	}
	return uint32((uint64(n) * f.multiplier) >> f.shift)
}

// DivideAndRemainder returns (floor(n/d), n mod d) for 0 <= n < 2^31.
func (f *FastDiv31) DivideAndRemainder(n uint32) (quotient, remainder uint32) {
	q := f.Divide(n)
	return q, n - q*f.divisor
}
