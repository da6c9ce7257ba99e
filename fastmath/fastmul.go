// Package fastmath provides the fixed-point numeric primitives the
// binary entropy coders use to keep their inner loops division-light:
// a saturating fractional multiplier and a precomputed-magic-number
// integer divider.
package fastmath

import (
	"math"

	"github.com/rotemdan/entropy-coding"
)

// FastMulByFraction approximates x*f for a fixed fraction f in [0, 1]
// using a single 64-bit multiply and shift in place of floating point.
// Multiply is accurate to within one ULP of the true product and
// monotonic in x.
type FastMulByFraction struct {
	multiplier uint64
}

// NewFastMulByFraction precomputes the fixed-point multiplier for f.
func NewFastMulByFraction(f float64) (*FastMulByFraction, error) {
	if math.IsNaN(f) || f < 0 || f > 1 {
		return nil, entropy.NewInvalidArgument("fraction must be within [0, 1], got %v", f)
	}

	m := uint64(math.Floor(f * (1 << 32)))
	if m > math.MaxUint32 {
		// f == 1 would otherwise produce 2^32; the multiplier is kept
		// within 32 bits by saturating it at 2^32-1.
		m = math.MaxUint32
	}
	return &FastMulByFraction{multiplier: m}, nil
}

// Multiply returns floor(x*f), or one less than it, for x fitting in 32
// bits. With f == 1 the saturated multiplier makes it return x-1 for x > 0.
func (m *FastMulByFraction) Multiply(x uint32) uint32 {
	return uint32((uint64(x) * m.multiplier) >> 32)
}
