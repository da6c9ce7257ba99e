// Package brans implements the Binary Range Asymmetric Numeral Systems
// (bRANS) coder: a table- or arithmetic-driven rANS coder over a
// two-symbol alphabet, drawn from a known, fixed Bernoulli(p) source. A
// Coder compresses to a byte stream plus a small final 32-bit state word;
// serializing that state alongside the bytes (fixed- or variable-length)
// is left entirely to the caller.
package brans

import (
	"math"

	"github.com/rotemdan/entropy-coding"
	"github.com/rotemdan/entropy-coding/bitio"
	"github.com/rotemdan/entropy-coding/fastmath"
)

const (
	minRangeBitWidth = 2
	maxRangeBitWidth = 23
)

// Coder encodes and decodes binary messages against a fixed Bernoulli(p)
// source using range ANS with a total-frequency table of size 2^r.
// Frequency tables and fast dividers are immutable after New returns, and
// each transition table is immutable once BuildEncoderTable or
// BuildDecoderTable has built it; all are safe to share read-only across
// independent encode/decode sessions. A Coder holds no per-session state
// of its own.
type Coder struct {
	r              uint8
	m              uint32
	freq           [2]uint32
	cum            [2]uint32
	flushThreshold [2]uint32
	div            [2]*fastmath.FastDiv31

	encoderTable []uint32 // indexed state*2 + symbol, holds nextState
	decoderTable []uint32 // indexed state, holds nextState<<1 | symbol
}

// New constructs a binary rANS coder for a Bernoulli source with
// P(bit=1) = p, using a total frequency M = 2^r.
func New(p float64, r uint8) (*Coder, error) {
	if p < 0 || p > 1 {
		return nil, entropy.NewInvalidArgument("probability must be within [0, 1], got %v", p)
	}
	if r < minRangeBitWidth || r > maxRangeBitWidth {
		return nil, entropy.NewInvalidArgument("range bit width must be within [%d, %d], got %d", minRangeBitWidth, maxRangeBitWidth, r)
	}

	m := uint32(1) << r
	f0 := clampUint32(uint32(math.Round((1-p)*float64(m))), 1, m-1)
	f1 := m - f0

	div0, err := fastmath.NewFastDiv31(f0)
	if err != nil {
		return nil, err
	}
	div1, err := fastmath.NewFastDiv31(f1)
	if err != nil {
		return nil, err
	}

	return &Coder{
		r:              r,
		m:              m,
		freq:           [2]uint32{f0, f1},
		cum:            [2]uint32{0, f0},
		flushThreshold: [2]uint32{f0 * 256, f1 * 256},
		div:            [2]*fastmath.FastDiv31{div0, div1},
	}, nil
}

func clampUint32(v, lo, hi uint32) uint32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func symbolIndex(bit bool) uint32 {
	if bit {
		return 1
	}
	return 0
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}

// Encode compresses input's bits, from last to first, appending bytes to
// dst and returning the extended slice along with the final rANS state.
// dst must be empty on entry: the byte region this call appends is
// reversed in place afterward, which would corrupt any bytes already
// present.
func (c *Coder) Encode(input *bitio.BitArray, dst []byte) ([]byte, uint32, error) {
	if len(dst) != 0 {
		return nil, 0, entropy.NewPrecondition("Encode requires dst to be empty on entry")
	}

	x := c.m
	for i := input.BitLength() - 1; i >= 0; i-- {
		s := symbolIndex(input.Read(i))
		for x >= c.flushThreshold[s] {
			dst = append(dst, byte(x))
			x >>= 8
		}
		q, rem := c.div[s].DivideAndRemainder(x)
		x = c.m*q + c.cum[s] + rem
	}

	reverseBytes(dst)
	return dst, x, nil
}

// EncodeUsingTable behaves exactly like Encode, replacing the per-step
// transition computation with a lookup into the table built by
// BuildEncoderTable. It fails with a Precondition error if that table
// has not been built.
func (c *Coder) EncodeUsingTable(input *bitio.BitArray, dst []byte) ([]byte, uint32, error) {
	if c.encoderTable == nil {
		return nil, 0, entropy.NewPrecondition("EncodeUsingTable requires BuildEncoderTable to be called first")
	}
	if len(dst) != 0 {
		return nil, 0, entropy.NewPrecondition("EncodeUsingTable requires dst to be empty on entry")
	}

	x := c.m
	for i := input.BitLength() - 1; i >= 0; i-- {
		s := symbolIndex(input.Read(i))
		for x >= c.flushThreshold[s] {
			dst = append(dst, byte(x))
			x >>= 8
		}
		x = c.encoderTable[x*2+s]
	}

	reverseBytes(dst)
	return dst, x, nil
}

// Decode reconstructs output.BitLength() bits from encodedBytes (in the
// forward order Encode produces) and the final state Encode returned,
// writing them into output via Write.
//
// A correct decode of a correctly produced (encodedBytes, state,
// output.BitLength()) consumes every byte of encodedBytes and ends with
// its internal state equal to the coder's M. Decode neither checks nor
// reports this.
func (c *Coder) Decode(encodedBytes []byte, state uint32, output *bitio.BitArray) error {
	x := state
	pos := 0
	n := output.BitLength()

	for j := int64(0); j < n; j++ {
		for x < c.m && pos < len(encodedBytes) {
			x = (x << 8) | uint32(encodedBytes[pos])
			pos++
		}

		q := x >> c.r
		rem := x & (c.m - 1)
		s := uint32(0)
		if rem >= c.cum[1] {
			s = 1
		}

		output.Write(j, s == 1)
		x = c.freq[s]*q - c.cum[s] + rem
	}

	return nil
}

// DecodeUsingTable behaves exactly like Decode, replacing the per-step
// transition computation with a lookup into the table built by
// BuildDecoderTable. It fails with a Precondition error if that table
// has not been built.
func (c *Coder) DecodeUsingTable(encodedBytes []byte, state uint32, output *bitio.BitArray) error {
	if c.decoderTable == nil {
		return entropy.NewPrecondition("DecodeUsingTable requires BuildDecoderTable to be called first")
	}

	x := state
	pos := 0
	n := output.BitLength()

	for j := int64(0); j < n; j++ {
		for x < c.m && pos < len(encodedBytes) {
			x = (x << 8) | uint32(encodedBytes[pos])
			pos++
		}

		entry := c.decoderTable[x]
		s := entry & 1
		output.Write(j, s == 1)
		x = entry >> 1
	}

	return nil
}
