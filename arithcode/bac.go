// Package arithcode implements the Binary Arithmetic Coder (BAC): a
// bit-by-bit arithmetic encoder/decoder with classic E1/E2/E3 underflow
// handling, specialized to a two-symbol alphabet drawn from a known,
// fixed Bernoulli(p) source. Encode and Decode are free functions rather
// than methods on a persistent coder: BAC setup (a single
// FastMulByFraction) is cheap enough not to warrant a reusable object,
// and there is no streaming across separately submitted chunks to
// amortize it over.
package arithcode

import (
	"github.com/rotemdan/entropy-coding"
	"github.com/rotemdan/entropy-coding/bitio"
	"github.com/rotemdan/entropy-coding/fastmath"
)

const (
	rangeBitWidth = 32

	low0  = uint64(0)
	high0 = uint64(1)<<rangeBitWidth - 1

	quarterRange      = uint64(1) << (rangeBitWidth - 2)
	halfRange         = uint64(1) << (rangeBitWidth - 1)
	threeQuarterRange = high0 - quarterRange + 1

	rangeMask = high0

	// probabilityEpsilon keeps the boundary computation away from the
	// degenerate p=0 or p=1 intervals, which would otherwise collapse
	// to a zero-width half.
	probabilityEpsilon = 1e-9
)

func clipProbability(p float64) float64 {
	if p < probabilityEpsilon {
		return probabilityEpsilon
	}
	if p > 1-probabilityEpsilon {
		return 1 - probabilityEpsilon
	}
	return p
}

func newZeroMultiplier(p float64) (*fastmath.FastMulByFraction, error) {
	if p < 0 || p > 1 {
		return nil, entropy.NewInvalidArgument("probability must be within [0, 1], got %v", p)
	}
	q := 1 - clipProbability(p)
	return fastmath.NewFastMulByFraction(q)
}

// Encode arithmetic-codes every bit of input, in order, into sink, using
// a fixed Bernoulli(p) source where p is the probability of a 1 bit. No
// length header is written; the decoder must independently know the
// number of bits encoded.
func Encode(input *bitio.BitArray, sink *bitio.OutputBitStream, p float64) error {
	q, err := newZeroMultiplier(p)
	if err != nil {
		return err
	}

	low, high := low0, high0
	pending := 0
	n := input.BitLength()

	for i := int64(0); i < n; i++ {
		length := high - low
		boundary := low + uint64(q.Multiply(uint32(length)))

		if input.Read(i) {
			low = boundary
		} else {
			high = boundary
		}

	renormalize:
		for {
			switch {
			case high < halfRange:
				sink.WriteBit(false)
				for ; pending > 0; pending-- {
					sink.WriteBit(true)
				}
				low = (low << 1) & rangeMask
				high = (high << 1) & rangeMask

			case low >= halfRange:
				sink.WriteBit(true)
				for ; pending > 0; pending-- {
					sink.WriteBit(false)
				}
				low = ((low - halfRange) << 1) & rangeMask
				high = ((high - halfRange) << 1) & rangeMask

			case low >= quarterRange && high < threeQuarterRange:
				pending++
				low = ((low - quarterRange) << 1) & rangeMask
				high = ((high - quarterRange) << 1) & rangeMask

			default:
				break renormalize
			}
		}
	}

	pending++
	if low < quarterRange {
		sink.WriteBit(false)
		for ; pending > 0; pending-- {
			sink.WriteBit(true)
		}
	} else {
		sink.WriteBit(true)
		for ; pending > 0; pending-- {
			sink.WriteBit(false)
		}
	}

	return nil
}

// Decode reconstructs output.BitLength() bits from encoded, the bitstream
// produced by Encode with the same p, writing them into output via
// Write. output must already be sized (and, per BitArray's OR-into-place
// Write semantics, zeroed) to the known original bit length.
func Decode(encoded *bitio.BitArray, output *bitio.BitArray, p float64) error {
	q, err := newZeroMultiplier(p)
	if err != nil {
		return err
	}

	low, high := low0, high0
	encodedLen := encoded.BitLength()

	var value uint64
	var readPos int64
	for ; readPos < rangeBitWidth && readPos < encodedLen; readPos++ {
		value = (value << 1) | boolToUint64(encoded.Read(readPos))
	}
	if readPos < rangeBitWidth {
		value <<= uint(rangeBitWidth - readPos)
	}

	n := output.BitLength()
	for j := int64(0); j < n; j++ {
		length := high - low
		boundary := low + uint64(q.Multiply(uint32(length)))

		bit := value >= boundary
		output.Write(j, bit)
		if bit {
			low = boundary
		} else {
			high = boundary
		}

	renormalize:
		for {
			switch {
			case high < halfRange:
				low = (low << 1) & rangeMask
				high = (high << 1) & rangeMask
				value = (value << 1) & rangeMask

			case low >= halfRange:
				low = ((low - halfRange) << 1) & rangeMask
				high = ((high - halfRange) << 1) & rangeMask
				value = ((value - halfRange) << 1) & rangeMask

			case low >= quarterRange && high < threeQuarterRange:
				low = ((low - quarterRange) << 1) & rangeMask
				high = ((high - quarterRange) << 1) & rangeMask
				value = ((value - quarterRange) << 1) & rangeMask

			default:
				break renormalize
			}

			var nextBit uint64
			if readPos < encodedLen {
				nextBit = boolToUint64(encoded.Read(readPos))
				readPos++
			}
			value |= nextBit
		}
	}

	return nil
}

func boolToUint64(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
