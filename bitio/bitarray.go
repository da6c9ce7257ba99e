// Package bitio implements the bit-level substrate the binary entropy
// coders are built on: a fixed-length, random-access BitArray view over
// caller-owned memory, and an append-only, auto-growing OutputBitStream.
// Both pack bits least-significant-bit first within each byte.
package bitio

import "github.com/rotemdan/entropy-coding"

// BitArray is a fixed-length, random-access view over N bits stored in a
// caller-owned byte slice. Bit i lives at byte i/8, bit i%8 of that byte
// (least-significant-bit first). BitArray borrows its backing slice; the
// caller must keep it alive for the view's lifetime.
type BitArray struct {
	data []byte
	n    int64
}

// NewBitArray constructs a view over the first n bits of data. len(data)
// must be at least ceil(n/8).
func NewBitArray(data []byte, n int64) (*BitArray, error) {
	if n < 0 {
		return nil, entropy.NewInvalidArgument("bit length must be non-negative, got %d", n)
	}
	need := (n + 7) / 8
	if int64(len(data)) < need {
		return nil, entropy.NewInvalidArgument("backing byte slice has %d bytes, need at least %d for %d bits", len(data), need, n)
	}
	return &BitArray{data: data, n: n}, nil
}

// Read returns the bit at logical position i. Callers must ensure
// 0 <= i < BitLength(); an out-of-range i is a program defect and panics
// via the underlying slice index, not a reported error.
func (b *BitArray) Read(i int64) bool {
	return (b.data[i>>3]>>uint(i&7))&1 != 0
}

// Write sets the bit at logical position i by OR-ing it into place: the
// bit becomes bit | existing. Callers that want overwrite semantics must
// present a zeroed backing slice, since both coders in this module write
// each position exactly once from an initially zeroed buffer.
func (b *BitArray) Write(i int64, bit bool) {
	if bit {
		b.data[i>>3] |= 1 << uint(i&7)
	}
}

// BitLength returns the number of bits this view covers.
func (b *BitArray) BitLength() int64 {
	return b.n
}

// ByteLength returns ceil(BitLength()/8).
func (b *BitArray) ByteLength() int64 {
	return (b.n + 7) / 8
}

// Data returns the backing byte slice.
func (b *BitArray) Data() []byte {
	return b.data
}
