package bitio

// OutputBitStream is an append-only, self-growing packed bit buffer. The
// backing byte slice grows by one byte whenever the next bit crosses a
// byte boundary; trailing unused bits in the last byte are always zero.
// There is no flush beyond reading out Data(); a consumer that needs the
// intended bit length must also track BitLength() separately.
type OutputBitStream struct {
	data []byte
	n    int64
}

// NewOutputBitStream constructs an empty stream, preallocating backing
// capacity for bitCapacityHint bits. The hint is advisory; the stream
// still grows past it as needed.
func NewOutputBitStream(bitCapacityHint int64) *OutputBitStream {
	if bitCapacityHint < 0 {
		bitCapacityHint = 0
	}
	return &OutputBitStream{data: make([]byte, 0, (bitCapacityHint+7)/8)}
}

// NewOutputBitStreamFromBuffer constructs an empty stream that reuses buf's
// backing array, truncated to zero length, instead of allocating a fresh
// one. Useful when a caller already holds a byte slice with spare capacity
// (e.g. recycled from a previous encode) and wants to avoid a new
// allocation.
func NewOutputBitStreamFromBuffer(buf []byte) *OutputBitStream {
	return &OutputBitStream{data: buf[:0]}
}

// WriteBit appends bit to the end of the stream, growing the backing
// bytes by one when the new bit starts a fresh byte.
func (s *OutputBitStream) WriteBit(bit bool) {
	if s.n&7 == 0 {
		s.data = append(s.data, 0)
	}
	if bit {
		s.data[len(s.data)-1] |= 1 << uint(s.n&7)
	}
	s.n++
}

// BitLength returns the number of bits written so far.
func (s *OutputBitStream) BitLength() int64 {
	return s.n
}

// ByteLength returns the number of bytes backing the stream, i.e.
// ceil(BitLength()/8).
func (s *OutputBitStream) ByteLength() int64 {
	return int64(len(s.data))
}

// Data returns the packed byte data written so far.
func (s *OutputBitStream) Data() []byte {
	return s.data
}
