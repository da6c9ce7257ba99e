package brans

// BuildEncoderTable precomputes the full encoder state-transition table:
// for every post-flush state v in [0, M*256) and symbol s, the next state
// ComputeEncoderTransition(v, s) would produce. This trades
// 2*M*256*4 bytes of memory for a division-free transition step
// in EncodeUsingTable, which looks up entry v*2+s directly instead of
// running a FastDiv31 division each step. span and the table length are
// computed in uint64 so that a range bit width near the documented upper
// bound (23, where 2*M*256 reaches 2^32) fails as an honest allocation
// failure rather than wrapping around to a too-small table. Calling this
// twice is a no-op; it does not rebuild an already-built table.
func (c *Coder) BuildEncoderTable() {
	if c.encoderTable != nil {
		return
	}

	span := uint64(c.m) * 256
	table := make([]uint32, 2*span)
	for v := uint64(0); v < span; v++ {
		table[v*2+0] = c.computeEncoderTransition(uint32(v), 0)
		table[v*2+1] = c.computeEncoderTransition(uint32(v), 1)
	}
	c.encoderTable = table
}

// BuildDecoderTable precomputes the full decoder state-transition table:
// for every state x in [0, M*256), the (nextState, symbol) pair Decode
// would produce. Each pair is packed into a single uint32 — the low bit
// holds symbol, the remaining bits hold nextState — so the table occupies
// half the memory of the encoder table built by BuildEncoderTable. span
// is computed in uint64 for the same reason as in BuildEncoderTable.
// Calling this twice is a no-op; it does not rebuild an already-built
// table.
func (c *Coder) BuildDecoderTable() {
	if c.decoderTable != nil {
		return
	}

	span := uint64(c.m) * 256
	table := make([]uint32, span)
	for x := uint64(0); x < span; x++ {
		v := uint32(x)
		q := v >> c.r
		rem := v & (c.m - 1)
		s := uint32(0)
		if rem >= c.cum[1] {
			s = 1
		}
		nextState := c.freq[s]*q - c.cum[s] + rem
		table[x] = nextState<<1 | s
	}
	c.decoderTable = table
}

// computeEncoderTransition returns the state Encode's transition step
// would produce for a post-flush state v and symbol s: the same
// M*q + cum[s] + r formula Encode computes inline, precomputed here for
// every reachable v so EncodeUsingTable can replace it with a lookup.
func (c *Coder) computeEncoderTransition(v uint32, s uint32) uint32 {
	q, rem := c.div[s].DivideAndRemainder(v)
	return c.m*q + c.cum[s] + rem
}
