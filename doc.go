// Package entropy is the shared foundation of a binary entropy coding
// library. It holds the error type used across the bitio, fastmath,
// arithcode, and brans packages, which together implement a binary
// arithmetic coder (BAC) and a binary range ANS coder (bRANS) for
// streams of bits drawn from a known, fixed Bernoulli(p) source.
//
// Probability modeling, byte-level container framing of coder output,
// and multi-symbol alphabets are out of scope: callers supply a static
// p and own the framing of whatever bytes a coder produces.
package entropy
