// Package rng implements the xoroshiro family of pseudo-random number
// generators: splitmix64, xoroshiro128+ (scalar and 4-lane), and
// xorshift1024*φ.
//
// None of these are cryptographically secure and none of the state types
// are safe for concurrent use; every instance belongs to a single owner.
// Use Xoroshiro128PState unless a period larger than 2^128-1 is needed,
// in which case Xorshift1024SState (period 2^1024-1) is appropriate.
// Splitmix64State exists mostly to expand compact 64-bit seeds into the
// state of the other generators.
package rng

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unsafe"
)

// Rng is the contract every scalar generator in this package satisfies:
// one native 64-bit step, a fixed 32-bit narrowing of that step, and
// little-endian byte serialization of the output stream.
//
// Which half of the step Uint32 returns is part of each algorithm's
// published contract. The additive and multiplicative generators have
// statistically weak low bits and expose the high half; splitmix64 has
// no such weakness and exposes the low half. Do not unify these.
type Rng interface {
	Next() uint64
	Uint32() uint32
	Fill(p []byte)
}

var (
	// ErrDegenerateSeed is the panic value of the FromSeed constructors
	// when the supplied state is entirely zero. Zero is an absorbing
	// fixed point of these recurrences, so a zero seed is a programmer
	// error rather than a runtime condition.
	ErrDegenerateSeed = errors.New("rng: seed is entirely zero")

	// ErrTruncatedSource is returned by the Read* constructors when the
	// source runs out of bytes before a full state could be drawn.
	ErrTruncatedSource = errors.New("rng: seed source exhausted")
)

func GenericRotLeft[T uint8 | uint16 | uint32 | uint64](x T, k int) T {
	bitWidth := int(unsafe.Sizeof(x) * 8)
	return (x << k) | (x >> (bitWidth - k))
}

// fillFrom writes little-endian 64-bit words drawn from next into p.
// A final chunk shorter than 8 bytes takes the low-order bytes of one
// more word; the rest of that word is discarded. Exactly ceil(len(p)/8)
// words are consumed either way.
func fillFrom(next func() uint64, p []byte) {
	for len(p) >= 8 {
		binary.LittleEndian.PutUint64(p, next())
		p = p[8:]
	}

	if len(p) > 0 {
		r := next()
		for i := range p {
			p[i] = byte(r >> (8 * i))
		}
	}
}

// readWords fills words with little-endian uint64s read from r.
func readWords(r io.Reader, words []uint64) error {
	buf := make([]byte, 8*len(words))
	if _, err := io.ReadFull(r, buf); err != nil {
		return fmt.Errorf("%w: %s", ErrTruncatedSource, err)
	}

	for i := range words {
		words[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}

	return nil
}

// drawPair pulls a 128-bit state from src, skipping all-zero draws so
// the result always satisfies the xoroshiro128 seed invariant.
func drawPair(src Rng) (s0, s1 uint64) {
	s0, s1 = src.Next(), src.Next()
	for s0|s1 == 0 {
		s0, s1 = src.Next(), src.Next()
	}

	return
}

func ArrayToString[T uint8 | uint16 | uint32 | uint64](arr []T) string {
	ret := ""

	for _, v := range arr {
		bitWidth := int(unsafe.Sizeof(v) * 8)
		ret += fmt.Sprintf("%0[1]*[2]x", bitWidth/4, v)
	}

	return ret
}
