package rng

import (
	"encoding/binary"
	"io"
)

// Xorshift1024SState is the xorshift1024*φ generator: sixteen state
// words walked by a rotating cursor, with a φ-multiply output scramble.
// Period 2^1024-1.
// https://prng.di.unimi.it/xorshift1024star.c
//
// The sixteen words must never be all zero; the cursor always stays in
// [0, 16).
type Xorshift1024SState struct {
	State [16]uint64
	P     int
}

// NewXorshift1024S expands a 64-bit seed into a full state through
// splitmix64.
func NewXorshift1024S(seed uint64) *Xorshift1024SState {
	return Xorshift1024SFromRng(NewSplitmix64(seed))
}

// Xorshift1024SFromSeed seeds from 128 little-endian bytes, sixteen
// words in index order, cursor at zero. Panics with ErrDegenerateSeed
// if seed is entirely zero.
func Xorshift1024SFromSeed(seed [128]byte) *Xorshift1024SState {
	state := &Xorshift1024SState{}

	nonZero := uint64(0)
	for i := range state.State {
		state.State[i] = binary.LittleEndian.Uint64(seed[i*8:])
		nonZero |= state.State[i]
	}

	if nonZero == 0 {
		panic(ErrDegenerateSeed)
	}

	return state
}

// Xorshift1024SFromRng draws sixteen state words from src, re-drawing
// the whole set while it comes up all zero.
func Xorshift1024SFromRng(src Rng) *Xorshift1024SState {
	state := &Xorshift1024SState{}

	for {
		nonZero := uint64(0)
		for i := range state.State {
			state.State[i] = src.Next()
			nonZero |= state.State[i]
		}

		if nonZero != 0 {
			return state
		}
	}
}

// ReadXorshift1024S draws a 128-byte little-endian state from r,
// re-reading while it comes up all zero. A short read fails with
// ErrTruncatedSource.
func ReadXorshift1024S(r io.Reader) (*Xorshift1024SState, error) {
	state := &Xorshift1024SState{}

	for {
		if err := readWords(r, state.State[:]); err != nil {
			return nil, err
		}

		nonZero := uint64(0)
		for _, w := range state.State {
			nonZero |= w
		}

		if nonZero != 0 {
			return state, nil
		}
	}
}

func (state *Xorshift1024SState) Next() uint64 {
	s0 := state.State[state.P]
	state.P = (state.P + 1) & 15
	s1 := state.State[state.P]

	s1 ^= s1 << 31
	state.State[state.P] = s1 ^ s0 ^ (s1 >> 11) ^ (s0 >> 30)

	return state.State[state.P] * 0x9e3779b97f4a7c13
}

// Uint32 returns the high half of the next step; the multiplier leaves
// the low bits of xorshift1024* output weaker than the high ones.
func (state *Xorshift1024SState) Uint32() uint32 {
	return uint32(state.Next() >> 32)
}

func (state *Xorshift1024SState) Fill(p []byte) {
	fillFrom(state.Next, p)
}

// Jump512 advances the state as if 2^512 calls to Next had been made,
// yielding up to 2^512 non-overlapping subsequences for parallel use.
// The accumulator is indexed relative to the live cursor at every bit,
// and the cursor itself is unchanged once the 1024 scan steps cancel
// out.
func (state *Xorshift1024SState) Jump512() {
	jump := [16]uint64{
		0x84242f96eca9c41d, 0xa3c65b8776f96855, 0x5b34a39f070b5837, 0x4489affce4f31a1e,
		0x2ffeeb0a48316f40, 0xdc2d9891fe68c022, 0x3659132bb12fea70, 0xaac17d8efa43cab8,
		0xc4cb815590989b13, 0x5ee975283d71c93b, 0x691548c86c1bd540, 0x7910c41d10a1e6a5,
		0x0b5fc64563b3e2a8, 0x047f7684e9fc949d, 0xb99181f2d8f685ca, 0x284600e3f30e38c3,
	}

	var t [16]uint64
	for i := 0; i < len(jump); i++ {
		for b := 0; b < 64; b++ {
			if (jump[i] & (uint64(1) << b)) != 0 {
				for j := 0; j < 16; j++ {
					t[j] ^= state.State[(j+state.P)&15]
				}
			}
			_ = state.Next()
		}
	}

	for j := 0; j < 16; j++ {
		state.State[(j+state.P)&15] = t[j]
	}
}

func (state *Xorshift1024SState) String() string {
	return ArrayToString(state.State[:])
}
