package rng

import (
	"encoding/binary"
	"io"
)

// Xoroshiro128PState is the xoroshiro128+ generator with the original
// (55, 14, 36) rotation constants.
// https://prng.di.unimi.it/xoroshiro128plus.c
//
// The state must never be all zero; every constructor enforces this.
type Xoroshiro128PState struct {
	State [2]uint64
}

// NewXoroshiro128P expands a 64-bit seed into a full state through
// splitmix64.
func NewXoroshiro128P(seed uint64) *Xoroshiro128PState {
	return Xoroshiro128PFromRng(NewSplitmix64(seed))
}

// Xoroshiro128PFromSeed seeds from 16 little-endian bytes, s0 first.
// Panics with ErrDegenerateSeed if seed is entirely zero.
func Xoroshiro128PFromSeed(seed [16]byte) *Xoroshiro128PState {
	state := &Xoroshiro128PState{
		State: [2]uint64{
			binary.LittleEndian.Uint64(seed[0:8]),
			binary.LittleEndian.Uint64(seed[8:16]),
		},
	}

	if state.State[0]|state.State[1] == 0 {
		panic(ErrDegenerateSeed)
	}

	return state
}

// Xoroshiro128PFromRng draws a state from src, re-drawing while the
// pair comes up all zero.
func Xoroshiro128PFromRng(src Rng) *Xoroshiro128PState {
	s0, s1 := drawPair(src)

	return &Xoroshiro128PState{
		State: [2]uint64{s0, s1},
	}
}

// ReadXoroshiro128P draws a 16-byte little-endian state from r,
// re-reading while it comes up all zero. A short read fails with
// ErrTruncatedSource.
func ReadXoroshiro128P(r io.Reader) (*Xoroshiro128PState, error) {
	var words [2]uint64

	for {
		if err := readWords(r, words[:]); err != nil {
			return nil, err
		}

		if words[0]|words[1] != 0 {
			return &Xoroshiro128PState{State: words}, nil
		}
	}
}

func (state *Xoroshiro128PState) Next() uint64 {
	s0 := state.State[0]
	s1 := state.State[1]
	result := s0 + s1

	s1 ^= s0
	state.State[0] = GenericRotLeft(s0, 55) ^ s1 ^ (s1 << 14)
	state.State[1] = GenericRotLeft(s1, 36)

	return result
}

// Uint32 returns the high half of the next step. The two lowest bits of
// xoroshiro128+ output have linear dependencies, so the low half is
// unsuitable.
func (state *Xoroshiro128PState) Uint32() uint32 {
	return uint32(state.Next() >> 32)
}

func (state *Xoroshiro128PState) Fill(p []byte) {
	fillFrom(state.Next, p)
}

// Jump64 advances the state as if 2^64 calls to Next had been made,
// yielding up to 2^64 non-overlapping subsequences for parallel use.
func (state *Xoroshiro128PState) Jump64() {
	jump := [2]uint64{0xbeac0467eba5facb, 0xd86b048b86aa9922}

	s0 := uint64(0)
	s1 := uint64(0)
	for i := 0; i < len(jump); i++ {
		for b := 0; b < 64; b++ {
			if (jump[i] & (uint64(1) << b)) != 0 {
				s0 ^= state.State[0]
				s1 ^= state.State[1]
			}
			_ = state.Next()
		}
	}

	state.State[0] = s0
	state.State[1] = s1
}

func (state *Xoroshiro128PState) String() string {
	return ArrayToString(state.State[:])
}
