package rng

import "encoding/binary"

// Splitmix64State is the splitmix64 generator.
// https://prng.di.unimi.it/splitmix64.c
//
// Beyond standalone use (period 2^64) it is the canonical seed expander
// for this package: the 64-bit-seed constructors of the other generators
// draw their state words from a Splitmix64State seeded with that value.
type Splitmix64State struct {
	State uint64
}

// NewSplitmix64 seeds a splitmix64 generator. Any value, including
// zero, is a valid seed; the increment keeps a zero counter moving.
func NewSplitmix64(seed uint64) *Splitmix64State {
	return &Splitmix64State{
		State: seed,
	}
}

// Splitmix64FromSeed seeds from 8 little-endian bytes.
func Splitmix64FromSeed(seed [8]byte) *Splitmix64State {
	return NewSplitmix64(binary.LittleEndian.Uint64(seed[:]))
}

func (state *Splitmix64State) Next() uint64 {
	state.State += 0x9e3779b97f4a7c15
	z := state.State
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// Uint32 returns the low half of the next step. splitmix64 mixes its
// counter all the way down, so the low bits carry no known weakness.
func (state *Splitmix64State) Uint32() uint32 {
	return uint32(state.Next())
}

func (state *Splitmix64State) Fill(p []byte) {
	fillFrom(state.Next, p)
}

func (state *Splitmix64State) String() string {
	return ArrayToString([]uint64{state.State})
}
