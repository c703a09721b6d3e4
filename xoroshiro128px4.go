package rng

import (
	"encoding/binary"
	"io"
)

// Xoroshiro128Px4State runs four xoroshiro128+ instances in lock-step,
// lane-packed so the step can vectorize. Lane i holds the words of one
// scalar Xoroshiro128PState; for any common seeding, Next4 produces
// exactly what four scalar generators stepped once each would.
//
// Each lane independently satisfies the non-zero state invariant.
type Xoroshiro128Px4State struct {
	S0 [4]uint64
	S1 [4]uint64
}

// NewXoroshiro128Px4 expands a 64-bit seed through a single splitmix64
// stream, two words per lane in lane order. Any lane whose pair comes
// up all zero re-draws its own two words.
func NewXoroshiro128Px4(seed uint64) *Xoroshiro128Px4State {
	return Xoroshiro128Px4FromRng(NewSplitmix64(seed))
}

// Xoroshiro128Px4FromSeed seeds from 64 little-endian bytes: four
// 16-byte sub-seeds in lane order 0..3, each validated separately.
// Panics with ErrDegenerateSeed if any sub-seed is entirely zero.
func Xoroshiro128Px4FromSeed(seed [64]byte) *Xoroshiro128Px4State {
	state := &Xoroshiro128Px4State{}

	for lane := 0; lane < 4; lane++ {
		s0 := binary.LittleEndian.Uint64(seed[lane*16:])
		s1 := binary.LittleEndian.Uint64(seed[lane*16+8:])

		if s0|s1 == 0 {
			panic(ErrDegenerateSeed)
		}

		state.S0[lane] = s0
		state.S1[lane] = s1
	}

	return state
}

// Xoroshiro128Px4FromRng draws four lane states from src in lane
// order, re-drawing any pair that comes up all zero.
func Xoroshiro128Px4FromRng(src Rng) *Xoroshiro128Px4State {
	state := &Xoroshiro128Px4State{}

	for lane := 0; lane < 4; lane++ {
		state.S0[lane], state.S1[lane] = drawPair(src)
	}

	return state
}

// ReadXoroshiro128Px4 draws four 16-byte little-endian sub-seeds from
// r in lane order, re-reading a lane's worth of bytes while that
// sub-seed comes up all zero. A short read fails with
// ErrTruncatedSource.
func ReadXoroshiro128Px4(r io.Reader) (*Xoroshiro128Px4State, error) {
	state := &Xoroshiro128Px4State{}

	var words [2]uint64
	for lane := 0; lane < 4; lane++ {
		for {
			if err := readWords(r, words[:]); err != nil {
				return nil, err
			}

			if words[0]|words[1] != 0 {
				break
			}
		}

		state.S0[lane] = words[0]
		state.S1[lane] = words[1]
	}

	return state, nil
}

// Next4 advances all four lanes by one step and returns their outputs
// in lane order.
func (state *Xoroshiro128Px4State) Next4() (result [4]uint64) {
	for lane := 0; lane < 4; lane++ {
		s0 := state.S0[lane]
		s1 := state.S1[lane]
		result[lane] = s0 + s1

		s1 ^= s0
		state.S0[lane] = GenericRotLeft(s0, 55) ^ s1 ^ (s1 << 14)
		state.S1[lane] = GenericRotLeft(s1, 36)
	}

	return
}

// Uint32x4 advances all lanes once and returns the high half of each
// lane's output, lane-interleaved in lane order 0..3. Same bit choice
// as the scalar generator's Uint32.
func (state *Xoroshiro128Px4State) Uint32x4() (result [4]uint32) {
	r := state.Next4()

	for lane := 0; lane < 4; lane++ {
		result[lane] = uint32(r[lane] >> 32)
	}

	return
}

// Fill4 fills p with the lane-interleaved output stream, each 64-bit
// word little-endian. A final chunk shorter than 8 bytes takes the
// low-order bytes of the next lane word; the remainder of that 4-wide
// step is discarded.
func (state *Xoroshiro128Px4State) Fill4(p []byte) {
	for len(p) > 0 {
		r := state.Next4()

		for lane := 0; lane < 4 && len(p) > 0; lane++ {
			if len(p) >= 8 {
				binary.LittleEndian.PutUint64(p, r[lane])
				p = p[8:]
				continue
			}

			for i := range p {
				p[i] = byte(r[lane] >> (8 * i))
			}
			p = nil
		}
	}
}

// Jump64 advances every lane as if 2^64 calls to Next4 had been made.
// All lanes share the jump polynomial, so one bit scan accumulates all
// four lanes at once.
func (state *Xoroshiro128Px4State) Jump64() {
	jump := [2]uint64{0xbeac0467eba5facb, 0xd86b048b86aa9922}

	var s0, s1 [4]uint64
	for i := 0; i < len(jump); i++ {
		for b := 0; b < 64; b++ {
			if (jump[i] & (uint64(1) << b)) != 0 {
				for lane := 0; lane < 4; lane++ {
					s0[lane] ^= state.S0[lane]
					s1[lane] ^= state.S1[lane]
				}
			}
			_ = state.Next4()
		}
	}

	state.S0 = s0
	state.S1 = s1
}

func (state *Xoroshiro128Px4State) String() string {
	words := make([]uint64, 0, 8)
	for lane := 0; lane < 4; lane++ {
		words = append(words, state.S0[lane], state.S1[lane])
	}

	return ArrayToString(words)
}
