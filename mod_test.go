package rng

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	_ Rng = (*Splitmix64State)(nil)
	_ Rng = (*Xoroshiro128PState)(nil)
	_ Rng = (*Xorshift1024SState)(nil)
)

// scriptedRng replays a fixed word sequence, for exercising the seed
// derivation paths.
type scriptedRng struct {
	words []uint64
	pos   int
}

func (s *scriptedRng) Next() uint64 {
	w := s.words[s.pos]
	s.pos++
	return w
}

func (s *scriptedRng) Uint32() uint32 {
	return uint32(s.Next())
}

func (s *scriptedRng) Fill(p []byte) {
	fillFrom(s.Next, p)
}

// Fill on a buffer of length n must match writing ceil(n/8) outputs
// little-endian and truncating the final word.
func TestFillMatchesNext(t *testing.T) {
	generators := map[string]func() (Rng, Rng){
		"splitmix64": func() (Rng, Rng) {
			return NewSplitmix64(99), NewSplitmix64(99)
		},
		"xoroshiro128+": func() (Rng, Rng) {
			return NewXoroshiro128P(99), NewXoroshiro128P(99)
		},
		"xorshift1024*": func() (Rng, Rng) {
			return NewXorshift1024S(99), NewXorshift1024S(99)
		},
	}

	for name, make2 := range generators {
		t.Run(name, func(t *testing.T) {
			for _, n := range []int{0, 1, 3, 7, 8, 9, 15, 16, 17, 64, 1000} {
				filler, stepper := make2()

				got := make([]byte, n)
				filler.Fill(got)

				expected := make([]byte, 0, n+8)
				for len(expected) < n {
					var word [8]byte
					binary.LittleEndian.PutUint64(word[:], stepper.Next())
					expected = append(expected, word[:]...)
				}

				require.Equal(t, expected[:n], got, "n=%d", n)
			}
		})
	}
}

// A short tail must consume exactly one extra step, no more.
func TestFillConsumesWholeSteps(t *testing.T) {
	a := NewSplitmix64(5)
	b := NewSplitmix64(5)

	a.Fill(make([]byte, 11)) // 2 steps
	for i := 0; i < 2; i++ {
		b.Next()
	}

	assert.Equal(t, b.Next(), a.Next())
}

func TestReadConstructorsTruncatedSource(t *testing.T) {
	_, err := ReadXoroshiro128P(bytes.NewReader(make([]byte, 15)))
	require.ErrorIs(t, err, ErrTruncatedSource)

	_, err = ReadXoroshiro128Px4(bytes.NewReader(make([]byte, 63)))
	require.ErrorIs(t, err, ErrTruncatedSource)

	_, err = ReadXorshift1024S(bytes.NewReader(make([]byte, 127)))
	require.ErrorIs(t, err, ErrTruncatedSource)
}

// An all-zero draw from a reader is retried, not surfaced; a source
// that only ever yields zeros eventually fails with truncation instead
// of producing a degenerate generator.
func TestReadConstructorsRetryZeroDraws(t *testing.T) {
	seed := make([]byte, 32)
	seed[16] = 7 // first 16 bytes all zero, second draw valid

	state, err := ReadXoroshiro128P(bytes.NewReader(seed))
	require.NoError(t, err)
	assert.Equal(t, [2]uint64{7, 0}, state.State)

	_, err = ReadXoroshiro128P(bytes.NewReader(make([]byte, 64)))
	require.ErrorIs(t, err, ErrTruncatedSource)
}

func TestDrawPairSkipsZero(t *testing.T) {
	src := &scriptedRng{words: []uint64{0, 0, 0, 0, 3, 4}}
	s0, s1 := drawPair(src)
	assert.Equal(t, uint64(3), s0)
	assert.Equal(t, uint64(4), s1)
}

func TestDegenerateSeedPanicValue(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrDegenerateSeed))
	}()

	Xoroshiro128PFromSeed([16]byte{})
}

func TestArrayToString(t *testing.T) {
	assert.Equal(t, "000000000000002a", ArrayToString([]uint64{42}))
	assert.Equal(t, "0000002a00000007", ArrayToString([]uint32{42, 7}))
	assert.Equal(t, "0000000000000001"+"0000000000000002",
		(&Xoroshiro128PState{State: [2]uint64{1, 2}}).String())
}
