package bits

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPackingVectorFromBinary(t *testing.T) {
	v := NewPackingVectorFromBinary("0110")
	require.Equal(t, uint32(4), v.Size())
	require.False(t, v.At(0))
	require.True(t, v.At(1))
	require.True(t, v.At(2))
	require.False(t, v.At(3))
	require.Equal(t, "0110", v.String())
	require.Equal(t, []byte{0b0110}, v.Data())

	require.Panics(t, func() { NewPackingVectorFromBinary("01x") })
	require.Panics(t, func() { v.At(4) })
}

func TestPackingVectorSetReset(t *testing.T) {
	v := NewPackingVector(130)
	v.Set(0, true)
	v.Set(64, true)
	v.Set(129, true)
	require.Equal(t, 3, v.OnesCount())
	require.Equal(t, 129, v.LastSet())

	v.Set(129, false)
	require.Equal(t, 64, v.LastSet())
	require.Equal(t, uint32(65), v.TrailingZeros())

	v.Reset()
	require.Equal(t, 0, v.OnesCount())
	require.Equal(t, -1, v.LastSet())
	require.Equal(t, uint32(130), v.TrailingZeros())
}

func TestPackingVectorTrailingZeros(t *testing.T) {
	cases := []struct {
		text string
		want uint32
	}{
		{"000", 3},
		{"001", 0},
		{"100", 2},
		{"111", 0},
		{"0100000", 5},
		{"", 0},
	}
	for _, tc := range cases {
		v := NewPackingVectorFromBinary(tc.text)
		require.Equal(t, tc.want, v.TrailingZeros(), "vector %q", tc.text)
	}
}

func TestPackingVectorCloneAndEqual(t *testing.T) {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	for run := 0; run < 200; run++ {
		size := uint32(1 + r.Intn(200))
		v := NewPackingVector(size)
		for i := uint32(0); i < size; i++ {
			v.Set(i, r.Intn(2) == 1)
		}

		c := v.Clone()
		require.True(t, v.Equal(c))
		require.Equal(t, v.Hash(), c.Hash())
		require.Equal(t, v.HashWithSeed(7), c.HashWithSeed(7))

		idx := uint32(r.Intn(int(size)))
		c.Set(idx, !c.At(idx))
		require.False(t, v.Equal(c))

		c.CopyFrom(v)
		require.True(t, v.Equal(c))

		require.True(t, v.Equal(FromBools(ToBools(v))))
		require.Equal(t, v.String(), NewPackingVectorFromBinary(v.String()).String())
	}
}

func TestPackingVectorSizeMismatch(t *testing.T) {
	a := NewPackingVector(3)
	b := NewPackingVector(4)
	require.False(t, a.Equal(b))
	require.Panics(t, func() { a.CopyFrom(b) })
}

func TestPackingVectorHashSeparatesSizes(t *testing.T) {
	a := NewPackingVectorFromBinary("100")
	b := NewPackingVectorFromBinary("1000")
	require.NotEqual(t, a.Hash(), b.Hash())
}

func TestMostSignificantBit(t *testing.T) {
	require.Equal(t, -1, MostSignificantBit(0))
	require.Equal(t, 0, MostSignificantBit(1))
	require.Equal(t, 63, MostSignificantBit(1<<63))
	require.Equal(t, 5, MostSignificantBit(0b101010))
}
