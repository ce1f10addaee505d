package search

import (
	"testing"

	"TreeSearch/bits"

	"github.com/stretchr/testify/require"
)

func TestSolutionLog(t *testing.T) {
	log := NewSolutionLog(5)
	require.Equal(t, 0, log.Len())
	require.Equal(t, 0, log.TotalItems())

	packings := []string{"10100", "00000", "11111", "00001"}
	for _, p := range packings {
		log.Append(bits.NewPackingVectorFromBinary(p))
	}

	require.Equal(t, len(packings), log.Len())
	for i, p := range packings {
		require.Equal(t, p, log.At(i).String())
	}
	require.Equal(t, 2, log.ItemCount(0))
	require.Equal(t, 0, log.ItemCount(1))
	require.Equal(t, 5, log.ItemCount(2))
	require.Equal(t, 1, log.ItemCount(3))
	require.Equal(t, 8, log.TotalItems())

	require.True(t, log.Contains(bits.NewPackingVectorFromBinary("11111")))
	require.False(t, log.Contains(bits.NewPackingVectorFromBinary("01111")))
	require.False(t, log.Contains(bits.NewPackingVectorFromBinary("111")))

	require.Panics(t, func() { log.At(4) })
	require.Panics(t, func() { log.ItemCount(-1) })
	require.Panics(t, func() { log.Append(bits.NewPackingVectorFromBinary("101")) })

	report := log.MemReport()
	require.Len(t, report.Children, 3)
	require.Equal(t, report.TotalBytes, report.ChildBytes())
	require.Contains(t, report.Name, "4 solutions")
}
