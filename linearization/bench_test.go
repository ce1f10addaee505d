package linearization

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"TreeSearch/bits"
	"TreeSearch/errutil"
)

const benchmarkParallelism = 4

var benchSizes = []int{24, 64, 256, 1024}

func BenchmarkNewTable(b *testing.B) {
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := NewTable(n); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkDecodeInto(b *testing.B) {
	for _, n := range benchSizes {
		table := errutil.Must(NewTable(n))
		r := rand.New(rand.NewSource(1))
		ordinals := make([]*big.Int, 1024)
		for i := range ordinals {
			ordinals[i] = randomOrdinal(r, n)
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetParallelism(benchmarkParallelism)
			b.RunParallel(func(pb *testing.PB) {
				dst := bits.NewPackingVector(uint32(n))
				i := 0
				for pb.Next() {
					if err := table.DecodeInto(dst, ordinals[i%len(ordinals)]); err != nil {
						b.Fatal(err)
					}
					i++
				}
			})
		})
	}
}

func BenchmarkEncode(b *testing.B) {
	for _, n := range benchSizes {
		table := errutil.Must(NewTable(n))
		r := rand.New(rand.NewSource(1))
		vectors := make([]*bits.PackingVector, 1024)
		for i := range vectors {
			vectors[i] = randomVector(r, n)
		}

		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				if _, err := table.Encode(vectors[i%len(vectors)]); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
