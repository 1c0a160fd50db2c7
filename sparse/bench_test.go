// Package sparse_test provides benchmarks for grid mutation and algebra,
// using a deterministic random fill.
package sparse_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/hodsonus/sparse-matrix-add-multiply/sparse"
)

// benchSizes are the square grid sizes to benchmark.
var benchSizes = []int{64, 256, 1024}

// benchDensity is the fraction of stored cells in benchmark operands.
const benchDensity = 0.01

// sinks to defeat dead-code elimination
var (
	sinkG *sparse.Grid
	sinkI int
)

// fillRand stores about density*n*n random nonzero cells in g.
func fillRand(b *testing.B, g *sparse.Grid, density float64, seed int64) {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	n := int(density * float64(g.Rows()*g.Cols()))
	for k := 0; k < n; k++ {
		if err := g.Set(rng.Intn(g.Rows()), rng.Intn(g.Cols()), 1+rng.Intn(9)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSet(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			g := mustGrid(b, n, n)
			rng := rand.New(rand.NewSource(7))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = g.Set(rng.Intn(n), rng.Intn(n), rng.Intn(3))
			}
			sinkI = g.NNZ()
		})
	}
}

func BenchmarkAdd(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := mustGrid(b, n, n), mustGrid(b, n, n)
			fillRand(b, x, benchDensity, 1337)
			fillRand(b, y, benchDensity, 4242)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := sparse.Add(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}

func BenchmarkMul(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			x, y := mustGrid(b, n, n), mustGrid(b, n, n)
			fillRand(b, x, benchDensity, 11)
			fillRand(b, y, benchDensity, 22)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g, err := sparse.Mul(x, y)
				if err != nil {
					b.Fatal(err)
				}
				sinkG = g
			}
		})
	}
}
