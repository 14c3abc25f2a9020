package disjointset_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/spanforest/disjointset"
)

// BenchmarkUnionFind measures n random unions followed by n finds on 100k elements.
func BenchmarkUnionFind(b *testing.B) {
	const n = 100_000
	r := rand.New(rand.NewSource(42))
	pairs := make([][2]int, n)
	for i := range pairs {
		pairs[i] = [2]int{r.Intn(n), r.Intn(n)}
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d := disjointset.New(n)
		for _, p := range pairs {
			_ = d.Union(p[0], p[1])
		}
		for v := 0; v < n; v++ {
			_, _ = d.Find(v)
		}
	}
}
