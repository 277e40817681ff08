package polytope_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/polytope"
	"github.com/katalvlaran/polytope/flags"
	"github.com/katalvlaran/polytope/symmetry"
	"github.com/katalvlaran/polytope/vector"
)

// BenchmarkToExplicit measures the full conversion pipeline on a
// 256-gon: a 512-flag universe folded twice per chain plus
// materialization.
func BenchmarkToExplicit(b *testing.B) {
	const n = 256
	g, err := symmetry.NewDihedral(n)
	if err != nil {
		b.Fatal(err)
	}
	classes := []flags.Class{{Changes: []flags.Change{
		flags.RightMultiply(0, g.Reflection(0)),
		flags.RightMultiply(0, g.Reflection(1)),
	}}}
	seed := vector.From(math.Cos(math.Pi/n), math.Sin(math.Pi/n))
	sp, err := polytope.NewSymmetry(g, classes, []vector.Vector{seed}, 2)
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sp.ToExplicit(); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCircumcenterOf measures the incremental Gram–Schmidt sweep
// over the vertices of a high-dimensional cross-polytope.
func BenchmarkCircumcenterOf(b *testing.B) {
	const dim = 64
	pts := make([]vector.Vector, 0, 2*dim)
	for i := 0; i < dim; i++ {
		plus := vector.New(dim)
		plus[i] = 1
		minus := vector.New(dim)
		minus[i] = -1
		pts = append(pts, plus, minus)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := polytope.CircumcenterOf(pts, polytope.DefaultEpsilon); !ok {
			b.Fatal("cross-polytope vertices are concyclic")
		}
	}
}
