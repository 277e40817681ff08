package flags_test

import (
	"testing"

	"github.com/katalvlaran/polytope/flags"
	"github.com/katalvlaran/polytope/symmetry"
)

// BenchmarkExtend measures one generator fold over the 2n-flag universe
// of a large polygon — the hot path of a conversion.
func BenchmarkExtend(b *testing.B) {
	g, err := symmetry.NewDihedral(512)
	if err != nil {
		b.Fatal(err)
	}
	classes := []flags.Class{{Changes: []flags.Change{
		flags.RightMultiply(0, g.Reflection(0)),
		flags.RightMultiply(0, g.Reflection(1)),
	}}}
	id := flags.NewIdentity(g, classes)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = id.Extend(0)
	}
}

// BenchmarkMerge measures the join of the two one-generator simplifiers.
func BenchmarkMerge(b *testing.B) {
	g, err := symmetry.NewDihedral(512)
	if err != nil {
		b.Fatal(err)
	}
	classes := []flags.Class{{Changes: []flags.Change{
		flags.RightMultiply(0, g.Reflection(0)),
		flags.RightMultiply(0, g.Reflection(1)),
	}}}
	id := flags.NewIdentity(g, classes)
	sv := id.Extend(1)
	se := id.Extend(0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sv.Merge(se)
	}
}
