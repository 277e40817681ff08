package polytope

import (
	"fmt"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"

	"github.com/katalvlaran/polytope/flags"
	"github.com/katalvlaran/polytope/symmetry"
	"github.com/katalvlaran/polytope/vector"
)

// SymmetryPolytope is the implicit representation: a symmetry group, a
// flag-class table describing how generators move flags between
// classes, one seed vertex per class, and a rank. Concrete elements
// exist only after ToExplicit.
type SymmetryPolytope struct {
	group    symmetry.Group
	classes  []flags.Class
	seeds    []vector.Vector
	rank     int
	spaceDim int
}

// NewSymmetry builds an implicit polytope. The class table must be
// rectangular with one transition per generator and in-range class
// targets (flags.ValidateClasses); seeds must pair up with classes and
// share one dimension, else ErrBadSeeds.
func NewSymmetry(g symmetry.Group, classes []flags.Class, seeds []vector.Vector, rank int) (*SymmetryPolytope, error) {
	if err := flags.ValidateClasses(classes, rank); err != nil {
		return nil, err
	}
	if len(seeds) != len(classes) {
		return nil, fmt.Errorf("%w: %d seeds for %d classes", ErrBadSeeds, len(seeds), len(classes))
	}
	dim := seeds[0].Dim()
	ss := make([]vector.Vector, len(seeds))
	for i, s := range seeds {
		if s.Dim() != dim {
			return nil, fmt.Errorf("%w: seed %d has dimension %d, want %d", ErrBadSeeds, i, s.Dim(), dim)
		}
		ss[i] = s.Clone()
	}
	return &SymmetryPolytope{group: g, classes: classes, seeds: ss, rank: rank, spaceDim: dim}, nil
}

// Rank returns the implicit polytope's rank.
func (sp *SymmetryPolytope) Rank() int { return sp.rank }

// SpaceDimensions returns the dimension of the seed vertices.
func (sp *SymmetryPolytope) SpaceDimensions() int { return sp.spaceDim }

// Scale multiplies every seed vertex by r in place. The explicit form
// of the scaled polytope equals the scaled explicit form.
func (sp *SymmetryPolytope) Scale(r float64) {
	for _, s := range sp.seeds {
		s.Scale(r)
	}
}

// Gravicenter requires the explicit form; it always returns
// ErrNotConverted.
func (sp *SymmetryPolytope) Gravicenter() (vector.Vector, error) {
	return nil, ErrNotConverted
}

// Move requires the explicit form; it always returns ErrNotConverted.
func (sp *SymmetryPolytope) Move(vector.Vector, float64) error {
	return ErrNotConverted
}

// Circumradius requires the explicit form; it always returns
// ErrNotConverted.
func (sp *SymmetryPolytope) Circumradius() (float64, error) {
	return 0, ErrNotConverted
}

// ToExplicit lowers the implicit representation to an incidence-list
// Polytope.
//
// Two simplifier chains over the shared flag universe are folded once:
// the ascending chain asc[i] identifies flags across generators
// 0..i−1, the descending chain desc[j] across generators
// rank−j..rank−1. Flags belong to the same element of dimension d
// exactly when they agree off generator d, so the element simplifier
// for d is the join asc[d] ⋁ desc[rank−d−1]; the simplifier for
// incidences between d−1 and d drops both generators, i.e.
// asc[d−1] ⋁ desc[rank−d−1]. Elements are numbered in the order their
// canonical flags appear in the group-enumeration × class scan, which
// makes the output deterministic for a fixed group enumeration.
//
// Complexity: O(rank·|G|·|C|) flag operations plus the cost of the
// group actions on seed vertices.
func (sp *SymmetryPolytope) ToExplicit() (*Polytope, error) {
	g := sp.group
	rank := sp.rank

	identity := flags.NewIdentity(g, sp.classes)
	asc := make([]*flags.Simplifier, rank+1)
	desc := make([]*flags.Simplifier, rank+1)
	asc[0], desc[0] = identity, identity
	for i := 0; i < rank; i++ {
		asc[i+1] = asc[i].Extend(i)
		desc[i+1] = desc[i].Extend(rank - 1 - i)
	}

	elementSimp := func(d int) *flags.Simplifier {
		if d == rank {
			return asc[rank]
		}
		return asc[d].Merge(desc[rank-d-1])
	}
	incidenceSimp := func(d int) *flags.Simplifier {
		if d == rank {
			return asc[rank-1]
		}
		return asc[d-1].Merge(desc[rank-d-1])
	}

	elems := g.Elements()

	// Level 0: one vertex per class of the vertex simplifier, placed by
	// acting on the class's seed with the canonical flag's element.
	prev := elementSimp(0)
	prevID := make(map[int]int, prev.ClassCount())
	verts := make([]vector.Vector, 0, prev.ClassCount())
	for _, e := range elems {
		for ci := range sp.classes {
			f := flags.Flag{Class: ci, Domain: e}
			if prev.IsRepresentative(f) {
				prevID[prev.Index(f)] = len(verts)
				verts = append(verts, g.Act(e, sp.seeds[ci]))
			}
		}
	}
	p := &Polytope{spaceDim: sp.spaceDim, verts: verts}

	for d := 1; d <= rank; d++ {
		cur := elementSimp(d)
		inter := incidenceSimp(d)

		curID := make(map[int]int, cur.ClassCount())
		bounds := make([]*treeset.Set, 0, cur.ClassCount())
		for _, e := range elems {
			for ci := range sp.classes {
				f := flags.Flag{Class: ci, Domain: e}
				if cur.IsRepresentative(f) {
					curID[cur.Index(f)] = len(bounds)
					bounds = append(bounds, treeset.NewWith(utils.IntComparator))
				}
			}
		}

		// One incidence per class of the intersection simplifier: its
		// canonical flag names a (d−1)-element and the d-element it
		// bounds. Distinct intersection classes can yield the same
		// pair, the set dedupes them.
		for _, e := range elems {
			for ci := range sp.classes {
				f := flags.Flag{Class: ci, Domain: e}
				if !inter.IsRepresentative(f) {
					continue
				}
				bounds[curID[cur.Index(f)]].Add(prevID[prev.Index(f)])
			}
		}

		level := make([][]int, len(bounds))
		for i, set := range bounds {
			ids := make([]int, 0, set.Size())
			set.Each(func(_ int, v interface{}) {
				ids = append(ids, v.(int))
			})
			level[i] = ids
		}
		p.levels = append(p.levels, level)
		prev, prevID = cur, curID
	}
	return p, nil
}
