package polytope

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/polytope/vector"
)

// Polytope is the explicit, incidence-list representation.
//
// Level 0 is the vertex list; level d (d ≥ 1) holds elements given as
// sorted index-sets into level d−1. The zero number of levels is the
// nullitope (dimension −1).
type Polytope struct {
	spaceDim int
	verts    []vector.Vector // nil means no vertex level at all
	levels   [][][]int       // levels[d-1] is element level d
}

// New returns the nullitope embedded in a space of the given dimension.
func New(spaceDim int) *Polytope {
	if spaceDim < 0 {
		panic(fmt.Sprintf("polytope: negative space dimension %d", spaceDim))
	}
	return &Polytope{spaceDim: spaceDim}
}

// NewFromVertices returns a 0-dimensional polytope holding deep copies
// of the given points. All points must share one dimension; a mismatch
// panics.
func NewFromVertices(verts []vector.Vector) *Polytope {
	if len(verts) == 0 {
		panic("polytope: NewFromVertices requires at least one vertex")
	}
	dim := verts[0].Dim()
	vs := make([]vector.Vector, len(verts))
	for i, v := range verts {
		if v.Dim() != dim {
			panic(fmt.Sprintf("polytope: vertex %d has dimension %d, want %d", i, v.Dim(), dim))
		}
		vs[i] = v.Clone()
	}
	return &Polytope{spaceDim: dim, verts: vs}
}

// AddLevel appends the next element level. Each element is a set of
// indices into the current top level; indices are stored sorted and
// deduplicated. Returns ErrBadIncidence when an index is out of range.
func (p *Polytope) AddLevel(elements [][]int) error {
	if p.verts == nil {
		return fmt.Errorf("%w: cannot add a level to the nullitope", ErrBadIncidence)
	}
	below := p.ElementCount(p.Dimensions())
	level := make([][]int, len(elements))
	for i, elem := range elements {
		seen := make(map[int]bool, len(elem))
		sorted := make([]int, 0, len(elem))
		for _, b := range elem {
			if b < 0 || b >= below {
				return fmt.Errorf("%w: element %d refers to %d, level has %d", ErrBadIncidence, i, b, below)
			}
			if !seen[b] {
				seen[b] = true
				sorted = append(sorted, b)
			}
		}
		sort.Ints(sorted)
		level[i] = sorted
	}
	p.levels = append(p.levels, level)
	return nil
}

// Dimensions returns the polytope's dimension: −1 for the nullitope, 0
// for a point cloud, and so on.
func (p *Polytope) Dimensions() int {
	if p.verts == nil {
		return -1
	}
	return len(p.levels)
}

// SpaceDimensions returns the dimension of the ambient space.
func (p *Polytope) SpaceDimensions() int { return p.spaceDim }

// SetSpaceDimensions re-embeds the polytope: every vertex is truncated
// or zero-padded to the new dimension.
func (p *Polytope) SetSpaceDimensions(dim int) {
	if dim < 0 {
		panic(fmt.Sprintf("polytope: negative space dimension %d", dim))
	}
	for i, v := range p.verts {
		p.verts[i] = v.Resize(dim)
	}
	p.spaceDim = dim
}

// VertexCount returns the number of vertices.
func (p *Polytope) VertexCount() int { return len(p.verts) }

// ElementCount returns the number of elements at dimension d, or 0
// when the polytope has no such level.
func (p *Polytope) ElementCount(d int) int {
	switch {
	case d == 0 && p.verts != nil:
		return len(p.verts)
	case d >= 1 && d <= len(p.levels):
		return len(p.levels[d-1])
	default:
		return 0
	}
}

// Vertex returns a copy of vertex i.
func (p *Polytope) Vertex(i int) (vector.Vector, error) {
	if i < 0 || i >= len(p.verts) {
		return nil, fmt.Errorf("%w: vertex %d of %d", ErrElementRange, i, len(p.verts))
	}
	return p.verts[i].Clone(), nil
}

// Vertices returns a deep copy of the vertex list.
func (p *Polytope) Vertices() []vector.Vector {
	vs := make([]vector.Vector, len(p.verts))
	for i, v := range p.verts {
		vs[i] = v.Clone()
	}
	return vs
}

// Element returns a copy of the boundary index-set of element i at
// dimension d (d ≥ 1).
func (p *Polytope) Element(d, i int) ([]int, error) {
	if d < 1 || d > len(p.levels) {
		return nil, fmt.Errorf("%w: no element level %d", ErrElementRange, d)
	}
	level := p.levels[d-1]
	if i < 0 || i >= len(level) {
		return nil, fmt.Errorf("%w: element %d of %d at dimension %d", ErrElementRange, i, len(level), d)
	}
	out := make([]int, len(level[i]))
	copy(out, level[i])
	return out, nil
}

// Validate checks structural soundness: every boundary index lands in
// the level below, and every element of dimension d has at least d+1
// boundary elements.
func (p *Polytope) Validate() error {
	for d := 1; d <= len(p.levels); d++ {
		below := p.ElementCount(d - 1)
		for i, elem := range p.levels[d-1] {
			if len(elem) < d+1 {
				return fmt.Errorf("%w: element %d at dimension %d has %d, want at least %d",
					ErrDegenerateElement, i, d, len(elem), d+1)
			}
			for _, b := range elem {
				if b < 0 || b >= below {
					return fmt.Errorf("%w: element %d at dimension %d refers to %d, level has %d",
						ErrBadIncidence, i, d, b, below)
				}
			}
		}
	}
	return nil
}
