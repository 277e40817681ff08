package symmetry

import (
	"math"

	"github.com/katalvlaran/polytope/vector"
)

// Cyclic is the cyclic group C_n of rotations of a regular n-gon.
// Elements are rotation counts 0..n-1; Act rotates the first two
// coordinates of a point by 2πk/n and leaves higher coordinates alone.
type Cyclic struct {
	n     int
	elems []Element
}

// NewCyclic constructs C_n. Returns ErrBadOrder for n < 1.
// Complexity: O(n).
func NewCyclic(n int) (*Cyclic, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	g := &Cyclic{n: n, elems: make([]Element, n)}
	for k := 0; k < n; k++ {
		g.elems[k] = k
	}
	return g, nil
}

// Order returns n.
func (g *Cyclic) Order() int { return g.n }

// Rotation returns the element rotating by k steps (any integer k).
func (g *Cyclic) Rotation(k int) Element {
	return ((k % g.n) + g.n) % g.n
}

// Identity returns the zero rotation.
func (g *Cyclic) Identity() Element { return 0 }

// Compare orders rotation counts numerically.
func (g *Cyclic) Compare(a, b Element) int {
	ka, kb := a.(int), b.(int)
	switch {
	case ka < kb:
		return -1
	case ka > kb:
		return 1
	default:
		return 0
	}
}

// Elements enumerates rotations 0..n-1.
func (g *Cyclic) Elements() []Element { return g.elems }

// Apply composes two rotations: (a+t) mod n.
func (g *Cyclic) Apply(e, t Element) Element {
	return (e.(int) + t.(int)) % g.n
}

// Act rotates the first two coordinates of p by 2πk/n.
// Points of dimension below 2 are returned unchanged apart from the copy.
func (g *Cyclic) Act(e Element, p vector.Vector) vector.Vector {
	out := p.Clone()
	if len(out) < 2 {
		return out
	}
	theta := 2 * math.Pi * float64(e.(int)) / float64(g.n)
	sin, cos := math.Sincos(theta)
	x, y := out[0], out[1]
	out[0] = cos*x - sin*y
	out[1] = sin*x + cos*y
	return out
}
