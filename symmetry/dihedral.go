package symmetry

import (
	"math"

	"github.com/katalvlaran/polytope/vector"
)

// dihedralElem is R^rot·F^refl: an optional reflection across the
// x-axis followed by a rotation of 2π·rot/n.
type dihedralElem struct {
	rot  int
	refl bool
}

// Dihedral is the dihedral group D_n of order 2n: the full symmetry
// group of a regular n-gon (n rotations and n reflections).
type Dihedral struct {
	n     int
	elems []Element
}

// NewDihedral constructs D_n. Returns ErrBadOrder for n < 1.
// Complexity: O(n).
func NewDihedral(n int) (*Dihedral, error) {
	if n < 1 {
		return nil, ErrBadOrder
	}
	g := &Dihedral{n: n, elems: make([]Element, 0, 2*n)}
	for k := 0; k < n; k++ {
		g.elems = append(g.elems, dihedralElem{rot: k})
	}
	for k := 0; k < n; k++ {
		g.elems = append(g.elems, dihedralElem{rot: k, refl: true})
	}
	return g, nil
}

// Order returns 2n.
func (g *Dihedral) Order() int { return 2 * g.n }

// Rotation returns the pure rotation by k steps.
func (g *Dihedral) Rotation(k int) Element {
	return dihedralElem{rot: ((k % g.n) + g.n) % g.n}
}

// Reflection returns R^k·F, the reflection across the line through the
// origin at angle πk/n.
func (g *Dihedral) Reflection(k int) Element {
	return dihedralElem{rot: ((k % g.n) + g.n) % g.n, refl: true}
}

// Identity returns the zero rotation.
func (g *Dihedral) Identity() Element { return dihedralElem{} }

// Compare orders rotations before reflections, then by rotation count.
func (g *Dihedral) Compare(a, b Element) int {
	ea, eb := a.(dihedralElem), b.(dihedralElem)
	if ea.refl != eb.refl {
		if !ea.refl {
			return -1
		}
		return 1
	}
	switch {
	case ea.rot < eb.rot:
		return -1
	case ea.rot > eb.rot:
		return 1
	default:
		return 0
	}
}

// Elements enumerates the n rotations followed by the n reflections.
func (g *Dihedral) Elements() []Element { return g.elems }

// Apply returns e·t under the R^r·F^m normal form:
// R^r1·F^m1 · R^r2·F^m2 = R^(r1±r2)·F^(m1 xor m2), the sign flipping
// when m1 is a reflection (F·R^k = R^-k·F).
func (g *Dihedral) Apply(e, t Element) Element {
	e1, e2 := e.(dihedralElem), t.(dihedralElem)
	r := e1.rot
	if e1.refl {
		r -= e2.rot
	} else {
		r += e2.rot
	}
	return dihedralElem{
		rot:  ((r % g.n) + g.n) % g.n,
		refl: e1.refl != e2.refl,
	}
}

// Act applies F^refl then R^rot to the first two coordinates of p.
func (g *Dihedral) Act(e Element, p vector.Vector) vector.Vector {
	de := e.(dihedralElem)
	out := p.Clone()
	if len(out) < 2 {
		return out
	}
	x, y := out[0], out[1]
	if de.refl {
		y = -y
	}
	theta := 2 * math.Pi * float64(de.rot) / float64(g.n)
	sin, cos := math.Sincos(theta)
	out[0] = cos*x - sin*y
	out[1] = sin*x + cos*y
	return out
}
