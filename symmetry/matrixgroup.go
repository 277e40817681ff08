package symmetry

import (
	"math"

	"github.com/emirpasic/gods/sets/treeset"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polytope/vector"
)

// MatrixOptions configures finite matrix-group construction.
//
// Fields:
//   - Tol      — comparator grid: entries are rounded to multiples of
//     Tol before the lexicographic compare, so numerically equal
//     products collapse to one element. Must be positive.
//   - MaxOrder — closure guard: generation fails with ErrNotClosed once
//     the element count exceeds this bound (an infinite group would
//     otherwise never terminate).
type MatrixOptions struct {
	Tol      float64
	MaxOrder int
}

// DefaultMatrixOptions returns Tol=1e-9, MaxOrder=65536.
func DefaultMatrixOptions() MatrixOptions {
	return MatrixOptions{Tol: 1e-9, MaxOrder: 65536}
}

// Matrix is a finite group of dim×dim real matrices generated by an
// explicit generator set and closed under multiplication at
// construction time. Elements are *mat.Dense values.
type Matrix struct {
	dim   int
	tol   float64
	elems []Element
}

// NewMatrix closes gens under multiplication with a breadth-first
// product walk and returns the resulting group.
//
// Errors:
//   - ErrBadGenerator — a generator is not dim×dim, or gens is empty.
//   - ErrNotClosed    — closure exceeded opts.MaxOrder elements.
//
// Complexity: O(|G|·k·dim³ + |G|·k·dim²·log|G|) for k generators.
func NewMatrix(dim int, gens []*mat.Dense, opts MatrixOptions) (*Matrix, error) {
	if len(gens) == 0 {
		return nil, ErrBadGenerator
	}
	for _, gen := range gens {
		if r, c := gen.Dims(); r != dim || c != dim {
			return nil, ErrBadGenerator
		}
	}
	if opts.Tol <= 0 {
		opts.Tol = DefaultMatrixOptions().Tol
	}
	if opts.MaxOrder <= 0 {
		opts.MaxOrder = DefaultMatrixOptions().MaxOrder
	}

	g := &Matrix{dim: dim, tol: opts.Tol}

	id := identityDense(dim)
	seen := treeset.NewWith(func(a, b interface{}) int {
		return compareDense(a.(*mat.Dense), b.(*mat.Dense), g.tol)
	})
	seen.Add(id)

	queue := []*mat.Dense{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, gen := range gens {
			prod := mat.NewDense(dim, dim, nil)
			prod.Mul(cur, gen)
			if seen.Contains(prod) {
				continue
			}
			seen.Add(prod)
			if seen.Size() > opts.MaxOrder {
				return nil, ErrNotClosed
			}
			queue = append(queue, prod)
		}
	}

	// Enumeration order = comparator order, fixed and reproducible.
	g.elems = make([]Element, 0, seen.Size())
	seen.Each(func(_ int, v interface{}) {
		g.elems = append(g.elems, v.(*mat.Dense))
	})
	return g, nil
}

// Order returns the number of elements.
func (g *Matrix) Order() int { return len(g.elems) }

// Dim returns the matrix dimension.
func (g *Matrix) Dim() int { return g.dim }

// Identity returns the identity matrix element.
func (g *Matrix) Identity() Element { return identityDense(g.dim) }

// Compare orders elements lexicographically over tolerance-rounded
// entries. On a closed finite element set this is a strict total order:
// distinct elements differ by far more than the grid spacing.
func (g *Matrix) Compare(a, b Element) int {
	return compareDense(a.(*mat.Dense), b.(*mat.Dense), g.tol)
}

// Elements enumerates the closed element set in comparator order.
func (g *Matrix) Elements() []Element { return g.elems }

// Apply returns the matrix product e·t.
func (g *Matrix) Apply(e, t Element) Element {
	prod := mat.NewDense(g.dim, g.dim, nil)
	prod.Mul(e.(*mat.Dense), t.(*mat.Dense))
	return prod
}

// Act returns e·p.
func (g *Matrix) Act(e Element, p vector.Vector) vector.Vector {
	return p.ApplyMatrix(e.(*mat.Dense))
}

func identityDense(dim int) *mat.Dense {
	m := mat.NewDense(dim, dim, nil)
	for i := 0; i < dim; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// compareDense is the lexicographic entrywise order on the tol grid.
func compareDense(a, b *mat.Dense, tol float64) int {
	ra, ca := a.Dims()
	rb, cb := b.Dims()
	if ra != rb || ca != cb {
		// Mixing groups is a programmer error; still order consistently.
		if ra*ca < rb*cb {
			return -1
		}
		return 1
	}
	for i := 0; i < ra; i++ {
		for j := 0; j < ca; j++ {
			va := math.Round(a.At(i, j) / tol)
			vb := math.Round(b.At(i, j) / tol)
			if va < vb {
				return -1
			}
			if va > vb {
				return 1
			}
		}
	}
	return 0
}
