package vector

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Vector is an ordered tuple of real numbers with dimension fixed at
// construction. The zero-length Vector is valid and represents a point
// in 0-dimensional space.
//
// Arithmetic methods mutate the receiver in place and return it, so
// calls can be chained; Clone first when the original is still needed.
type Vector []float64

// New returns the origin of d-dimensional space.
// Complexity: O(d).
func New(d int) Vector {
	return make(Vector, d)
}

// From builds a Vector from explicit coordinates.
// Complexity: O(d).
func From(vals ...float64) Vector {
	v := make(Vector, len(vals))
	copy(v, vals)
	return v
}

// Dim returns the dimension of v.
// Complexity: O(1).
func (v Vector) Dim() int { return len(v) }

// Clone returns an independent deep copy of v.
// Complexity: O(d).
func (v Vector) Clone() Vector {
	w := make(Vector, len(v))
	copy(w, v)
	return w
}

// Add adds o to v elementwise. Panics on dimension mismatch.
// Complexity: O(d).
func (v Vector) Add(o Vector) Vector {
	floats.Add(v, o)
	return v
}

// Sub subtracts o from v elementwise. Panics on dimension mismatch.
// Complexity: O(d).
func (v Vector) Sub(o Vector) Vector {
	floats.Sub(v, o)
	return v
}

// Scale multiplies every coordinate of v by r.
// Complexity: O(d).
func (v Vector) Scale(r float64) Vector {
	floats.Scale(r, v)
	return v
}

// AddScaled adds r·o to v. Panics on dimension mismatch.
// Complexity: O(d).
func (v Vector) AddScaled(r float64, o Vector) Vector {
	floats.AddScaled(v, r, o)
	return v
}

// Dot returns the inner product ⟨v, o⟩. Panics on dimension mismatch.
// Complexity: O(d).
func (v Vector) Dot(o Vector) float64 {
	return floats.Dot(v, o)
}

// SqMagnitude returns |v|².
// Complexity: O(d).
func (v Vector) SqMagnitude() float64 {
	return floats.Dot(v, v)
}

// Magnitude returns the Euclidean norm |v|.
// Complexity: O(d).
func (v Vector) Magnitude() float64 {
	return floats.Norm(v, 2)
}

// Distance returns the Euclidean distance |v − o|.
// Panics on dimension mismatch.
// Complexity: O(d).
func (v Vector) Distance(o Vector) float64 {
	return floats.Distance(v, o, 2)
}

// SqDistance returns |v − o|² without the square root.
// Panics on dimension mismatch.
// Complexity: O(d).
func (v Vector) SqDistance(o Vector) float64 {
	d := floats.Distance(v, o, 2)
	return d * d
}

// Project returns the component of v along onto, i.e. the orthogonal
// projection of v onto the line spanned by onto, as a new Vector.
// Panics if onto is the zero vector (projection is undefined) or on
// dimension mismatch.
// Complexity: O(d).
func (v Vector) Project(onto Vector) Vector {
	sq := onto.SqMagnitude()
	if sq == 0 {
		panic("vector: projection onto zero vector")
	}
	k := floats.Dot(v, onto) / sq
	return onto.Clone().Scale(k)
}

// ApplyMatrix returns m·v as a new Vector of dimension rows(m).
// Panics if cols(m) differs from the dimension of v.
// Complexity: O(rows·cols).
func (v Vector) ApplyMatrix(m mat.Matrix) Vector {
	r, c := m.Dims()
	if c != len(v) {
		panic("vector: matrix/vector dimension mismatch")
	}
	var out mat.VecDense
	out.MulVec(m, mat.NewVecDense(len(v), v))
	w := make(Vector, r)
	copy(w, out.RawVector().Data)
	return w
}

// Resize returns a copy of v truncated or zero-padded to dimension d.
// This is the only sanctioned way to move a vector between spaces of
// different dimension.
// Complexity: O(d).
func (v Vector) Resize(d int) Vector {
	w := make(Vector, d)
	copy(w, v)
	return w
}

// EqualWithin reports whether v and o agree coordinatewise within tol.
// Vectors of different dimension are never equal.
// Complexity: O(d).
func (v Vector) EqualWithin(o Vector, tol float64) bool {
	if len(v) != len(o) {
		return false
	}
	for i := range v {
		if math.Abs(v[i]-o[i]) > tol {
			return false
		}
	}
	return true
}
