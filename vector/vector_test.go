package vector_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/polytope/vector"
)

// TestVector_Arithmetic verifies elementwise add/sub/scale semantics and
// that arithmetic mutates the receiver (the documented contract).
func TestVector_Arithmetic(t *testing.T) {
	v := vector.From(1, 2, 3)
	w := vector.From(4, 5, 6)

	got := v.Add(w)
	assert.Equal(t, vector.From(5, 7, 9), got, "Add must be elementwise")
	assert.Equal(t, vector.From(5, 7, 9), v, "Add must mutate the receiver")

	got.Sub(w)
	assert.Equal(t, vector.From(1, 2, 3), v, "Sub must undo Add")

	v.Scale(2)
	assert.Equal(t, vector.From(2, 4, 6), v, "Scale must multiply each coordinate")

	v.AddScaled(-1, vector.From(2, 4, 6))
	assert.Equal(t, vector.From(0, 0, 0), v, "AddScaled with r=-1 must cancel")
}

// TestVector_Metrics checks Dot, Magnitude, SqMagnitude and Distance on
// a 3-4-5 triangle.
func TestVector_Metrics(t *testing.T) {
	a := vector.From(3, 0)
	b := vector.From(0, 4)

	assert.Equal(t, 0.0, a.Dot(b), "orthogonal vectors have zero dot product")
	assert.Equal(t, 9.0, a.SqMagnitude())
	assert.Equal(t, 3.0, a.Magnitude())
	assert.Equal(t, 5.0, a.Distance(b), "3-4-5 triangle hypotenuse")
	assert.InDelta(t, 25.0, a.SqDistance(b), 1e-12)
}

// TestVector_Project verifies the component-along-a-vector operation and
// its zero-vector contract violation.
func TestVector_Project(t *testing.T) {
	v := vector.From(2, 2)
	x := vector.From(1, 0)

	p := v.Project(x)
	assert.Equal(t, vector.From(2, 0), p, "projection of (2,2) onto x-axis")
	assert.Equal(t, vector.From(2, 2), v, "Project must not mutate the receiver")

	assert.Panics(t, func() { v.Project(vector.From(0, 0)) },
		"projection onto the zero vector is a contract violation")
}

// TestVector_DimensionMismatchPanics confirms the fail-fast contract:
// mixing dimensions is a programming error, not a recoverable condition.
func TestVector_DimensionMismatchPanics(t *testing.T) {
	assert.Panics(t, func() { vector.From(1, 2).Add(vector.From(1, 2, 3)) })
	assert.Panics(t, func() { vector.From(1, 2).Dot(vector.From(1)) })
}

// TestVector_ApplyMatrix applies a 90° rotation and a projection matrix.
func TestVector_ApplyMatrix(t *testing.T) {
	rot := mat.NewDense(2, 2, []float64{0, -1, 1, 0})
	v := vector.From(1, 0)

	got := v.ApplyMatrix(rot)
	assert.True(t, got.EqualWithin(vector.From(0, 1), 1e-12), "90° rotation of e_x is e_y")

	// 3D → 2D projection drops the last coordinate.
	proj := mat.NewDense(2, 3, []float64{1, 0, 0, 0, 1, 0})
	got = vector.From(7, 8, 9).ApplyMatrix(proj)
	assert.Equal(t, vector.From(7, 8), got)

	assert.Panics(t, func() { vector.From(1, 2, 3).ApplyMatrix(rot) },
		"column count must match vector dimension")
}

// TestVector_Resize covers both truncation and zero-padding.
func TestVector_Resize(t *testing.T) {
	v := vector.From(1, 2, 3)

	up := v.Resize(5)
	assert.Equal(t, vector.From(1, 2, 3, 0, 0), up, "Resize up must zero-pad")

	down := v.Resize(2)
	assert.Equal(t, vector.From(1, 2), down, "Resize down must truncate")

	assert.Equal(t, vector.From(1, 2, 3), v, "Resize must not mutate the receiver")
}

// TestVector_EqualWithin exercises tolerance comparison, including the
// dimension-mismatch short circuit.
func TestVector_EqualWithin(t *testing.T) {
	a := vector.From(1, 1)
	b := vector.From(1+1e-12, 1-1e-12)

	assert.True(t, a.EqualWithin(b, 1e-9))
	assert.False(t, a.EqualWithin(b, 1e-15))
	assert.False(t, a.EqualWithin(vector.From(1, 1, 1), math.Inf(1)),
		"different dimensions are never equal")
}
