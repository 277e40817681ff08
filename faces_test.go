package polytope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope"
	"github.com/katalvlaran/polytope/vector"
)

// isTraversal reports whether order visits each vertex of the face
// exactly once with every consecutive pair (cyclically) being an edge.
func isTraversal(p *polytope.Polytope, face int, order []int) bool {
	bounds, err := p.Element(2, face)
	if err != nil {
		return false
	}
	edges := make(map[[2]int]bool, len(bounds))
	for _, ei := range bounds {
		e, err := p.Element(1, ei)
		if err != nil || len(e) != 2 {
			return false
		}
		edges[[2]int{e[0], e[1]}] = true
		edges[[2]int{e[1], e[0]}] = true
	}
	if len(order) != len(bounds) {
		return false
	}
	seen := make(map[int]bool, len(order))
	for i, v := range order {
		if seen[v] {
			return false
		}
		seen[v] = true
		if !edges[[2]int{v, order[(i+1)%len(order)]}] {
			return false
		}
	}
	return true
}

func TestFaceToVertices_Square(t *testing.T) {
	p := unitSquare(t)

	order, err := p.FaceToVertices(0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, order, "walk starts at the first edge's first endpoint")
	assert.True(t, isTraversal(p, 0, order))
}

func TestFaceToVertices_Ranges(t *testing.T) {
	_, err := polytope.NewFromVertices([]vector.Vector{vector.From(0)}).FaceToVertices(0)
	assert.ErrorIs(t, err, polytope.ErrElementRange, "no face level")

	p := unitSquare(t)
	_, err = p.FaceToVertices(1)
	assert.ErrorIs(t, err, polytope.ErrElementRange)
	_, err = p.FaceToVertices(-1)
	assert.ErrorIs(t, err, polytope.ErrElementRange)
}

func TestFaceToVertices_Malformed(t *testing.T) {
	// Three edges of a square: the boundary does not close.
	p := polytope.NewFromVertices([]vector.Vector{
		vector.From(0, 0), vector.From(1, 0), vector.From(1, 1), vector.From(0, 1),
	})
	require.NoError(t, p.AddLevel([][]int{{0, 1}, {1, 2}, {2, 3}}))
	require.NoError(t, p.AddLevel([][]int{{0, 1, 2}}))

	_, err := p.FaceToVertices(0)
	assert.ErrorIs(t, err, polytope.ErrMalformedFace)
}
