package polytope

import (
	"fmt"

	"github.com/katalvlaran/polytope/cycle"
)

// FaceToVertices returns the vertices of face i (dimension-2 element)
// in traversal order: consecutive vertices in the result share an edge,
// as do the last and the first. The walk starts at the first endpoint of
// the face's first edge. ErrMalformedFace wraps the underlying defect when the
// face's edges do not close into a single simple cycle.
//
// Complexity: O(E·log E) over the face's edge count.
func (p *Polytope) FaceToVertices(i int) ([]int, error) {
	if len(p.levels) < 2 {
		return nil, fmt.Errorf("%w: polytope has no faces", ErrElementRange)
	}
	faces := p.levels[1]
	if i < 0 || i >= len(faces) {
		return nil, fmt.Errorf("%w: face %d of %d", ErrElementRange, i, len(faces))
	}
	edges := make([][2]int, len(faces[i]))
	for j, ei := range faces[i] {
		edge := p.levels[0][ei]
		if len(edge) != 2 {
			return nil, fmt.Errorf("%w: edge %d has %d endpoints", ErrMalformedFace, ei, len(edge))
		}
		edges[j] = [2]int{edge[0], edge[1]}
	}
	order, err := cycle.Order(edges)
	if err != nil {
		return nil, fmt.Errorf("%w: face %d: %v", ErrMalformedFace, i, err)
	}
	return order, nil
}
