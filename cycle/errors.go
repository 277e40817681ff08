package cycle

import "errors"

var (
	// ErrNoEdges indicates an empty edge set was supplied.
	ErrNoEdges = errors.New("cycle: edge set is empty")
	// ErrNonManifold indicates a vertex referenced by three or more edges.
	ErrNonManifold = errors.New("cycle: vertex has more than two edge partners")
	// ErrOpenBoundary indicates a vertex with fewer than two edge partners.
	ErrOpenBoundary = errors.New("cycle: boundary does not close")
	// ErrDisconnected indicates the edges close into more than one cycle.
	ErrDisconnected = errors.New("cycle: edges form more than one cycle")
)
