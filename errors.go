package polytope

import "errors"

var (
	// ErrElementRange is returned for an element index outside the
	// polytope's element list at the requested dimension.
	ErrElementRange = errors.New("polytope: element index out of range")

	// ErrBadIncidence is returned by Validate when an element refers
	// to a boundary index outside the level below it.
	ErrBadIncidence = errors.New("polytope: boundary index out of range")

	// ErrDegenerateElement is returned by Validate when an element of
	// dimension d has fewer than d+1 boundary elements.
	ErrDegenerateElement = errors.New("polytope: element has too few boundary elements")

	// ErrMalformedFace is returned by FaceToVertices when a face's
	// edge set does not close into a single simple cycle.
	ErrMalformedFace = errors.New("polytope: face boundary is not a single cycle")

	// ErrNoVertices is returned by Gravicenter on a polytope with no
	// vertex level or an empty one.
	ErrNoVertices = errors.New("polytope: no vertices")

	// ErrNoCircumcenter is returned by Circumradius when the vertices
	// admit no common equidistant point.
	ErrNoCircumcenter = errors.New("polytope: vertices are not concyclic")

	// ErrNotConverted is returned by geometric queries on a
	// SymmetryPolytope; call ToExplicit first.
	ErrNotConverted = errors.New("polytope: implicit representation; convert with ToExplicit")

	// ErrBadSeeds is returned by NewSymmetry when the seed vertices do
	// not line up with the flag classes.
	ErrBadSeeds = errors.New("polytope: seed vertices do not match flag classes")
)
