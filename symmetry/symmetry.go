package symmetry

import (
	"errors"

	"github.com/katalvlaran/polytope/vector"
)

// Sentinel errors for group construction.
var (
	// ErrBadOrder indicates a group order below 1 was requested.
	ErrBadOrder = errors.New("symmetry: group order must be at least 1")
	// ErrBadGenerator indicates a generator matrix of the wrong shape.
	ErrBadGenerator = errors.New("symmetry: generator has wrong dimensions")
	// ErrNotClosed indicates the generated group exceeded the configured
	// order limit before closing under multiplication.
	ErrNotClosed = errors.New("symmetry: generator closure exceeds order limit")
)

// Element is an opaque, copyable group element. Only the Group that
// issued an Element may interpret it; callers move Elements between a
// group's own methods and never inspect them.
type Element any

// Group is the capability interface consumed by the flag engine.
//
// Compare must be a strict total order over the group's elements (it
// drives canonical-representative selection and guarantees termination
// of the union steps). Elements must return a finite sequence in a
// fixed order; that order determines the final vertex and element
// numbering of a conversion.
type Group interface {
	// Identity returns the neutral element.
	// Complexity: O(1).
	Identity() Element

	// Compare returns -1, 0 or +1 ordering a against b.
	// Passing elements from a different group is a programming error.
	Compare(a, b Element) int

	// Elements enumerates every element in a fixed, deterministic order.
	// Complexity: O(|G|); implementations may return an internal slice,
	// callers must not mutate it.
	Elements() []Element

	// Apply returns the product e·t (right-multiplication by the
	// generator transform t).
	Apply(e, t Element) Element

	// Act returns the image of point p under element e, as a new vector.
	Act(e Element, p vector.Vector) vector.Vector
}
