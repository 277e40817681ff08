// Package polytope is an in-memory toolkit for building and
// manipulating N-dimensional polytopes — either explicitly, as
// vertex/edge/face incidence lists, or implicitly, as the orbit of a
// symmetry group acting on a seed of vertices and abstract flags.
//
// The subpackages supply the machinery: vector (dense geometric
// vectors), symmetry (finite group implementations behind the Group
// capability interface), flags (the flag-simplification engine that
// powers conversion), and cycle (edge-soup → vertex-cycle ordering).
//
// 🚀 Explicit representation
//
//	A Polytope is an ordered sequence of element levels mirroring the
//	classic surface-mesh layout: level 0 holds geometric points, level
//	d (d ≥ 1) holds elements that are index-sets into level d−1. The
//	nullitope is the empty sequence; a point cloud has one level.
//	Geometric operations — Scale, Move, Gravicenter, Circumcenter,
//	Circumradius, FaceToVertices — act on this form.
//
// 🚀 Implicit representation
//
//	A SymmetryPolytope owns a reference to an external symmetry group,
//	a flag-class table, one seed vertex per class, and a rank. Its one
//	nontrivial operation is ToExplicit, which lowers it to the
//	incidence-list form: build the identity simplifier, fold generators
//	into an ascending and a descending chain, merge chains per
//	dimension to get element simplifiers, then materialize elements and
//	incidences in one deterministic scan of the group × class product.
//
// ⚙️ Error model:
//
//	Out-of-range element references and malformed face boundaries are
//	sentinel errors; a missing circumcenter is a normal geometric
//	outcome (ok=false / ErrNoCircumcenter); geometric queries on an
//	unconverted SymmetryPolytope return ErrNotConverted — convert
//	first. Dimension mismatches panic (programmer error).
//
// Performance:
//
//	ToExplicit is dominated by enumerating the group × class product
//	twice per dimension: O(rank·|G|·|C|) flag operations, each O(α)
//	amortized through union-find path compression.
package polytope
