// Package symmetry defines the group capability interface the
// conversion engine consumes, together with three concrete finite
// groups: cyclic, dihedral and matrix-generated.
//
// 🚀 What is symmetry?
//
//	The flag engine never looks inside a group element. It only needs:
//	  • Identity()  — the neutral element
//	  • Compare(a,b) — a strict total order (canonical representative
//	    selection depends on it; a non-strict order breaks termination)
//	  • Elements()  — the finite, fixed enumeration that determines
//	    output ordering
//	  • Apply(e,t)  — right-multiplication e·t by a generator transform
//	  • Act(e,p)    — the geometric action on a point
//
//	Concrete groups implement this interface as plain structs; there is
//	no base polytope type to subclass.
//
// ⚙️ Usage:
//
//	g := symmetry.NewDihedral(4)          // symmetries of the square
//	rho0 := g.Reflection(0)               // mirror across the x-axis
//	id := g.Identity()
//	moved := g.Apply(id, rho0)            // id·ρ0
//	p := g.Act(moved, vector.From(1, 0))  // image of a point
//
// The matrix group closes an explicit generator set under
// multiplication with a breadth-first product walk, comparing elements
// entrywise on a tolerance grid so Compare stays a strict total order
// on the closed set.
package symmetry
