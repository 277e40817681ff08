// Package flags implements the flag / flag-class data model and the
// simplifier — the coset-reduction engine that turns a symmetry-based
// polytope description into explicit equivalence classes of elements.
//
// 🚀 What is a flag?
//
//	An opaque combinatorial handle: a small class number (which
//	incidence-chain this flag instance belongs to) paired with a
//	symmetry-group element (its "domain"). A flag class records, per
//	generator, how applying that generator moves a flag of this class
//	to a (possibly different) class and domain.
//
// 🚀 What is a simplifier?
//
//	A canonical-representative map over all flags of one
//	group × flag-class universe, refined incrementally:
//
//	  s0 := flags.NewIdentity(g, classes) // every flag maps to itself
//	  s1 := s0.Extend(0)                  // fold in generator 0
//	  s2 := s1.Extend(1)                  // … "same vertex+edge" …
//	  m  := s1.Merge(other)               // join of two simplifiers
//
//	Internally it is a union-find arena: flags are interned once into
//	slots ordered by the flag total order (class number first, then the
//	group comparator), parent pointers live in a flat []int, and unions
//	always redirect the order-greater representative to the
//	order-lesser one. The total order is well-founded over the finite
//	universe, so refinement terminates, and the canonical choice is the
//	global minimum reachable.
//
// ⚙️ Guarantees after Extend/Merge:
//
//   - Idempotence: Find(Find(f)) == Find(f) for every flag f.
//   - Minimality: Find(f) ≤ f, and ≤ every flag one folded generator
//     away from f, under the flag total order.
//
// Performance:
//
//   - NewIdentity: O(|G|·|C|·log(|G|·|C|)) interning.
//   - Extend/Merge: O(|G|·|C|·α) unions plus one O(log) interner
//     lookup per transformed flag.
//
// Simplifiers are built fresh per conversion call and are not safe for
// concurrent use.
package flags
