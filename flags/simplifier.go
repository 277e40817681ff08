package flags

import (
	"github.com/emirpasic/gods/maps/treemap"

	"github.com/katalvlaran/polytope/symmetry"
)

// universe interns every flag of one group × class product exactly
// once. Slot numbering is ascending flag order, so comparing two slots
// compares two flags; all simplifiers derived from one NewIdentity call
// share the universe and stay mutually mergeable.
type universe struct {
	group   symmetry.Group
	classes []Class
	flags   []Flag       // slot → flag, ascending flag order
	slots   *treemap.Map // Flag → slot
}

func newUniverse(g symmetry.Group, classes []Class) *universe {
	u := &universe{group: g, classes: classes}
	u.slots = treemap.NewWith(func(a, b interface{}) int {
		return Compare(g, a.(Flag), b.(Flag))
	})
	for _, e := range g.Elements() {
		for ci := range classes {
			u.slots.Put(Flag{Class: ci, Domain: e}, -1)
		}
	}
	u.flags = make([]Flag, 0, u.slots.Size())
	u.slots.Each(func(k, _ interface{}) {
		u.flags = append(u.flags, k.(Flag))
	})
	for i, f := range u.flags {
		u.slots.Put(f, i)
	}
	return u
}

// slot resolves a flag to its arena slot. A flag outside the universe
// (unknown class, or a domain the group never issued) is a contract
// violation.
func (u *universe) slot(f Flag) int {
	v, ok := u.slots.Get(f)
	if !ok {
		panic("flags: flag outside the simplifier universe")
	}
	return v.(int)
}

// Simplifier is a quotient map over the universe's flags: each flag
// reduces to the order-least representative of its equivalence class
// under the generators folded in so far.
//
// Find performs union-find path compression, so lookups mutate internal
// parent pointers; the visible mapping never changes. Not safe for
// concurrent use.
type Simplifier struct {
	u      *universe
	parent []int
}

// NewIdentity builds the identity simplifier over the full
// group × flag-class product: every flag maps to itself.
// The class table is trusted (see ValidateClasses for callers that
// need the check).
// Complexity: O(|G|·|C|·log(|G|·|C|)).
func NewIdentity(g symmetry.Group, classes []Class) *Simplifier {
	u := newUniverse(g, classes)
	s := &Simplifier{u: u, parent: make([]int, len(u.flags))}
	for i := range s.parent {
		s.parent[i] = i
	}
	return s
}

// Size returns the number of flags in the universe.
func (s *Simplifier) Size() int { return len(s.parent) }

// find resolves slot i to its representative slot with path halving.
func (s *Simplifier) find(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i
}

// union joins the classes of slots a and b, keeping the order-least
// slot as representative. Slot order is flag order, so the canonical
// choice is the global minimum reachable — and since the order is
// well-founded over the finite universe, refinement terminates.
func (s *Simplifier) union(a, b int) {
	ra, rb := s.find(a), s.find(b)
	switch {
	case ra == rb:
	case ra < rb:
		s.parent[rb] = ra
	default:
		s.parent[ra] = rb
	}
}

// compress is the cleanup pass: after it, every entry points directly
// at its final representative.
func (s *Simplifier) compress() {
	for i := range s.parent {
		s.parent[i] = s.find(i)
	}
}

func (s *Simplifier) clone() *Simplifier {
	p := make([]int, len(s.parent))
	copy(p, s.parent)
	return &Simplifier{u: s.u, parent: p}
}

// Find returns the canonical representative of f's equivalence class.
// Complexity: O(log(|G|·|C|)) for the interner lookup plus O(α) chasing.
func (s *Simplifier) Find(f Flag) Flag {
	return s.u.flags[s.find(s.u.slot(f))]
}

// Index returns the stable canonical rank of f's representative: the
// representative's universe slot. Distinct equivalence classes have
// distinct indices, and indices order classes by their representatives.
func (s *Simplifier) Index(f Flag) int {
	return s.find(s.u.slot(f))
}

// IsRepresentative reports whether f is the canonical representative of
// its own class, i.e. Find(f) == f.
func (s *Simplifier) IsRepresentative(f Flag) bool {
	i := s.u.slot(f)
	return s.find(i) == i
}

// ClassCount returns the number of equivalence classes.
// Complexity: O(|G|·|C|).
func (s *Simplifier) ClassCount() int {
	n := 0
	for i := range s.parent {
		if s.find(i) == i {
			n++
		}
	}
	return n
}

// Each visits every flag of the universe in ascending flag order with
// its current representative.
func (s *Simplifier) Each(fn func(f, repr Flag)) {
	for i, f := range s.u.flags {
		fn(f, s.u.flags[s.find(i)])
	}
}

// Extend returns a new simplifier that additionally identifies every
// flag with its image under generator gen: for each flag f, the current
// representative of f is unioned with the current representative of
// f transformed by gen, order-lesser side winning. A final cleanup pass
// leaves the result fully path-compressed. The receiver is unchanged.
// Complexity: O(|G|·|C|·(α + log(|G|·|C|))).
func (s *Simplifier) Extend(gen int) *Simplifier {
	next := s.clone()
	for i := range next.parent {
		f := next.u.flags[i]
		ch := next.u.classes[f.Class].Change(gen)
		moved := Flag{Class: ch.Class, Domain: ch.Apply(next.u.group, f.Domain)}
		next.union(i, next.u.slot(moved))
	}
	next.compress()
	return next
}

// Merge returns the join of s and o: flags are equivalent in the result
// iff they are connected through equivalences of either input. Both
// sides are already-resolved representatives, so no generator is
// re-applied. The inputs must share a universe (i.e. descend from the
// same NewIdentity call); anything else is a programming error.
// Complexity: O(|G|·|C|·α).
func (s *Simplifier) Merge(o *Simplifier) *Simplifier {
	if o.u != s.u {
		panic("flags: merging simplifiers from different universes")
	}
	next := s.clone()
	for i := range next.parent {
		next.union(i, o.find(i))
	}
	next.compress()
	return next
}
