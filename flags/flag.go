package flags

import (
	"errors"

	"github.com/katalvlaran/polytope/symmetry"
)

// ErrBadClassTable indicates a malformed flag-class transition table:
// inconsistent generator counts, an out-of-range class number, or a nil
// transition function.
var ErrBadClassTable = errors.New("flags: malformed flag-class table")

// Flag pairs a class number with a symmetry-group element. Flags are
// value-like: produced, never destroyed, for the lifetime of one
// conversion run, with no shared mutable identity.
type Flag struct {
	Class  int
	Domain symmetry.Element
}

// Compare is the flag total order: class number first, then the group's
// element comparator. Every canonical-representative decision in this
// package reduces to this order.
func Compare(g symmetry.Group, a, b Flag) int {
	switch {
	case a.Class < b.Class:
		return -1
	case a.Class > b.Class:
		return 1
	default:
		return g.Compare(a.Domain, b.Domain)
	}
}

// Change is one element-change rule: applying a generator to a flag of
// the owning class yields a flag of class Class whose domain is
// Apply(group, domain).
type Change struct {
	Class int
	Apply func(g symmetry.Group, d symmetry.Element) symmetry.Element
}

// Class describes one flag class: a transition rule per generator.
// The slice index is the generator index; every class of one polytope
// must carry the same number of rules (the rank).
type Class struct {
	Changes []Change
}

// Change returns the rule for generator gen. Out-of-range gen is a
// programming error (slice bounds panic).
func (c Class) Change(gen int) Change { return c.Changes[gen] }

// RightMultiply builds the most common rule: stay in class and
// right-multiply the domain by the fixed transform t. Polytopes whose
// symmetry acts simply transitively on flags (one class) are described
// entirely by such rules.
func RightMultiply(class int, t symmetry.Element) Change {
	return Change{
		Class: class,
		Apply: func(g symmetry.Group, d symmetry.Element) symmetry.Element {
			return g.Apply(d, t)
		},
	}
}

// ValidateClasses checks a class table against a rank: every class has
// exactly rank rules, every rule names an in-range class and a non-nil
// transition. Malformed tables are precondition violations for the
// engine; this helper is for callers that assemble tables dynamically.
// Complexity: O(|classes|·rank).
func ValidateClasses(classes []Class, rank int) error {
	if len(classes) == 0 {
		return ErrBadClassTable
	}
	for _, c := range classes {
		if len(c.Changes) != rank {
			return ErrBadClassTable
		}
		for _, ch := range c.Changes {
			if ch.Class < 0 || ch.Class >= len(classes) || ch.Apply == nil {
				return ErrBadClassTable
			}
		}
	}
	return nil
}
