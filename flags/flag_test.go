package flags_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/polytope/flags"
	"github.com/katalvlaran/polytope/symmetry"
)

// TestCompare_ClassNumberFirst: the flag total order compares class
// numbers before consulting the group's element comparator.
func TestCompare_ClassNumberFirst(t *testing.T) {
	g, err := symmetry.NewCyclic(3)
	require.NoError(t, err)

	lowClassHighDomain := flags.Flag{Class: 0, Domain: g.Rotation(2)}
	highClassLowDomain := flags.Flag{Class: 1, Domain: g.Rotation(0)}
	assert.Equal(t, -1, flags.Compare(g, lowClassHighDomain, highClassLowDomain))

	sameClass := flags.Flag{Class: 0, Domain: g.Rotation(1)}
	assert.Equal(t, 1, flags.Compare(g, lowClassHighDomain, sameClass))
	assert.Zero(t, flags.Compare(g, sameClass, sameClass))
}

// TestValidateClasses covers all rejection paths of the table check.
func TestValidateClasses(t *testing.T) {
	g, err := symmetry.NewCyclic(4)
	require.NoError(t, err)

	ok := []flags.Class{{Changes: []flags.Change{
		flags.RightMultiply(0, g.Rotation(1)),
		flags.RightMultiply(0, g.Rotation(3)),
	}}}
	assert.NoError(t, flags.ValidateClasses(ok, 2))

	// Empty table.
	assert.ErrorIs(t, flags.ValidateClasses(nil, 2), flags.ErrBadClassTable)

	// Wrong generator count.
	assert.ErrorIs(t, flags.ValidateClasses(ok, 3), flags.ErrBadClassTable)

	// Out-of-range target class.
	bad := []flags.Class{{Changes: []flags.Change{
		flags.RightMultiply(5, g.Rotation(1)),
		flags.RightMultiply(0, g.Rotation(1)),
	}}}
	assert.ErrorIs(t, flags.ValidateClasses(bad, 2), flags.ErrBadClassTable)

	// Nil transition function.
	nilApply := []flags.Class{{Changes: []flags.Change{
		{Class: 0, Apply: nil},
		flags.RightMultiply(0, g.Rotation(1)),
	}}}
	assert.ErrorIs(t, flags.ValidateClasses(nilApply, 2), flags.ErrBadClassTable)
}

// TestRightMultiply wires the rule through a concrete group.
func TestRightMultiply(t *testing.T) {
	g, err := symmetry.NewCyclic(5)
	require.NoError(t, err)

	ch := flags.RightMultiply(0, g.Rotation(2))
	assert.Equal(t, 0, ch.Class)
	got := ch.Apply(g, g.Rotation(4))
	assert.Zero(t, g.Compare(g.Rotation(1), got), "4+2 mod 5 = 1")
}
