package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpansionIsCollapsed(t *testing.T) {
	tree := Default()
	e := NewExpansion()

	assert.False(t, e.RootExpanded())
	for _, id := range tree.SpouseIDs() {
		assert.False(t, e.SpouseExpanded(id), id)
	}
}

func TestToggleRootCollapsesEverySpouse(t *testing.T) {
	tree := Default()

	e := ToggleRoot(NewExpansion())
	e = ToggleSpouse(tree, e, "wife_esther")
	e = ToggleSpouse(tree, e, "wife_ibironke")
	require.True(t, e.SpouseExpanded("wife_esther"))
	require.Equal(t, 2, e.OpenSpouses())

	closed := ToggleRoot(e)
	assert.False(t, closed.RootExpanded())
	assert.Zero(t, closed.OpenSpouses())

	reopened := ToggleRoot(closed)
	assert.True(t, reopened.RootExpanded())
	for _, id := range tree.SpouseIDs() {
		assert.False(t, reopened.SpouseExpanded(id), id)
	}
}

func TestToggleRootTwiceRestoresRootFlag(t *testing.T) {
	e := NewExpansion()
	assert.Equal(t, e.RootExpanded(), ToggleRoot(ToggleRoot(e)).RootExpanded())
}

func TestToggleSpouseOnlyTouchesTarget(t *testing.T) {
	tree := Default()
	e := ToggleRoot(NewExpansion())

	next := ToggleSpouse(tree, e, "wife_esther")

	assert.True(t, next.RootExpanded())
	assert.True(t, next.SpouseExpanded("wife_esther"))
	assert.False(t, next.SpouseExpanded("wife_florence"))
	assert.False(t, next.SpouseExpanded("wife_ibironke"))
}

func TestToggleSpouseUnknownIDIsNoop(t *testing.T) {
	tree := Default()
	e := ToggleSpouse(tree, ToggleRoot(NewExpansion()), "wife_florence")

	next := ToggleSpouse(tree, e, "nonexistent_id")
	assert.True(t, next.Equal(e))
	assert.Equal(t, e, next)
}

func TestToggleSpouseChildIDIsNoop(t *testing.T) {
	tree := Default()
	e := ToggleRoot(NewExpansion())

	assert.True(t, ToggleSpouse(tree, e, "child_florence_anu").Equal(e))
	assert.True(t, ToggleSpouse(tree, e, "father_hosea").Equal(e))
}

func TestToggleSpouseRoundTrip(t *testing.T) {
	tree := Default()
	base := ToggleSpouse(tree, ToggleRoot(NewExpansion()), "wife_ibironke")

	for _, id := range tree.SpouseIDs() {
		t.Run(id, func(t *testing.T) {
			twice := ToggleSpouse(tree, ToggleSpouse(tree, base, id), id)
			assert.True(t, twice.Equal(base))
			assert.Equal(t, base, twice)
		})
	}

	initial := ToggleRoot(NewExpansion())
	assert.Equal(t, initial, ToggleSpouse(tree, ToggleSpouse(tree, initial, "wife_esther"), "wife_esther"))
}

func TestTransitionsDoNotMutateReceiver(t *testing.T) {
	tree := Default()
	before := ToggleSpouse(tree, ToggleRoot(NewExpansion()), "wife_esther")

	_ = ToggleSpouse(tree, before, "wife_florence")
	_ = ToggleSpouse(tree, before, "wife_esther")
	_ = ToggleRoot(before)

	assert.True(t, before.RootExpanded())
	assert.True(t, before.SpouseExpanded("wife_esther"))
	assert.False(t, before.SpouseExpanded("wife_florence"))
}

func TestToggleSpouseWhileRootCollapsed(t *testing.T) {
	tree := Default()

	e := ToggleSpouse(tree, NewExpansion(), "wife_esther")
	assert.False(t, e.RootExpanded())
	assert.True(t, e.SpouseExpanded("wife_esther"))

	// The flag is real but the row stays absent until the root opens,
	// and opening the root resets it.
	assert.Nil(t, Project(tree, e).Spouses)
	assert.False(t, ToggleRoot(e).SpouseExpanded("wife_esther"))
}
