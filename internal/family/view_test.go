package family

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectInitial(t *testing.T) {
	v := Project(Default(), NewExpansion())

	assert.Equal(t, "Hosea Leke", v.Root.Name)
	assert.False(t, v.Root.Expanded)
	assert.Equal(t, GlyphCollapsed, v.Root.Indicator)
	assert.False(t, v.RootConnector)
	assert.Nil(t, v.Spouses)
}

func TestProjectRootExpanded(t *testing.T) {
	tree := Default()
	v := Project(tree, ToggleRoot(NewExpansion()))

	assert.Equal(t, GlyphExpanded, v.Root.Indicator)
	assert.True(t, v.RootConnector)
	require.Len(t, v.Spouses, 3)

	for i, card := range v.Spouses {
		assert.Equal(t, tree.Root.Spouses[i].ID, card.ID)
		assert.Equal(t, GlyphCollapsed, card.Indicator)
		assert.False(t, card.ChildConnector)
		assert.Nil(t, card.Children)
	}

	assert.Equal(t, "(Nee ebiesuwa)", v.Spouses[0].SecondaryLabel)
	assert.Empty(t, v.Spouses[2].SecondaryLabel)
}

func TestProjectReopenAfterCollapseShowsSpousesCollapsed(t *testing.T) {
	tree := Default()
	e := ToggleSpouse(tree, ToggleRoot(NewExpansion()), "wife_esther")
	require.True(t, Project(tree, e).Spouses[0].Expanded)

	closed := ToggleRoot(e)
	assert.Nil(t, Project(tree, closed).Spouses)

	v := Project(tree, ToggleRoot(closed))
	require.Len(t, v.Spouses, 3)
	assert.False(t, v.Spouses[0].Expanded)
	assert.Equal(t, GlyphCollapsed, v.Spouses[0].Indicator)
}

func TestProjectSingleSpouseOpen(t *testing.T) {
	tree := Default()
	v := Project(tree, ToggleSpouse(tree, ToggleRoot(NewExpansion()), "wife_esther"))

	for _, card := range v.Spouses {
		if card.ID == "wife_esther" {
			assert.True(t, card.Expanded)
			assert.Len(t, card.Children, 7)
			continue
		}
		assert.False(t, card.Expanded, card.ID)
		assert.Nil(t, card.Children, card.ID)
	}
}

func TestProjectChildOrder(t *testing.T) {
	tree := Default()
	e := ToggleRoot(NewExpansion())
	for _, id := range tree.SpouseIDs() {
		e = ToggleSpouse(tree, e, id)
	}

	v := Project(tree, e)
	for i, card := range v.Spouses {
		spouse := tree.Root.Spouses[i]
		require.Len(t, card.Children, len(spouse.Children), card.ID)
		for j, c := range spouse.Children {
			assert.Equal(t, c.Name, card.Children[j])
		}
	}

	assert.Equal(t, []string{
		"Gbenro Leke (M)",
		"Anu Leke (F)",
		"Gbotemi Leke (M)",
		"Kayode Leke (M)",
	}, v.Spouses[1].Children)
}

func TestProjectEmptyTree(t *testing.T) {
	tree := &Tree{Root: Root{ID: "solo", Name: "Solo"}}
	v := Project(tree, ToggleRoot(NewExpansion()))

	assert.NotNil(t, v.Spouses)
	assert.Empty(t, v.Spouses)
}
