package family

import "maps"

// Expansion is the view state of a tree: one flag for the root and one
// per spouse, keyed by spouse id. Children have no flag.
//
// An Expansion is a value. Transitions never mutate the receiver's map;
// they return a fresh Expansion so earlier snapshots stay comparable.
type Expansion struct {
	rootOpen bool
	open     map[string]bool
}

// NewExpansion returns the initial state: root and all spouses collapsed.
func NewExpansion() Expansion {
	return Expansion{}
}

// RootExpanded reports whether the spouse row is shown.
func (e Expansion) RootExpanded() bool {
	return e.rootOpen
}

// SpouseExpanded reports whether the spouse's child list is shown.
func (e Expansion) SpouseExpanded(id string) bool {
	return e.open[id]
}

// OpenSpouses returns the number of expanded spouses.
func (e Expansion) OpenSpouses() int {
	return len(e.open)
}

// Equal reports whether two snapshots hold the same flags.
func (e Expansion) Equal(other Expansion) bool {
	return e.rootOpen == other.rootOpen && maps.Equal(e.open, other.open)
}

// ToggleRoot flips the root flag and collapses every spouse,
// whatever their previous state.
func ToggleRoot(e Expansion) Expansion {
	return Expansion{rootOpen: !e.rootOpen}
}

// ToggleSpouse flips the flag of the root's spouse named by spouseID.
// An id that names no spouse of tree leaves the state unchanged. The
// root flag is never touched.
func ToggleSpouse(tree *Tree, e Expansion, spouseID string) Expansion {
	if _, ok := tree.Spouse(spouseID); !ok {
		return e
	}

	next := Expansion{rootOpen: e.rootOpen, open: make(map[string]bool, len(e.open)+1)}
	maps.Copy(next.open, e.open)

	// Only true entries are stored, so Equal sees a collapsed spouse
	// the same way whether it was never opened or opened and closed.
	if next.open[spouseID] {
		delete(next.open, spouseID)
	} else {
		next.open[spouseID] = true
	}
	if len(next.open) == 0 {
		next.open = nil
	}
	return next
}
