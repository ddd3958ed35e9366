// Package family holds the family tree content, the expansion state
// that drives the collapsible view, and the pure projection from the
// two into a renderable view tree.
//
// Content and view state are kept apart: a Tree is built once from a
// payload and never changes, while an Expansion is a small immutable
// value keyed by node identifier that each transition replaces.
package family

import (
	"errors"
	"fmt"
)

// Child is a leaf of the tree. Name is free text and may embed
// annotations such as "(M)", "(Late)" or "(Married to Balogun)".
type Child struct {
	ID   string `yaml:"id" toml:"id"`
	Name string `yaml:"name" toml:"name"`
}

// Spouse is a second-level node attached to the root.
type Spouse struct {
	ID             string  `yaml:"id" toml:"id"`
	Name           string  `yaml:"name" toml:"name"`
	SecondaryLabel string  `yaml:"secondary_label,omitempty" toml:"secondary_label,omitempty"`
	Children       []Child `yaml:"children" toml:"children"`
}

// Root is the single top-level person of a tree.
type Root struct {
	ID      string   `yaml:"id" toml:"id"`
	Name    string   `yaml:"name" toml:"name"`
	Spouses []Spouse `yaml:"spouses" toml:"spouses"`
}

// Tree is the immutable content of a family tree.
type Tree struct {
	Root Root `yaml:"root" toml:"root"`
}

// Spouse returns the spouse of the root with the given identifier.
func (t *Tree) Spouse(id string) (Spouse, bool) {
	for _, s := range t.Root.Spouses {
		if s.ID == id {
			return s, true
		}
	}
	return Spouse{}, false
}

// SpouseIDs returns the spouse identifiers in display order.
func (t *Tree) SpouseIDs() []string {
	ids := make([]string, 0, len(t.Root.Spouses))
	for _, s := range t.Root.Spouses {
		ids = append(ids, s.ID)
	}
	return ids
}

// PeopleCount returns the number of nodes in the tree, root included.
func (t *Tree) PeopleCount() int {
	n := 1 + len(t.Root.Spouses)
	for _, s := range t.Root.Spouses {
		n += len(s.Children)
	}
	return n
}

// Validate lints a payload: every node needs an id and a name, and ids
// must be unique across the whole tree. The view itself never calls
// this; loaders and CLI commands do.
func (t *Tree) Validate() error {
	var errs []error
	seen := make(map[string]string)

	check := func(kind, id, name string) {
		if id == "" {
			errs = append(errs, fmt.Errorf("%s %q has no id", kind, name))
			return
		}
		if name == "" {
			errs = append(errs, fmt.Errorf("%s %s has no name", kind, id))
		}
		if prev, ok := seen[id]; ok {
			errs = append(errs, fmt.Errorf("duplicate id %s (%s and %s)", id, prev, kind))
			return
		}
		seen[id] = kind
	}

	check("root", t.Root.ID, t.Root.Name)
	for _, s := range t.Root.Spouses {
		check("spouse", s.ID, s.Name)
		for _, c := range s.Children {
			check("child", c.ID, c.Name)
		}
	}

	return errors.Join(errs...)
}
