package database

import (
	"errors"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Mr-Dark-debug/familytree/internal/family"
)

// TestNewDBService verifies that the database initializes correctly
// with the embedded schema using an in-memory SQLite instance.
func TestNewDBService(t *testing.T) {
	svc, err := NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService(:memory:) failed: %v", err)
	}
	defer svc.Close()
}

// TestSaveAndLoadTree verifies the full content lifecycle:
// save → load → same tree, order preserved.
func TestSaveAndLoadTree(t *testing.T) {
	svc, err := NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	tree := family.Default()
	if err := svc.SaveTree(tree); err != nil {
		t.Fatalf("SaveTree failed: %v", err)
	}

	loaded, err := svc.LoadTree("father_hosea")
	if err != nil {
		t.Fatalf("LoadTree failed: %v", err)
	}

	if !reflect.DeepEqual(tree, loaded) {
		t.Errorf("loaded tree differs from saved tree:\nsaved:  %+v\nloaded: %+v", tree, loaded)
	}

	florence := loaded.Root.Spouses[1]
	want := []string{"Gbenro Leke (M)", "Anu Leke (F)", "Gbotemi Leke (M)", "Kayode Leke (M)"}
	for i, c := range florence.Children {
		if c.Name != want[i] {
			t.Errorf("child %d: expected %q, got %q", i, want[i], c.Name)
		}
	}
	if loaded.Root.Spouses[2].SecondaryLabel != "" {
		t.Errorf("expected empty secondary label, got %q", loaded.Root.Spouses[2].SecondaryLabel)
	}
}

// TestSaveTreeReplaces verifies that saving a tree with an existing
// root id replaces its content instead of merging.
func TestSaveTreeReplaces(t *testing.T) {
	svc, err := NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	if err := svc.SaveTree(family.Default()); err != nil {
		t.Fatalf("SaveTree failed: %v", err)
	}

	smaller := &family.Tree{Root: family.Root{
		ID:   "father_hosea",
		Name: "Hosea Leke",
		Spouses: []family.Spouse{
			{ID: "wife_florence", Name: "Florence Leke", Children: []family.Child{
				{ID: "child_florence_anu", Name: "Anu Leke (F)"},
			}},
		},
	}}
	if err := svc.SaveTree(smaller); err != nil {
		t.Fatalf("second SaveTree failed: %v", err)
	}

	loaded, err := svc.LoadTree("father_hosea")
	if err != nil {
		t.Fatalf("LoadTree failed: %v", err)
	}
	if len(loaded.Root.Spouses) != 1 {
		t.Fatalf("expected 1 spouse after replace, got %d", len(loaded.Root.Spouses))
	}
	if len(loaded.Root.Spouses[0].Children) != 1 {
		t.Errorf("expected 1 child after replace, got %d", len(loaded.Root.Spouses[0].Children))
	}
}

// TestLoadTreeNotFound verifies the sentinel error for unknown roots.
func TestLoadTreeNotFound(t *testing.T) {
	svc, err := NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	_, err = svc.LoadTree("missing")
	if !errors.Is(err, ErrTreeNotFound) {
		t.Errorf("expected ErrTreeNotFound, got %v", err)
	}
}

// TestListAndDeleteTrees verifies summaries and cascade deletion.
func TestListAndDeleteTrees(t *testing.T) {
	svc, err := NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	if err := svc.SaveTree(family.Default()); err != nil {
		t.Fatalf("SaveTree failed: %v", err)
	}
	solo := &family.Tree{Root: family.Root{ID: "solo", Name: "Adebayo Solo"}}
	if err := svc.SaveTree(solo); err != nil {
		t.Fatalf("SaveTree(solo) failed: %v", err)
	}

	trees, err := svc.ListTrees()
	if err != nil {
		t.Fatalf("ListTrees failed: %v", err)
	}
	if len(trees) != 2 {
		t.Fatalf("expected 2 trees, got %d", len(trees))
	}

	// Ordered by root name
	if trees[0].RootID != "solo" || trees[1].RootID != "father_hosea" {
		t.Errorf("unexpected order: %+v", trees)
	}
	if trees[0].Spouses != 0 || trees[0].Children != 0 {
		t.Errorf("expected empty solo tree, got %+v", trees[0])
	}
	if trees[1].Spouses != 3 || trees[1].Children != 17 {
		t.Errorf("expected 3 spouses and 17 children, got %+v", trees[1])
	}

	if err := svc.DeleteTree("father_hosea"); err != nil {
		t.Fatalf("DeleteTree failed: %v", err)
	}
	if _, err := svc.LoadTree("father_hosea"); !errors.Is(err, ErrTreeNotFound) {
		t.Errorf("expected ErrTreeNotFound after delete, got %v", err)
	}
	if err := svc.DeleteTree("father_hosea"); !errors.Is(err, ErrTreeNotFound) {
		t.Errorf("expected ErrTreeNotFound on second delete, got %v", err)
	}

	trees, err = svc.ListTrees()
	if err != nil {
		t.Fatalf("ListTrees failed: %v", err)
	}
	if len(trees) != 1 {
		t.Errorf("expected 1 tree after delete, got %d", len(trees))
	}
}

// TestSaveTreeDuplicateIDs verifies that a payload with duplicate ids
// fails as a whole and leaves nothing behind.
func TestSaveTreeDuplicateIDs(t *testing.T) {
	svc, err := NewDBService(":memory:")
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	defer svc.Close()

	bad := &family.Tree{Root: family.Root{
		ID:   "r",
		Name: "Root",
		Spouses: []family.Spouse{
			{ID: "dup", Name: "A"},
			{ID: "dup", Name: "B"},
		},
	}}
	if err := svc.SaveTree(bad); err == nil {
		t.Fatal("expected SaveTree to fail on duplicate ids")
	}

	if _, err := svc.LoadTree("r"); !errors.Is(err, ErrTreeNotFound) {
		t.Errorf("expected rollback to leave no tree, got %v", err)
	}
}

// TestFileDatabase verifies persistence across connections.
func TestFileDatabase(t *testing.T) {
	path := filepath.Join(t.TempDir(), "familytree.db")

	svc, err := NewDBService(path)
	if err != nil {
		t.Fatalf("NewDBService failed: %v", err)
	}
	if err := svc.SaveTree(family.Default()); err != nil {
		t.Fatalf("SaveTree failed: %v", err)
	}
	svc.Close()

	reopened, err := NewDBService(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer reopened.Close()

	tree, err := reopened.LoadTree("father_hosea")
	if err != nil {
		t.Fatalf("LoadTree after reopen failed: %v", err)
	}
	if tree.PeopleCount() != 21 {
		t.Errorf("expected 21 people, got %d", tree.PeopleCount())
	}
}
