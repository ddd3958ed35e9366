// Package database provides the storage layer for familytree.
//
// It implements the Store interface using SQLite with WAL mode and
// foreign keys. Only tree content is persisted: names, identifiers,
// secondary labels and display order. Expansion state is view-only
// and never written here.
package database

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/Mr-Dark-debug/familytree/internal/family"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaFS embed.FS

// ErrTreeNotFound is returned when no stored tree has the requested root id.
var ErrTreeNotFound = errors.New("tree not found")

// Node kinds stored in the people table.
const (
	kindRoot   = "root"
	kindSpouse = "spouse"
	kindChild  = "child"
)

// Store defines the interface for tree content persistence.
type Store interface {
	// SaveTree persists a tree, replacing any stored tree with the same root id.
	SaveTree(tree *family.Tree) error
	// LoadTree rebuilds the tree stored under rootID.
	LoadTree(rootID string) (*family.Tree, error)
	// ListTrees returns a summary of every stored tree, ordered by root name.
	ListTrees() ([]TreeSummary, error)
	// DeleteTree removes a stored tree and all its people.
	DeleteTree(rootID string) error

	// Close gracefully shuts down the database connection.
	Close() error
}

// TreeSummary describes one stored tree.
type TreeSummary struct {
	RootID   string `json:"root_id"`
	RootName string `json:"root_name"`
	Spouses  int    `json:"spouses"`
	Children int    `json:"children"`
}

// ============================================================
// DBService Implementation
// ============================================================

// DBService implements the Store interface using SQLite.
type DBService struct {
	db   *sql.DB
	mu   sync.RWMutex
	path string

	stmtInsertTree   *sql.Stmt
	stmtInsertPerson *sql.Stmt
	stmtDeleteTree   *sql.Stmt
}

// NewDBService opens the database, initializes the schema and prepares
// the write statements.
//
// Use ":memory:" for an in-memory database (useful for testing).
func NewDBService(path string) (*DBService, error) {
	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_foreign_keys=ON", path)

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("opening database at %s: %w", path, err)
	}

	// One connection: SQLite has a single writer, and an in-memory
	// database only exists on the connection that created it.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	svc := &DBService{
		db:   db,
		path: path,
	}

	if err := svc.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	if err := svc.prepareStatements(); err != nil {
		db.Close()
		return nil, fmt.Errorf("preparing statements: %w", err)
	}

	return svc, nil
}

func (s *DBService) initSchema() error {
	schema, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return fmt.Errorf("reading embedded schema: %w", err)
	}

	if _, err := s.db.Exec(string(schema)); err != nil {
		return fmt.Errorf("executing schema: %w", err)
	}

	return nil
}

func (s *DBService) prepareStatements() error {
	var err error

	s.stmtInsertTree, err = s.db.Prepare(`INSERT INTO trees (root_id) VALUES (?)`)
	if err != nil {
		return fmt.Errorf("preparing InsertTree: %w", err)
	}

	s.stmtInsertPerson, err = s.db.Prepare(`
		INSERT INTO people (id, root_id, parent_id, kind, name, secondary_label, position)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing InsertPerson: %w", err)
	}

	s.stmtDeleteTree, err = s.db.Prepare(`DELETE FROM trees WHERE root_id = ?`)
	if err != nil {
		return fmt.Errorf("preparing DeleteTree: %w", err)
	}

	return nil
}

// SaveTree writes the whole tree in one transaction. An existing tree
// with the same root id is replaced.
func (s *DBService) SaveTree(tree *family.Tree) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rootID := tree.Root.ID

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning save transaction for %s: %w", rootID, err)
	}
	defer tx.Rollback() // No-op if committed

	if _, err := tx.Stmt(s.stmtDeleteTree).Exec(rootID); err != nil {
		return fmt.Errorf("clearing tree %s: %w", rootID, err)
	}
	if _, err := tx.Stmt(s.stmtInsertTree).Exec(rootID); err != nil {
		return fmt.Errorf("inserting tree %s: %w", rootID, err)
	}

	insert := tx.Stmt(s.stmtInsertPerson)
	if _, err := insert.Exec(rootID, rootID, nil, kindRoot, tree.Root.Name, nil, 0); err != nil {
		return fmt.Errorf("inserting root %s: %w", rootID, err)
	}

	for i, sp := range tree.Root.Spouses {
		var label *string
		if sp.SecondaryLabel != "" {
			label = &sp.SecondaryLabel
		}
		if _, err := insert.Exec(sp.ID, rootID, rootID, kindSpouse, sp.Name, label, i); err != nil {
			return fmt.Errorf("inserting spouse %s: %w", sp.ID, err)
		}
		for j, c := range sp.Children {
			if _, err := insert.Exec(c.ID, rootID, sp.ID, kindChild, c.Name, nil, j); err != nil {
				return fmt.Errorf("inserting child %s: %w", c.ID, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing tree %s: %w", rootID, err)
	}
	return nil
}

// LoadTree rebuilds a tree, restoring spouse and child order from the
// stored positions.
func (s *DBService) LoadTree(rootID string) (*family.Tree, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT id, parent_id, kind, name, secondary_label
		FROM people
		WHERE root_id = ?
		ORDER BY CASE kind WHEN 'root' THEN 0 WHEN 'spouse' THEN 1 ELSE 2 END, position ASC
	`, rootID)
	if err != nil {
		return nil, fmt.Errorf("querying tree %s: %w", rootID, err)
	}
	defer rows.Close()

	tree := &family.Tree{}
	found := false
	spouseIdx := make(map[string]int)

	for rows.Next() {
		var (
			id, kind, name string
			parentID       *string
			label          *string
		)
		if err := rows.Scan(&id, &parentID, &kind, &name, &label); err != nil {
			return nil, fmt.Errorf("scanning person row: %w", err)
		}

		switch kind {
		case kindRoot:
			tree.Root.ID = id
			tree.Root.Name = name
			found = true
		case kindSpouse:
			sp := family.Spouse{ID: id, Name: name}
			if label != nil {
				sp.SecondaryLabel = *label
			}
			spouseIdx[id] = len(tree.Root.Spouses)
			tree.Root.Spouses = append(tree.Root.Spouses, sp)
		case kindChild:
			if parentID == nil {
				continue
			}
			idx, ok := spouseIdx[*parentID]
			if !ok {
				continue
			}
			tree.Root.Spouses[idx].Children = append(tree.Root.Spouses[idx].Children,
				family.Child{ID: id, Name: name})
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("reading tree %s: %w", rootID, err)
	}

	if !found {
		return nil, fmt.Errorf("loading %s: %w", rootID, ErrTreeNotFound)
	}
	return tree, nil
}

// ListTrees returns summaries of stored trees, ordered by root name.
func (s *DBService) ListTrees() ([]TreeSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT r.root_id, r.name,
			COALESCE(SUM(CASE WHEN p.kind = 'spouse' THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN p.kind = 'child' THEN 1 ELSE 0 END), 0)
		FROM people r
		LEFT JOIN people p ON p.root_id = r.root_id AND p.kind != 'root'
		WHERE r.kind = 'root'
		GROUP BY r.root_id, r.name
		ORDER BY r.name ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("listing trees: %w", err)
	}
	defer rows.Close()

	var out []TreeSummary
	for rows.Next() {
		var ts TreeSummary
		if err := rows.Scan(&ts.RootID, &ts.RootName, &ts.Spouses, &ts.Children); err != nil {
			return nil, fmt.Errorf("scanning tree summary: %w", err)
		}
		out = append(out, ts)
	}
	return out, rows.Err()
}

// DeleteTree removes a stored tree. People rows go with it through the
// foreign key cascade.
func (s *DBService) DeleteTree(rootID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.stmtDeleteTree.Exec(rootID)
	if err != nil {
		return fmt.Errorf("deleting tree %s: %w", rootID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting tree %s: %w", rootID, err)
	}
	if n == 0 {
		return fmt.Errorf("deleting %s: %w", rootID, ErrTreeNotFound)
	}
	return nil
}

// Close closes the prepared statements and the connection pool.
func (s *DBService) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stmts := []*sql.Stmt{s.stmtInsertTree, s.stmtInsertPerson, s.stmtDeleteTree}
	for _, stmt := range stmts {
		if stmt != nil {
			stmt.Close()
		}
	}

	return s.db.Close()
}
