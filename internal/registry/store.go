package registry

import (
	"database/sql"

	_ "modernc.org/sqlite"

	cerrors "git.home.luguber.info/inful/crossref/internal/errors"
)

// Store persists a built Registry to SQLite so an index produced once can
// be reused across resolution runs.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) a registry store.
// Use ":memory:" for an in-memory database, or a file path for persistence.
func OpenStore(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, cerrors.StoreOpenError(dbPath, err)
	}
	store := &Store{db: db}
	if err := store.initialize(); err != nil {
		_ = db.Close() // Best effort cleanup on initialization error
		return nil, cerrors.StoreOpenError(dbPath, err)
	}
	return store, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS documents (
		docname TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		source_path TEXT NOT NULL DEFAULT ''
	);
	CREATE TABLE IF NOT EXISTS labels (
		name TEXT PRIMARY KEY,
		docname TEXT NOT NULL,
		anchor_id TEXT NOT NULL,
		display_text TEXT NOT NULL,
		anonymous INTEGER NOT NULL DEFAULT 0
	);
	CREATE INDEX IF NOT EXISTS idx_labels_docname ON labels(docname);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Save replaces the store contents with reg.
func (s *Store) Save(reg *Registry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return cerrors.StoreQueryError("begin", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, stmt := range []string{"DELETE FROM documents", "DELETE FROM labels"} {
		if _, err := tx.Exec(stmt); err != nil {
			return cerrors.StoreQueryError("clear", err)
		}
	}
	for _, docname := range reg.Documents() {
		if _, err := tx.Exec(
			"INSERT INTO documents (docname, title, source_path) VALUES (?, ?, ?)",
			docname, reg.DocumentTitle(docname), reg.SourcePath(docname),
		); err != nil {
			return cerrors.StoreQueryError("insert document", err)
		}
	}
	for name, entry := range reg.Labels() {
		if _, err := tx.Exec(
			"INSERT INTO labels (name, docname, anchor_id, display_text, anonymous) VALUES (?, ?, ?, ?, 0)",
			name, entry.Docname, entry.AnchorID, entry.Text,
		); err != nil {
			return cerrors.StoreQueryError("insert label", err)
		}
	}
	for name, ref := range reg.AnonLabels() {
		if _, ok := reg.LabelLookup(name); ok {
			continue // already written via the named-label row
		}
		if _, err := tx.Exec(
			"INSERT INTO labels (name, docname, anchor_id, display_text, anonymous) VALUES (?, ?, ?, '', 1)",
			name, ref.Docname, ref.AnchorID,
		); err != nil {
			return cerrors.StoreQueryError("insert anon label", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return cerrors.StoreQueryError("commit", err)
	}
	return nil
}

// Load reads the stored index back into a fresh Registry.
func (s *Store) Load() (*Registry, error) {
	reg := New()

	rows, err := s.db.Query("SELECT docname, title, source_path FROM documents")
	if err != nil {
		return nil, cerrors.StoreQueryError("select documents", err)
	}
	defer func() { _ = rows.Close() }()
	for rows.Next() {
		var docname, title, sourcePath string
		if err := rows.Scan(&docname, &title, &sourcePath); err != nil {
			return nil, cerrors.StoreQueryError("scan document", err)
		}
		reg.AddDocument(docname, title, sourcePath)
	}
	if err := rows.Err(); err != nil {
		return nil, cerrors.StoreQueryError("iterate documents", err)
	}

	labelRows, err := s.db.Query("SELECT name, docname, anchor_id, display_text, anonymous FROM labels")
	if err != nil {
		return nil, cerrors.StoreQueryError("select labels", err)
	}
	defer func() { _ = labelRows.Close() }()
	for labelRows.Next() {
		var name, docname, anchorID, text string
		var anonymous int
		if err := labelRows.Scan(&name, &docname, &anchorID, &text, &anonymous); err != nil {
			return nil, cerrors.StoreQueryError("scan label", err)
		}
		if anonymous != 0 {
			reg.AddAnonLabel(name, AnchorRef{Docname: docname, AnchorID: anchorID})
			continue
		}
		reg.AddLabel(name, LabelEntry{Docname: docname, AnchorID: anchorID, Text: text})
	}
	if err := labelRows.Err(); err != nil {
		return nil, cerrors.StoreQueryError("iterate labels", err)
	}

	return reg, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
