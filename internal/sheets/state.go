package sheets

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// StateDB remembers the hash of the last exported sheet of each program.
type StateDB struct {
	db *sql.DB
}

// OpenStateDB opens (or creates) the SQLite state database at dir/sheets.db.
func OpenStateDB(dir string) (*StateDB, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating state dir %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dir, "sheets.db"))
	if err != nil {
		return nil, fmt.Errorf("opening state db: %w", err)
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS exported_sheets (
		program_id  TEXT PRIMARY KEY,
		file        TEXT NOT NULL,
		hash        TEXT NOT NULL,
		exported_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("creating state table: %w", err)
	}

	return &StateDB{db: db}, nil
}

// IsCurrent reports whether the program's sheet was last exported to file
// with the same hash.
func (s *StateDB) IsCurrent(programID uuid.UUID, file, hash string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM exported_sheets WHERE program_id = ? AND file = ? AND hash = ?`,
		programID.String(), file, hash,
	).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// MarkExported records a successful export.
func (s *StateDB) MarkExported(programID uuid.UUID, file, hash string) error {
	_, err := s.db.Exec(
		`INSERT OR REPLACE INTO exported_sheets (program_id, file, hash) VALUES (?, ?, ?)`,
		programID.String(), file, hash,
	)
	return err
}

// Close closes the state database.
func (s *StateDB) Close() error {
	return s.db.Close()
}
