package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/casics/annotator/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/casics/annotator/internal/core/domain"
	"github.com/casics/annotator/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides the record and
// label store interfaces through wrapper types. It stands in for the two
// network document databases when running against a local snapshot.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified path.
// If dbPath is empty, defaults to ~/.annotator/data/annotator.db.
func NewStore(dbPath string) (*Store, error) {
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".annotator", "data", "annotator.db")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(dbPath), 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// RecordStore returns a RecordStore interface backed by this store.
func (s *Store) RecordStore() driven.RecordStore {
	return &recordStore{store: s}
}

// RecordWriter returns a RecordWriter interface backed by this store.
func (s *Store) RecordWriter() driven.RecordWriter {
	return &recordStore{store: s}
}

// LabelStore returns a LabelStore interface backed by this store.
func (s *Store) LabelStore() driven.LabelStore {
	return &labelStore{store: s}
}

// LabelWriter returns a LabelWriter interface backed by this store.
func (s *Store) LabelWriter() driven.LabelWriter {
	return &labelStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Record Store ====================

// recordStore implements driven.RecordStore and driven.RecordWriter.
type recordStore struct {
	store *Store
}

var (
	_ driven.RecordStore  = (*recordStore)(nil)
	_ driven.RecordWriter = (*recordStore)(nil)
)

// Annotated returns every record whose term list is non-empty, ordered by ID.
func (r *recordStore) Annotated(ctx context.Context) ([]domain.AnnotationRecord, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, owner, name, terms FROM repos
		WHERE terms != '[]' AND terms != ''
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecordSourceUnavailable, err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

// FindByTerm returns the records whose term list contains termID.
// Terms are JSON arrays, so candidate rows are narrowed with LIKE and
// matched precisely after decoding.
func (r *recordStore) FindByTerm(ctx context.Context, termID string) ([]domain.AnnotationRecord, error) {
	rows, err := r.store.db.QueryContext(ctx, `
		SELECT id, owner, name, terms FROM repos
		WHERE terms LIKE '%' || ? || '%'
		ORDER BY id
	`, termID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecordSourceUnavailable, err)
	}
	defer rows.Close()

	candidates, err := scanRecords(rows)
	if err != nil {
		return nil, err
	}

	var result []domain.AnnotationRecord
	for _, record := range candidates {
		for _, term := range record.Terms {
			if term == termID {
				result = append(result, record)
				break
			}
		}
	}
	return result, nil
}

// Save stores a record, replacing any existing record with the same ID.
func (r *recordStore) Save(ctx context.Context, record domain.AnnotationRecord) error {
	if record.ID == "" {
		return domain.ErrInvalidInput
	}

	terms := record.Terms
	if terms == nil {
		terms = []string{}
	}
	termsJSON, err := json.Marshal(terms)
	if err != nil {
		return fmt.Errorf("marshalling terms: %w", err)
	}

	_, err = r.store.db.ExecContext(ctx, `
		INSERT INTO repos (id, owner, name, terms)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			owner = excluded.owner,
			name = excluded.name,
			terms = excluded.terms
	`, record.ID, record.Owner, record.Name, string(termsJSON))
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrRecordSourceUnavailable, err)
	}
	return nil
}

// Exists reports whether a record with the given ID is present.
func (r *recordStore) Exists(ctx context.Context, id string) (bool, error) {
	var count int
	row := r.store.db.QueryRowContext(ctx, "SELECT COUNT(1) FROM repos WHERE id = ?", id)
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("%w: %v", domain.ErrRecordSourceUnavailable, err)
	}
	return count > 0, nil
}

// scanRecords reads annotation records from a result set.
func scanRecords(rows *sql.Rows) ([]domain.AnnotationRecord, error) {
	var result []domain.AnnotationRecord
	for rows.Next() {
		var record domain.AnnotationRecord
		var termsJSON string
		if err := rows.Scan(&record.ID, &record.Owner, &record.Name, &termsJSON); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrRecordSourceUnavailable, err)
		}
		if err := json.Unmarshal([]byte(termsJSON), &record.Terms); err != nil {
			return nil, fmt.Errorf("decoding terms for %s: %w", record.ID, err)
		}
		result = append(result, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRecordSourceUnavailable, err)
	}
	return result, nil
}

// ==================== Label Store ====================

// labelStore implements driven.LabelStore and driven.LabelWriter.
type labelStore struct {
	store *Store
}

var (
	_ driven.LabelStore  = (*labelStore)(nil)
	_ driven.LabelWriter = (*labelStore)(nil)
)

// Label returns the label for a term identifier.
func (l *labelStore) Label(ctx context.Context, termID string) (string, error) {
	var label string
	row := l.store.db.QueryRowContext(ctx, "SELECT label FROM terms WHERE id = ?", termID)
	if err := row.Scan(&label); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", domain.ErrTermNotFound
		}
		return "", fmt.Errorf("querying label for %s: %w", termID, err)
	}
	return label, nil
}

// SaveLabel stores a label for a term, replacing any existing one.
func (l *labelStore) SaveLabel(ctx context.Context, termID, label string) error {
	if termID == "" {
		return domain.ErrInvalidInput
	}
	_, err := l.store.db.ExecContext(ctx, `
		INSERT INTO terms (id, label) VALUES (?, ?)
		ON CONFLICT(id) DO UPDATE SET label = excluded.label
	`, termID, label)
	if err != nil {
		return fmt.Errorf("saving label for %s: %w", termID, err)
	}
	return nil
}
