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
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/lodgeworks/stayform/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/lodgeworks/stayform/internal/core/domain"
	"github.com/lodgeworks/stayform/internal/core/ports/driven"
)

// Store is a unified SQLite-based storage that provides access to the
// document and gap store interfaces through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.stayform/data/stayform.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".stayform", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "stayform.db")

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

// DocumentStore returns a DocumentStore interface backed by this store.
func (s *Store) DocumentStore() driven.DocumentStore {
	return &documentStore{store: s}
}

// GapStore returns a GapStore interface backed by this store.
func (s *Store) GapStore() driven.GapStore {
	return &gapStore{store: s}
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

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version,
		); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Document Store ====================

// documentStore implements driven.DocumentStore.
type documentStore struct {
	store *Store
}

var _ driven.DocumentStore = (*documentStore)(nil)

// Save stores or replaces a document.
func (s *documentStore) Save(ctx context.Context, doc *domain.Document) error {
	fieldsJSON, err := json.Marshal(doc.Fields)
	if err != nil {
		return fmt.Errorf("marshalling fields: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO documents (id, title, category, status, source, completeness, last_modified, fields)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			status = excluded.status,
			source = excluded.source,
			completeness = excluded.completeness,
			last_modified = excluded.last_modified,
			fields = excluded.fields
	`, doc.ID, doc.Title, string(doc.Category), string(doc.Status), doc.Source,
		doc.Completeness, doc.LastModified.UTC(), string(fieldsJSON))

	if err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

// Get retrieves a document by ID.
func (s *documentStore) Get(ctx context.Context, id string) (*domain.Document, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, title, category, status, source, completeness, last_modified, fields
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting document: %w", err)
	}
	return doc, nil
}

// Delete removes a document. Deleting an unknown ID is not an error.
func (s *documentStore) Delete(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx,
		"DELETE FROM documents WHERE id = ?", id,
	); err != nil {
		return fmt.Errorf("deleting document: %w", err)
	}
	return nil
}

// List returns all documents, most recently modified first.
func (s *documentStore) List(ctx context.Context) ([]domain.Document, error) {
	return s.list(ctx, `
		SELECT id, title, category, status, source, completeness, last_modified, fields
		FROM documents ORDER BY last_modified DESC, id
	`)
}

// ListByCategory returns one category's documents, most recently modified
// first.
func (s *documentStore) ListByCategory(
	ctx context.Context, category domain.Category,
) ([]domain.Document, error) {
	return s.list(ctx, `
		SELECT id, title, category, status, source, completeness, last_modified, fields
		FROM documents WHERE category = ? ORDER BY last_modified DESC, id
	`, string(category))
}

func (s *documentStore) list(ctx context.Context, query string, args ...any) ([]domain.Document, error) {
	rows, err := s.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing documents: %w", err)
	}
	defer rows.Close()

	var docs []domain.Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}
		docs = append(docs, *doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}
	return docs, nil
}

// scanner covers *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDocument(row scanner) (*domain.Document, error) {
	var (
		doc        domain.Document
		category   string
		status     string
		fieldsJSON string
	)
	if err := row.Scan(&doc.ID, &doc.Title, &category, &status, &doc.Source,
		&doc.Completeness, &doc.LastModified, &fieldsJSON); err != nil {
		return nil, err
	}

	doc.Category = domain.Category(category)
	doc.Status = domain.DocumentStatus(status)
	if err := json.Unmarshal([]byte(fieldsJSON), &doc.Fields); err != nil {
		return nil, fmt.Errorf("unmarshalling fields: %w", err)
	}
	return &doc, nil
}

// ==================== Gap Store ====================

// gapStore implements driven.GapStore.
type gapStore struct {
	store *Store
}

var _ driven.GapStore = (*gapStore)(nil)

const gapColumns = `id, question, question_theme, ai_response, frequency_description,
	status, priority, last_asked_at,
	suggested_category, suggested_section, suggested_subsection,
	confirmed_category, confirmed_section, confirmed_subsection,
	recommendation, transcript, resolved_at, resolved_by, resolution`

// Save stores or replaces a gap record. Replacing keeps the row's rowid, so
// listing by rowid preserves insertion order across updates.
func (s *gapStore) Save(ctx context.Context, gap *domain.KnowledgeGap) error {
	transcriptJSON, err := json.Marshal(gap.Transcript)
	if err != nil {
		return fmt.Errorf("marshalling transcript: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO knowledge_gaps (`+gapColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			question = excluded.question,
			question_theme = excluded.question_theme,
			ai_response = excluded.ai_response,
			frequency_description = excluded.frequency_description,
			status = excluded.status,
			priority = excluded.priority,
			last_asked_at = excluded.last_asked_at,
			suggested_category = excluded.suggested_category,
			suggested_section = excluded.suggested_section,
			suggested_subsection = excluded.suggested_subsection,
			confirmed_category = excluded.confirmed_category,
			confirmed_section = excluded.confirmed_section,
			confirmed_subsection = excluded.confirmed_subsection,
			recommendation = excluded.recommendation,
			transcript = excluded.transcript,
			resolved_at = excluded.resolved_at,
			resolved_by = excluded.resolved_by,
			resolution = excluded.resolution
	`, gap.ID, gap.Question, gap.QuestionTheme, gap.AIResponse, gap.FrequencyDescription,
		string(gap.Status), string(gap.Priority), nullTime(gap.LastAskedAt),
		string(gap.SuggestedCategory), gap.SuggestedSection, gap.SuggestedSubsection,
		string(gap.ConfirmedCategory), gap.ConfirmedSection, gap.ConfirmedSubsection,
		string(gap.Recommendation), string(transcriptJSON),
		nullTime(gap.ResolvedAt), gap.ResolvedBy, gap.Resolution)

	if err != nil {
		return fmt.Errorf("saving gap: %w", err)
	}
	return nil
}

// Get retrieves a gap by ID.
func (s *gapStore) Get(ctx context.Context, id string) (*domain.KnowledgeGap, error) {
	row := s.store.db.QueryRowContext(ctx,
		"SELECT "+gapColumns+" FROM knowledge_gaps WHERE id = ?", id)

	gap, err := scanGap(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("getting gap: %w", err)
	}
	return gap, nil
}

// List returns all gaps in insertion order.
func (s *gapStore) List(ctx context.Context) ([]domain.KnowledgeGap, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT "+gapColumns+" FROM knowledge_gaps ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("listing gaps: %w", err)
	}
	defer rows.Close()

	var gaps []domain.KnowledgeGap
	for rows.Next() {
		gap, err := scanGap(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning gap: %w", err)
		}
		gaps = append(gaps, *gap)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating gaps: %w", err)
	}
	return gaps, nil
}

func scanGap(row scanner) (*domain.KnowledgeGap, error) {
	var (
		gap                            domain.KnowledgeGap
		status, priority               string
		suggestedCat, confirmedCat     string
		recommendation, transcriptJSON string
		lastAsked, resolvedAt          sql.NullTime
	)
	if err := row.Scan(&gap.ID, &gap.Question, &gap.QuestionTheme, &gap.AIResponse,
		&gap.FrequencyDescription, &status, &priority, &lastAsked,
		&suggestedCat, &gap.SuggestedSection, &gap.SuggestedSubsection,
		&confirmedCat, &gap.ConfirmedSection, &gap.ConfirmedSubsection,
		&recommendation, &transcriptJSON,
		&resolvedAt, &gap.ResolvedBy, &gap.Resolution); err != nil {
		return nil, err
	}

	gap.Status = domain.GapStatus(status)
	gap.Priority = domain.PriorityLevel(priority)
	gap.SuggestedCategory = domain.Category(suggestedCat)
	gap.ConfirmedCategory = domain.Category(confirmedCat)
	gap.Recommendation = domain.RecommendationLevel(recommendation)
	if lastAsked.Valid {
		gap.LastAskedAt = lastAsked.Time
	}
	if resolvedAt.Valid {
		gap.ResolvedAt = resolvedAt.Time
	}
	if err := json.Unmarshal([]byte(transcriptJSON), &gap.Transcript); err != nil {
		return nil, fmt.Errorf("unmarshalling transcript: %w", err)
	}
	return &gap, nil
}

// nullTime maps the zero time to SQL NULL.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t.UTC()
}
