package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/libsearch/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/libsearch/internal/core/domain"
	"github.com/custodia-labs/libsearch/internal/core/ports/driven"
)

// Ensure Store and Loader implement the interface.
var (
	_ driven.CatalogLoader = (*Store)(nil)
	_ driven.CatalogLoader = (*Loader)(nil)
)

// Store is a SQLite-backed catalog.
type Store struct {
	db       *sql.DB
	path     string
	readOnly bool
}

// Open opens the database at path for writing, creating it and applying
// migrations as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}

	// Rollback journal rather than WAL so the file can later be opened with mode=ro.
	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, path: path}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// OpenReadOnly opens an existing database without write access.
func OpenReadOnly(path string) (*Store, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving database path: %w", err)
	}
	if _, err := os.Stat(abs); err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	dsn := url.URL{Scheme: "file", Path: abs, RawQuery: "mode=ro"}
	db, err := sql.Open("sqlite", dsn.String())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	return &Store{db: db, path: abs, readOnly: true}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
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

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_catalog.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
	}

	return nil
}

// Load reads the whole catalog in stored order.
func (s *Store) Load(ctx context.Context) (*domain.Catalog, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT d.name, doc.key, doc.type, doc.format, doc.size, doc.md5, doc.link,
		       doc.description, doc.archived_date, doc.author, doc.date, doc.region, doc.tags
		FROM documents doc
		JOIN domains d ON d.id = doc.domain_id
		ORDER BY d.id, doc.id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	b := domain.NewCatalogBuilder()
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, err
		}
		b.Add(doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return b.Build(), nil
}

func scanDocument(rows *sql.Rows) (domain.Document, error) {
	var (
		doc  domain.Document
		link sql.NullString
		tags string
	)
	err := rows.Scan(
		&doc.Domain, &doc.Key, &doc.Type, &doc.Format, &doc.Size, &doc.MD5, &link,
		&doc.Description, &doc.ArchivedDate, &doc.Author, &doc.Date, &doc.Region, &tags,
	)
	if err != nil {
		return domain.Document{}, fmt.Errorf("scanning document: %w", err)
	}

	if link.Valid {
		doc.Link = &link.String
	}
	if err := json.Unmarshal([]byte(tags), &doc.Tags); err != nil {
		return domain.Document{}, fmt.Errorf("decoding tags of %s/%s: %w", doc.Domain, doc.Key, err)
	}

	return doc, nil
}

// ErrReadOnly is returned when writing through a read-only store.
var ErrReadOnly = errors.New("catalog database is read-only")

// Replace swaps the stored catalog for the given one in a single transaction.
func (s *Store) Replace(ctx context.Context, catalog *domain.Catalog) error {
	if s.readOnly {
		return ErrReadOnly
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DELETE FROM documents"); err != nil {
		return fmt.Errorf("clearing documents: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM domains"); err != nil {
		return fmt.Errorf("clearing domains: %w", err)
	}

	insertDomain, err := tx.PrepareContext(ctx, "INSERT INTO domains (name) VALUES (?)")
	if err != nil {
		return fmt.Errorf("preparing domain insert: %w", err)
	}
	defer insertDomain.Close()

	insertDoc, err := tx.PrepareContext(ctx, `
		INSERT INTO documents
			(domain_id, key, type, format, size, md5, link,
			 description, archived_date, author, date, region, tags)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing document insert: %w", err)
	}
	defer insertDoc.Close()

	for _, d := range catalog.Domains() {
		res, err := insertDomain.ExecContext(ctx, d.Name)
		if err != nil {
			return fmt.Errorf("inserting domain %q: %w", d.Name, err)
		}
		domainID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("reading domain id: %w", err)
		}

		for i := range d.Documents {
			doc := &d.Documents[i]
			tags, err := json.Marshal(nonNilTags(doc.Tags))
			if err != nil {
				return fmt.Errorf("encoding tags of %s/%s: %w", d.Name, doc.Key, err)
			}

			var link sql.NullString
			if doc.Link != nil {
				link = sql.NullString{String: *doc.Link, Valid: true}
			}

			_, err = insertDoc.ExecContext(ctx,
				domainID, doc.Key, doc.Type, doc.Format, doc.Size, doc.MD5, link,
				doc.Description, doc.ArchivedDate, doc.Author, doc.Date, doc.Region, string(tags),
			)
			if err != nil {
				return fmt.Errorf("inserting document %s/%s: %w", d.Name, doc.Key, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing catalog: %w", err)
	}
	return nil
}

func nonNilTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}

// Loader loads a catalog from a database file, opening it read-only
// for the duration of the load.
type Loader struct {
	path string
}

// NewLoader creates a loader for the database at path.
func NewLoader(path string) *Loader {
	return &Loader{path: path}
}

// Load opens the database read-only, reads the catalog and closes it.
func (l *Loader) Load(ctx context.Context) (*domain.Catalog, error) {
	s, err := OpenReadOnly(l.path)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	return s.Load(ctx)
}
