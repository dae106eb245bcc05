package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3" // driver "sqlite3" (cgo)
	_ "modernc.org/sqlite"          // driver "sqlite" (pure Go)

	"imprint-hq/imprint/pkg/fingerprint"
	"imprint-hq/imprint/pkg/sniff"
)

// SchemaVersion is the current fingerprint schema version.
const SchemaVersion = 1

// Schema creates the fingerprint tables and indexes. Timestamps are stored
// as Unix nanoseconds so both SQLite drivers round-trip them identically.
const Schema = `
CREATE TABLE IF NOT EXISTS fingerprints (
	path       TEXT PRIMARY KEY,
	id         TEXT NOT NULL,
	digest     TEXT NOT NULL,
	kind       TEXT NOT NULL,
	mime       TEXT NOT NULL,
	size       INTEGER NOT NULL,
	mod_time   INTEGER NOT NULL,
	scanned_at INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fingerprints_digest ON fingerprints(digest);
CREATE INDEX IF NOT EXISTS idx_fingerprints_kind ON fingerprints(kind);

CREATE TABLE IF NOT EXISTS schema_info (
	version INTEGER NOT NULL
);
`

// SQLiteConfig contains configuration for the SQLite storage backend.
type SQLiteConfig struct {
	// Path is the database file path.
	Path string

	// Driver selects the SQL driver: "sqlite3" (mattn, cgo) or "sqlite"
	// (modernc, pure Go). Default: "sqlite3".
	Driver string

	// MaxOpenConns is the maximum number of open connections.
	// Default: 10
	MaxOpenConns int

	// MaxIdleConns is the maximum number of idle connections.
	// Default: 5
	MaxIdleConns int

	// WALMode enables Write-Ahead Logging mode for better concurrency.
	// Default: true
	WALMode bool

	// BusyTimeout is the duration to wait when the database is locked.
	// Default: 5 seconds
	BusyTimeout time.Duration
}

// DefaultSQLiteConfig returns the default SQLite configuration.
func DefaultSQLiteConfig() *SQLiteConfig {
	return &SQLiteConfig{
		Path:         "data/fingerprints.db",
		Driver:       "sqlite3",
		MaxOpenConns: 10,
		MaxIdleConns: 5,
		WALMode:      true,
		BusyTimeout:  5 * time.Second,
	}
}

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db     *sql.DB
	config *SQLiteConfig
	logger *slog.Logger
}

// NewSQLiteStore opens (creating if needed) the database at the configured
// path and initializes the schema.
func NewSQLiteStore(config *SQLiteConfig) (*SQLiteStore, error) {
	if config == nil {
		config = DefaultSQLiteConfig()
	}
	if config.Driver == "" {
		config.Driver = "sqlite3"
	}
	if config.Driver != "sqlite3" && config.Driver != "sqlite" {
		return nil, fmt.Errorf("unknown sqlite driver %q (want \"sqlite3\" or \"sqlite\")", config.Driver)
	}

	logger := slog.Default().With("component", "fingerprint.storage.sqlite")

	db, err := sql.Open(config.Driver, config.Path)
	if err != nil {
		return nil, NewStorageError("sqlite", "open", err)
	}

	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)

	s := &SQLiteStore{
		db:     db,
		config: config,
		logger: logger,
	}

	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}

	logger.Info("sqlite store opened",
		"path", config.Path,
		"driver", config.Driver,
		"wal", config.WALMode,
	)

	return s, nil
}

// initialize sets up the database schema and enables WAL mode.
func (s *SQLiteStore) initialize() error {
	if s.config.WALMode {
		if _, err := s.db.Exec("PRAGMA journal_mode=WAL;"); err != nil {
			return NewStorageError("sqlite", "enable_wal", err)
		}
	}

	busyTimeoutMs := s.config.BusyTimeout.Milliseconds()
	if _, err := s.db.Exec(fmt.Sprintf("PRAGMA busy_timeout=%d;", busyTimeoutMs)); err != nil {
		return NewStorageError("sqlite", "set_busy_timeout", err)
	}

	if _, err := s.db.Exec(Schema); err != nil {
		return NewStorageError("sqlite", "create_schema", err)
	}

	var version int
	err := s.db.QueryRow("SELECT version FROM schema_info LIMIT 1").Scan(&version)
	switch {
	case err == sql.ErrNoRows:
		if _, err := s.db.Exec("INSERT INTO schema_info (version) VALUES (?)", SchemaVersion); err != nil {
			return NewStorageError("sqlite", "insert_schema_version", err)
		}
	case err != nil:
		return NewStorageError("sqlite", "get_schema_version", err)
	case version != SchemaVersion:
		return NewStorageError("sqlite", "schema_version_mismatch",
			fmt.Errorf("expected schema version %d, got %d", SchemaVersion, version))
	}

	return nil
}

// Upsert inserts or replaces the record for its path.
func (s *SQLiteStore) Upsert(ctx context.Context, rec *fingerprint.Record) error {
	if rec == nil {
		return NewStorageError("sqlite", "upsert", fmt.Errorf("record cannot be nil"))
	}
	if rec.Path == "" {
		return NewStorageError("sqlite", "upsert", fmt.Errorf("record path cannot be empty"))
	}

	query := `
		INSERT INTO fingerprints (path, id, digest, kind, mime, size, mod_time, scanned_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(path) DO UPDATE SET
			id = excluded.id,
			digest = excluded.digest,
			kind = excluded.kind,
			mime = excluded.mime,
			size = excluded.size,
			mod_time = excluded.mod_time,
			scanned_at = excluded.scanned_at
	`
	_, err := s.db.ExecContext(ctx, query,
		rec.Path, rec.ID, rec.Digest, rec.Kind.String(), rec.MIME,
		rec.Size, rec.ModTime.UnixNano(), rec.ScannedAt.UnixNano(),
	)
	if err != nil {
		return NewStorageError("sqlite", "upsert", err)
	}
	return nil
}

// Get returns the record for path, or ErrNotFound.
func (s *SQLiteStore) Get(ctx context.Context, path string) (*fingerprint.Record, error) {
	row := s.db.QueryRowContext(ctx,
		"SELECT path, id, digest, kind, mime, size, mod_time, scanned_at FROM fingerprints WHERE path = ?",
		path,
	)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, NewStorageError("sqlite", "get", err)
	}
	return rec, nil
}

// List returns records matching the options, ordered by path.
func (s *SQLiteStore) List(ctx context.Context, opts ListOptions) ([]*fingerprint.Record, error) {
	var conditions []string
	var args []interface{}

	if opts.Kind != "" {
		conditions = append(conditions, "kind = ?")
		args = append(args, opts.Kind)
	}
	if opts.PathPrefix != "" {
		conditions = append(conditions, "path LIKE ? ESCAPE '\\'")
		args = append(args, escapeLike(opts.PathPrefix)+"%")
	}

	query := "SELECT path, id, digest, kind, mime, size, mod_time, scanned_at FROM fingerprints"
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY path"
	if opts.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, opts.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, NewStorageError("sqlite", "list", err)
	}
	defer rows.Close()

	var records []*fingerprint.Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, NewStorageError("sqlite", "list_scan", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, NewStorageError("sqlite", "list_rows", err)
	}
	return records, nil
}

// Delete removes the record for path.
func (s *SQLiteStore) Delete(ctx context.Context, path string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM fingerprints WHERE path = ?", path); err != nil {
		return NewStorageError("sqlite", "delete", err)
	}
	return nil
}

// Count returns the number of stored records.
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM fingerprints").Scan(&count); err != nil {
		return 0, NewStorageError("sqlite", "count", err)
	}
	return count, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(row rowScanner) (*fingerprint.Record, error) {
	var rec fingerprint.Record
	var kind string
	var modTime, scannedAt int64

	err := row.Scan(&rec.Path, &rec.ID, &rec.Digest, &kind, &rec.MIME,
		&rec.Size, &modTime, &scannedAt)
	if err != nil {
		return nil, err
	}

	k, ok := sniff.ParseKind(kind)
	if !ok {
		return nil, fmt.Errorf("unrecognized content kind %q for %q", kind, rec.Path)
	}
	rec.Kind = k
	rec.ModTime = time.Unix(0, modTime)
	rec.ScannedAt = time.Unix(0, scannedAt)
	return &rec, nil
}

// escapeLike escapes LIKE wildcards so path prefixes match literally.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
