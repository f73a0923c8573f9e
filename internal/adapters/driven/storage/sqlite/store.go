package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/wordfreq/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/wordfreq/internal/core/domain"
	"github.com/custodia-labs/wordfreq/internal/core/ports/driven"
	"github.com/custodia-labs/wordfreq/internal/logger"
)

// Ensure Store implements the interface.
var _ driven.FrequencyStore = (*Store)(nil)

// DefaultBatchSize is the number of increments committed per transaction.
const DefaultBatchSize = 10000

const upsertSQL = `
	INSERT INTO word_counts (word, count) VALUES (?, 1)
	ON CONFLICT(word) DO UPDATE SET count = count + 1
`

// Options configures a Store.
type Options struct {
	// BatchSize is the number of increments grouped into one transaction.
	// Values below 1 select DefaultBatchSize.
	BatchSize int
}

// Store is a SQLite-backed word counter.
type Store struct {
	db        *sql.DB
	path      string
	scratch   bool
	batchSize int

	// Open write batch, nil between batches.
	tx      *sql.Tx
	upsert  *sql.Stmt
	pending int
}

// Open opens or creates the database file at path. Existing counts are kept
// and further increments add to them.
func Open(ctx context.Context, path string, opts Options) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: database path is empty", domain.ErrInvalidInput)
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %w", domain.ErrStoreUnavailable, err)
	}

	return open(ctx, path, false, opts)
}

// OpenScratch creates a uniquely named database in dir, or in the system
// temporary directory if dir is empty. The file is removed on Close.
func OpenScratch(ctx context.Context, dir string, opts Options) (*Store, error) {
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "wordfreq-"+uuid.NewString()+".db")
	return open(ctx, path, true, opts)
}

func open(ctx context.Context, path string, scratch bool, opts Options) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)")
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %w", domain.ErrStoreUnavailable, err)
	}

	// The write batch holds the only connection; reads happen between batches.
	db.SetMaxOpenConns(1)

	batchSize := opts.BatchSize
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}

	s := &Store{
		db:        db,
		path:      path,
		scratch:   scratch,
		batchSize: batchSize,
	}

	if err := s.migrate(ctx, migrations.FS); err != nil {
		_ = s.discard()
		return nil, fmt.Errorf("%w: running migrations: %w", domain.ErrStoreUnavailable, err)
	}

	logger.Debug("sqlite store opened: %s (scratch=%t, batch=%d)", path, scratch, batchSize)
	return s, nil
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Increment adds one occurrence of key with an atomic UPSERT.
func (s *Store) Increment(ctx context.Context, key string) error {
	if key == "" {
		return domain.ErrInvalidInput
	}
	if err := s.begin(ctx); err != nil {
		return err
	}

	if _, err := s.upsert.ExecContext(ctx, key); err != nil {
		s.rollback()
		return fmt.Errorf("%w: incrementing %q: %w", domain.ErrStoreUnavailable, key, err)
	}

	s.pending++
	if s.pending >= s.batchSize {
		return s.flush()
	}
	return nil
}

// Get returns the count for key, or 0 if key is absent.
func (s *Store) Get(ctx context.Context, key string) (uint64, error) {
	if err := s.flush(); err != nil {
		return 0, err
	}

	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT count FROM word_counts WHERE word = ?", key).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("%w: reading %q: %w", domain.ErrStoreUnavailable, key, err)
	}
	return uint64(count), nil
}

// Iterate yields every entry in word order.
func (s *Store) Iterate(ctx context.Context) iter.Seq2[domain.WordCount, error] {
	return func(yield func(domain.WordCount, error) bool) {
		if err := s.flush(); err != nil {
			yield(domain.WordCount{}, err)
			return
		}

		rows, err := s.db.QueryContext(ctx, "SELECT word, count FROM word_counts ORDER BY word")
		if err != nil {
			yield(domain.WordCount{}, fmt.Errorf("%w: querying counts: %w", domain.ErrStoreUnavailable, err))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var wc domain.WordCount
			var count int64
			if err := rows.Scan(&wc.Word, &count); err != nil {
				yield(domain.WordCount{}, fmt.Errorf("%w: scanning count: %w", domain.ErrStoreUnavailable, err))
				return
			}
			wc.Count = uint64(count)
			if !yield(wc, nil) {
				return
			}
		}

		if err := rows.Err(); err != nil {
			yield(domain.WordCount{}, fmt.Errorf("%w: iterating counts: %w", domain.ErrStoreUnavailable, err))
		}
	}
}

// Close commits the open batch and closes the database. A scratch database
// is deleted.
func (s *Store) Close() error {
	flushErr := s.flush()
	return errors.Join(flushErr, s.discard())
}

// discard closes the database and removes scratch files without committing.
func (s *Store) discard() error {
	s.rollback()
	err := s.db.Close()
	if s.scratch {
		for _, suffix := range []string{"", "-wal", "-shm"} {
			if rmErr := os.Remove(s.path + suffix); rmErr != nil && !os.IsNotExist(rmErr) {
				err = errors.Join(err, rmErr)
			}
		}
	}
	return err
}

// begin opens a write batch if none is open.
func (s *Store) begin(ctx context.Context) error {
	if s.tx != nil {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: beginning batch: %w", domain.ErrStoreUnavailable, err)
	}
	stmt, err := tx.PrepareContext(ctx, upsertSQL)
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: preparing upsert: %w", domain.ErrStoreUnavailable, err)
	}

	s.tx = tx
	s.upsert = stmt
	return nil
}

// flush commits the open write batch, if any.
func (s *Store) flush() error {
	if s.tx == nil {
		return nil
	}

	pending := s.pending
	_ = s.upsert.Close()
	err := s.tx.Commit()
	s.tx, s.upsert, s.pending = nil, nil, 0
	if err != nil {
		return fmt.Errorf("%w: committing batch: %w", domain.ErrStoreUnavailable, err)
	}

	logger.Debug("sqlite batch committed: %d increments", pending)
	return nil
}

// rollback abandons the open write batch, if any.
func (s *Store) rollback() {
	if s.tx == nil {
		return
	}
	_ = s.upsert.Close()
	_ = s.tx.Rollback()
	s.tx, s.upsert, s.pending = nil, nil, 0
}

// migrate runs all pending migrations.
func (s *Store) migrate(ctx context.Context, fsys fs.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.ExecContext(ctx, `
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
	row := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
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
		// Extract version number (e.g., "001_word_counts.up.sql" -> 1)
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

		if err := s.apply(ctx, version, string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		logger.Debug("applied migration %s", name)
	}

	return nil
}

// apply executes one migration and records its version atomically.
func (s *Store) apply(ctx context.Context, version int, content string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, content); err != nil {
		_ = tx.Rollback()
		return err
	}
	if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
		_ = tx.Rollback()
		return err
	}
	return tx.Commit()
}
