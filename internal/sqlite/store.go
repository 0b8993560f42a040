// Package sqlite implements the persistent store for recipes,
// ingredients, their associations, and pending-unknown records.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/ftambara/what-to-cook/internal/stem"
	"github.com/ftambara/what-to-cook/pkg/types"
)

// DBFileName is the database file created inside the data directory.
const DBFileName = "recipes.db"

// ErrStemmerDrift is returned by Open when the database was built under
// a different stemming language or algorithm than the one configured.
// Reopening such a database would silently reinterpret every stored
// association, so it is refused instead.
var ErrStemmerDrift = errors.New("database was stemmed with a different algorithm")

// Store owns the relational schema and the single shared connection.
// All access is synchronous; embedding in a multi-threaded host requires
// one Store per worker or external serialization.
type Store struct {
	db      *sql.DB
	stemmer *stem.Stemmer
}

// Open creates the data directory if needed, opens (or initializes) the
// database, and verifies the pinned stemming transform.
func Open(config types.Config, stemmer *stem.Stemmer) (*Store, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	dbPath := filepath.Join(config.DataDir, DBFileName)
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Single connection: the schema invariants are not safe under
	// unguarded concurrent writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return nil, fmt.Errorf("initializing schema: %w", err)
		}
	}

	s := &Store{db: db, stemmer: stemmer}
	if err := s.checkStemmerPin(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database connection. Idempotent.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	Exec(query string, args ...any) (sql.Result, error)
}

func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}

// checkStemmerPin records the stemming transform on first open and
// rejects a mismatched one on later opens.
func (s *Store) checkStemmerPin() error {
	var algo string
	err := s.db.QueryRow(
		"SELECT value FROM meta WHERE key = ?", metaKeyStemAlgo,
	).Scan(&algo)
	if isNoRows(err) {
		_, err = s.db.Exec(
			"INSERT INTO meta (key, value) VALUES (?, ?), (?, ?)",
			metaKeyStemAlgo, s.stemmer.Algorithm(),
			metaKeyStemLang, s.stemmer.Language(),
		)
		if err != nil {
			return fmt.Errorf("pinning stemmer metadata: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading stemmer metadata: %w", err)
	}
	if algo != s.stemmer.Algorithm() {
		return fmt.Errorf("%w: database has %q, configured %q",
			ErrStemmerDrift, algo, s.stemmer.Algorithm())
	}
	return nil
}
