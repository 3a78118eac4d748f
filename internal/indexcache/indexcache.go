// Package indexcache persists a compiled lexer index to an on-disk SQLite
// database, keyed by a content hash of the rule library and translations
// dictionary that produced it. This mirrors the save/load round trip of
// original_source/spectra_lexer/steno/index.py, adapted to SQL storage the
// way server/dao/sqlite persists game state with rezi rather than the
// original's flat JSON file.
package indexcache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/dekarrin/rezi"
	_ "modernc.org/sqlite"
)

// ErrNotFound is returned by Load when no cache entry matches the given key.
var ErrNotFound = errors.New("no cached index for this key")

// Store is an on-disk cache of compiled indexes.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) a cache database at file.
func Open(file string) (*Store, error) {
	db, err := sql.Open("sqlite", file)
	if err != nil {
		return nil, fmt.Errorf("open index cache: %w", err)
	}
	s := &Store{db: db}
	if err := s.init(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) init() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS compiled_index (
		key  TEXT NOT NULL PRIMARY KEY,
		data BLOB NOT NULL
	);`)
	if err != nil {
		return fmt.Errorf("init index cache schema: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// Key computes the cache key for a rule library file's bytes and a
// translations dictionary file's bytes: a content hash, so any change to
// either input invalidates whatever was cached under the old key.
func Key(ruleLibraryData, translationsData []byte) string {
	h := sha256.New()
	h.Write(ruleLibraryData)
	h.Write([]byte{0})
	h.Write(translationsData)
	return hex.EncodeToString(h.Sum(nil))
}

// Load retrieves a previously-saved compiled index for key. It returns
// ErrNotFound if nothing has been cached under that key.
func (s *Store) Load(ctx context.Context, key string) (map[string]map[string]string, error) {
	var data []byte
	row := s.db.QueryRowContext(ctx, `SELECT data FROM compiled_index WHERE key = ?;`, key)
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load cached index: %w", err)
	}

	index := make(map[string]map[string]string)
	n, err := rezi.DecBinary(data, &index)
	if err != nil {
		return nil, fmt.Errorf("decode cached index: %w", err)
	}
	if n != len(data) {
		return nil, fmt.Errorf("decode cached index: consumed %d/%d bytes", n, len(data))
	}
	return index, nil
}

// Save stores index under key, overwriting any entry already there.
func (s *Store) Save(ctx context.Context, key string, index map[string]map[string]string) error {
	data := rezi.EncBinary(index)

	_, err := s.db.ExecContext(ctx, `INSERT INTO compiled_index (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data;`, key, data)
	if err != nil {
		return fmt.Errorf("save cached index: %w", err)
	}
	return nil
}
