// Package store implements the graph database's four relations —
// positions, moves (edges), games, and duplicates — behind a transactional
// database/sql handle. It is grounded on the teacher's general approach to
// wrapping a third-party driver behind a narrow Go API (internal/config's
// own layering), adapted to mattn/go-sqlite3 since the teacher itself had
// no persistence layer to imitate directly.
package store

import (
	"context"
	"database/sql"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
)

// Store is a handle onto one graph database file. It is safe for
// concurrent readers; at most one writer may hold an open transaction at
// a time, which database/sql's own connection pool and SQLite's own
// locking already provide without extra bookkeeping here.
type Store struct {
	db       *sql.DB
	readOnly bool
	log      zerolog.Logger

	knownGameIDsOnce sync.Once
	knownGameIDs     map[string]struct{}
	knownGameIDsMu   sync.RWMutex
}

// Open opens (creating if necessary) the SQLite database at path, enables
// foreign-key enforcement on the connection per §5/§6 ("enable the
// foreign-key guard on every connection" — disabling it is itself a
// schema violation), and applies the schema if missing.
func Open(path string, readOnly bool, log zerolog.Logger) (*Store, error) {
	dsn := path + "?_foreign_keys=on"
	if readOnly {
		dsn += "&mode=ro"
	}
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, cgerrors.Wrap(err, "opening store")
	}
	db.SetMaxOpenConns(1) // one writer at a time; SQLite serializes anyway
	s := &Store{db: db, readOnly: readOnly, log: log}
	if !readOnly {
		if err := s.migrate(); err != nil {
			db.Close()
			return nil, err
		}
	}
	if err := s.verifyForeignKeysEnabled(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) verifyForeignKeysEnabled() error {
	var enabled int
	if err := s.db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return cgerrors.Wrap(err, "checking foreign_keys pragma")
	}
	if enabled == 0 {
		return cgerrors.Wrapf(cgerrors.ErrSchemaViolation, "foreign key enforcement is not active on this connection")
	}
	return nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// ReadOnly reports whether this handle rejects mutating operations.
func (s *Store) ReadOnly() bool {
	return s.readOnly
}

// withTx runs fn inside a single transaction, committing on success and
// rolling back on any error fn returns. All composite operations the
// spec requires to be atomic (insert-game-with-plies,
// insert-duplicate-and-remove-original, update-evaluation) go through
// this helper.
func (s *Store) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	if s.readOnly {
		return cgerrors.ErrReadOnly
	}
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return cgerrors.Wrap(err, "beginning transaction")
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return cgerrors.Wrap(err, "committing transaction")
	}
	return nil
}

// Reset wipes every row from all four relations, a destructive operation
// permitted only in non-read-only mode (§5: "the caller may wipe all
// tables... as a destructive reset in non-read-only mode").
func (s *Store) Reset(ctx context.Context) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		for _, table := range []string{"position_games", "position_extras", "edges", "duplicates", "games", "positions"} {
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return cgerrors.Wrapf(err, "resetting table %s", table)
			}
		}
		return nil
	})
}
