package store

import (
	"context"
	"database/sql"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/ply"
	"github.com/balparda/chessgraph/internal/position"
	"github.com/balparda/chessgraph/internal/zobrist"
)

// RunInTx runs fn inside a single transaction, for callers (the ingest
// pipeline) that must span several lower-level operations atomically —
// per §4.7, the whole per-ply accumulation loop plus the step-6 finalize
// is one transaction, and per §7 an error-game row is inserted in a
// fresh transaction of its own after the first one rolls back.
func (s *Store) RunInTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	return s.withTx(ctx, fn)
}

// InsertPositionTx is InsertPosition's body, exposed for composite
// operations (the ingest pipeline) that must batch several position and
// edge inserts into one caller-owned transaction. Returns whether a new
// row was created, the same as InsertPosition.
func (s *Store) InsertPositionTx(ctx context.Context, tx *sql.Tx, hash zobrist.Hash, flags position.Flags, extras position.Extras, gameID string) (bool, error) {
	var ignored int64
	queryErr := tx.QueryRowContext(ctx, "SELECT flags FROM positions WHERE hash = ?", hash.String()).Scan(&ignored)
	if queryErr != nil && queryErr != sql.ErrNoRows {
		return false, cgerrors.Wrap(queryErr, "checking position existence")
	}
	isNew := queryErr == sql.ErrNoRows
	if err := s.insertPositionTx(ctx, tx, hash, flags, extras, gameID); err != nil {
		return false, err
	}
	return isNew, nil
}

// InsertEdgeTx is InsertEdge's body, exposed for the same reason.
func (s *Store) InsertEdgeTx(ctx context.Context, tx *sql.Tx, from zobrist.Hash, p int, to zobrist.Hash) error {
	return s.insertEdgeTx(ctx, tx, from, p, to)
}

// GameExistsTx reports, within tx, whether gameID already has a row in
// the Game relation — the race-avoiding re-check §4.7 step 1 requires
// inside the transaction, after the lazily-cached known-ids set has
// already been consulted outside of it.
func (s *Store) GameExistsTx(ctx context.Context, tx *sql.Tx, gameID string) (bool, error) {
	var ignored string
	err := tx.QueryRowContext(ctx, "SELECT id FROM games WHERE id = ?", gameID).Scan(&ignored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, cgerrors.Wrap(err, "checking game existence")
	}
	return true, nil
}

// InsertGameRowTx inserts the ok game row within tx, the second half of
// step 6's finalize (the first half is an InsertPositionTx call for the
// terminal vertex with gameID attached).
func (s *Store) InsertGameRowTx(ctx context.Context, tx *sql.Tx, gameID string, endHash zobrist.Hash, plies []ply.Encoded, headers map[string]string) error {
	headerJSON, err := encodeHeaders(headers)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx,
		"INSERT INTO games(id, end_hash, plies, headers, error_category) VALUES (?, ?, ?, ?, 0)",
		gameID, endHash.String(), encodePlies(plies), headerJSON); err != nil {
		return cgerrors.Wrap(err, "inserting game row")
	}
	return nil
}
