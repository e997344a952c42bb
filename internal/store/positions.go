package store

import (
	"context"
	"database/sql"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/position"
	"github.com/balparda/chessgraph/internal/verdict"
	"github.com/balparda/chessgraph/internal/zobrist"
)

// PositionRow is the public view of one vertex.
type PositionRow struct {
	Hash    zobrist.Hash
	Flags   position.Flags
	Extras  map[position.Extras]struct{}
	Verdict *verdict.Verdict // nil if never evaluated
	GameIDs map[string]struct{}
}

// InsertPosition implements C6's insert_position: if hash is new, it is
// inserted with the given flags and (if gameID is non-empty) linked to
// that game. If hash already exists, flags must match the stored value
// (flags are immutable once set, §3) and extras/gameID are unioned in.
// Returns whether a new row was created.
func (s *Store) InsertPosition(ctx context.Context, hash zobrist.Hash, flags position.Flags, extras position.Extras, gameID string) (bool, error) {
	var isNew bool
	err := s.withTx(ctx, func(tx *sql.Tx) error {
		var ignored int64
		err := tx.QueryRowContext(ctx, "SELECT flags FROM positions WHERE hash = ?", hash.String()).Scan(&ignored)
		isNew = err == sql.ErrNoRows
		return s.insertPositionTx(ctx, tx, hash, flags, extras, gameID)
	})
	return isNew, err
}

// GetPosition returns the stored row for hash, or ErrNotFound.
func (s *Store) GetPosition(ctx context.Context, hash zobrist.Hash) (*PositionRow, error) {
	row := &PositionRow{Hash: hash, Extras: map[position.Extras]struct{}{}, GameIDs: map[string]struct{}{}}

	var flags int64
	var hasEval int
	var depth, move, mate, score sql.NullInt64
	err := s.db.QueryRowContext(ctx,
		"SELECT flags, has_eval, eval_depth, eval_move, eval_mate, eval_score FROM positions WHERE hash = ?",
		hash.String()).Scan(&flags, &hasEval, &depth, &move, &mate, &score)
	if err == sql.ErrNoRows {
		return nil, cgerrors.ErrNotFound
	}
	if err != nil {
		return nil, cgerrors.Wrap(err, "looking up position")
	}
	row.Flags = position.Flags(flags)
	if hasEval != 0 {
		row.Verdict = &verdict.Verdict{
			Depth: int(depth.Int64), BestMove: int(move.Int64), Mate: int(mate.Int64), Score: int(score.Int64),
		}
	}

	extraRows, err := s.db.QueryContext(ctx, "SELECT extras FROM position_extras WHERE hash = ?", hash.String())
	if err != nil {
		return nil, cgerrors.Wrap(err, "listing position extras")
	}
	defer extraRows.Close()
	for extraRows.Next() {
		var e int64
		if err := extraRows.Scan(&e); err != nil {
			return nil, cgerrors.Wrap(err, "scanning extras")
		}
		row.Extras[position.Extras(e)] = struct{}{}
	}

	gameRows, err := s.db.QueryContext(ctx, "SELECT game_id FROM position_games WHERE hash = ?", hash.String())
	if err != nil {
		return nil, cgerrors.Wrap(err, "listing position games")
	}
	defer gameRows.Close()
	for gameRows.Next() {
		var id string
		if err := gameRows.Scan(&id); err != nil {
			return nil, cgerrors.Wrap(err, "scanning game ids")
		}
		row.GameIDs[id] = struct{}{}
	}
	return row, nil
}

// StreamPositions returns positions matching the given filters, up to
// limit rows (0 means unlimited). Ordering is unspecified, per §4.6.
func (s *Store) StreamPositions(ctx context.Context, hasEval, hasGame *bool, limit int) ([]PositionRow, error) {
	query := "SELECT DISTINCT p.hash FROM positions p LEFT JOIN position_games g ON g.hash = p.hash WHERE 1=1"
	var args []interface{}
	if hasEval != nil {
		query += " AND p.has_eval = ?"
		args = append(args, boolToInt(*hasEval))
	}
	if hasGame != nil {
		if *hasGame {
			query += " AND g.game_id IS NOT NULL"
		} else {
			query += " AND g.game_id IS NULL"
		}
	}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, cgerrors.Wrap(err, "streaming positions")
	}
	defer rows.Close()

	var out []PositionRow
	for rows.Next() {
		var hex string
		if err := rows.Scan(&hex); err != nil {
			return nil, cgerrors.Wrap(err, "scanning position hash")
		}
		h, err := zobrist.FromHex(hex)
		if err != nil {
			return nil, err
		}
		full, err := s.GetPosition(ctx, h)
		if err != nil {
			return nil, err
		}
		out = append(out, *full)
	}
	return out, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// UpdateEvaluation attaches verdict to the position at hash. It fails
// silently (returns nil) in read-only mode, and requires a pre-existing
// row (§4.6).
func (s *Store) UpdateEvaluation(ctx context.Context, hash zobrist.Hash, v verdict.Verdict) error {
	if s.readOnly {
		return nil
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`UPDATE positions SET has_eval = 1, eval_depth = ?, eval_move = ?, eval_mate = ?, eval_score = ? WHERE hash = ?`,
			v.Depth, v.BestMove, v.Mate, v.Score, hash.String())
		if err != nil {
			return cgerrors.Wrap(err, "updating evaluation")
		}
		n, err := res.RowsAffected()
		if err != nil {
			return cgerrors.Wrap(err, "checking evaluation update")
		}
		if n == 0 {
			return cgerrors.Wrapf(cgerrors.ErrNotFound, "position %s has no row to evaluate", hash)
		}
		return nil
	})
}

// InsertEdge implements C6's insert_edge: (from, ply) → to. The primary
// key on (from_hash, ply) already enforces §3's invariant that no two
// edges may disagree on to-position for the same key; a conflicting
// insert surfaces as ErrSchemaViolation rather than silently overwriting.
func (s *Store) InsertEdge(ctx context.Context, from zobrist.Hash, p int, to zobrist.Hash) error {
	return s.withTx(ctx, func(tx *sql.Tx) error {
		return s.insertEdgeTx(ctx, tx, from, p, to)
	})
}

func (s *Store) insertEdgeTx(ctx context.Context, tx *sql.Tx, from zobrist.Hash, p int, to zobrist.Hash) error {
	var existingTo string
	err := tx.QueryRowContext(ctx, "SELECT to_hash FROM edges WHERE from_hash = ? AND ply = ?", from.String(), p).Scan(&existingTo)
	switch {
	case err == sql.ErrNoRows:
		if _, err := tx.ExecContext(ctx, "INSERT INTO edges(from_hash, ply, to_hash) VALUES (?, ?, ?)", from.String(), p, to.String()); err != nil {
			return cgerrors.Wrap(err, "inserting edge")
		}
		return nil
	case err != nil:
		return cgerrors.Wrap(err, "looking up edge")
	default:
		if existingTo != to.String() {
			return cgerrors.Wrapf(cgerrors.ErrSchemaViolation, "edge (%s, %d) already points to %s, not %s", from, p, existingTo, to)
		}
		return nil
	}
}

// EdgeRow is one outgoing edge from a position.
type EdgeRow struct {
	Ply int
	To  zobrist.Hash
}

// EdgesFrom returns all outgoing edges of hash.
func (s *Store) EdgesFrom(ctx context.Context, hash zobrist.Hash) ([]EdgeRow, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT ply, to_hash FROM edges WHERE from_hash = ?", hash.String())
	if err != nil {
		return nil, cgerrors.Wrap(err, "listing edges")
	}
	defer rows.Close()
	var out []EdgeRow
	for rows.Next() {
		var p int
		var toHex string
		if err := rows.Scan(&p, &toHex); err != nil {
			return nil, cgerrors.Wrap(err, "scanning edge")
		}
		to, err := zobrist.FromHex(toHex)
		if err != nil {
			return nil, err
		}
		out = append(out, EdgeRow{Ply: p, To: to})
	}
	return out, rows.Err()
}

// MultiGamePositions returns, for every position linked to two or more
// games, the set of linked game ids — the deduplicator's starting point
// (§4.9: "select positions whose game_hashes set has ≥2 elements").
func (s *Store) MultiGamePositions(ctx context.Context) (map[string][]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hash, game_id FROM position_games
		WHERE hash IN (SELECT hash FROM position_games GROUP BY hash HAVING COUNT(*) >= 2)`)
	if err != nil {
		return nil, cgerrors.Wrap(err, "listing multi-game positions")
	}
	defer rows.Close()
	out := make(map[string][]string)
	for rows.Next() {
		var hash, gameID string
		if err := rows.Scan(&hash, &gameID); err != nil {
			return nil, cgerrors.Wrap(err, "scanning multi-game position")
		}
		out[hash] = append(out[hash], gameID)
	}
	return out, rows.Err()
}

// IncomingEdge returns any one edge whose to_hash is hash — the FEN
// reconstructor's backward walk takes the first matching parent per step
// and tolerates arbitrary-but-legal paths (§4.8).
func (s *Store) IncomingEdge(ctx context.Context, hash zobrist.Hash) (zobrist.Hash, int, bool, error) {
	var fromHex string
	var p int
	err := s.db.QueryRowContext(ctx, "SELECT from_hash, ply FROM edges WHERE to_hash = ? LIMIT 1", hash.String()).Scan(&fromHex, &p)
	if err == sql.ErrNoRows {
		return zobrist.Hash{}, 0, false, nil
	}
	if err != nil {
		return zobrist.Hash{}, 0, false, cgerrors.Wrap(err, "looking up incoming edge")
	}
	from, err := zobrist.FromHex(fromHex)
	if err != nil {
		return zobrist.Hash{}, 0, false, err
	}
	return from, p, true, nil
}

// BranchingPositions returns positions with 2 or more outgoing edges,
// grouped by out-degree, per §4.6. When skipEvaluated is true, positions
// that already carry a verdict are excluded (useful for the worker pool
// to find candidates still needing analysis).
func (s *Store) BranchingPositions(ctx context.Context, skipEvaluated bool) (map[int]map[string]map[int]string, error) {
	query := `
		SELECT e.from_hash, e.ply, e.to_hash
		FROM edges e
		WHERE e.from_hash IN (
			SELECT from_hash FROM edges GROUP BY from_hash HAVING COUNT(*) >= 2
		)`
	if skipEvaluated {
		query += ` AND e.from_hash NOT IN (SELECT hash FROM positions WHERE has_eval = 1)`
	}

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, cgerrors.Wrap(err, "listing branching positions")
	}
	defer rows.Close()

	perFrom := make(map[string]map[int]string)
	for rows.Next() {
		var from, to string
		var p int
		if err := rows.Scan(&from, &p, &to); err != nil {
			return nil, cgerrors.Wrap(err, "scanning branching edge")
		}
		if perFrom[from] == nil {
			perFrom[from] = make(map[int]string)
		}
		perFrom[from][p] = to
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	out := make(map[int]map[string]map[int]string)
	for from, plies := range perFrom {
		degree := len(plies)
		if out[degree] == nil {
			out[degree] = make(map[string]map[int]string)
		}
		out[degree][from] = plies
	}
	return out, nil
}
