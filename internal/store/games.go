package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"strconv"
	"strings"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/ply"
	"github.com/balparda/chessgraph/internal/position"
	"github.com/balparda/chessgraph/internal/zobrist"
)

// GameRow is the public view of one game row.
type GameRow struct {
	ID            string
	EndHash       zobrist.Hash // zero value when the game is an error game
	Plies         []ply.Encoded
	Headers       map[string]string
	ErrorCategory cgerrors.Category
	OriginalText  string
	ErrorMessage  string
}

func encodePlies(plies []ply.Encoded) string {
	parts := make([]string, len(plies))
	for i, p := range plies {
		parts[i] = strconv.Itoa(int(p))
	}
	return strings.Join(parts, ",")
}

func decodePlies(s string) ([]ply.Encoded, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]ply.Encoded, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, cgerrors.Wrapf(cgerrors.ErrSchemaViolation, "malformed ply list %q", s)
		}
		out[i] = ply.Encoded(n)
	}
	return out, nil
}

func encodeHeaders(h map[string]string) (string, error) {
	if h == nil {
		h = map[string]string{}
	}
	raw, err := json.Marshal(h)
	if err != nil {
		return "", cgerrors.Wrap(err, "encoding headers")
	}
	return string(raw), nil
}

func decodeHeaders(s string) (map[string]string, error) {
	out := map[string]string{}
	if s == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(s), &out); err != nil {
		return nil, cgerrors.Wrap(err, "decoding headers")
	}
	return out, nil
}

// InsertGameOKWithTerminal implements the finalize step of §4.7 (ingest
// pipeline step 6) as a single transaction: it inserts the terminal
// position again with gameID attached (growing game_hashes) and inserts
// the ok game row, so a reader can never observe a game whose end-vertex
// lacks that game id (§5).
func (s *Store) InsertGameOKWithTerminal(ctx context.Context, gameID string, endHash zobrist.Hash, endFlags position.Flags, endExtras position.Extras, plies []ply.Encoded, headers map[string]string) error {
	headerJSON, err := encodeHeaders(headers)
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if err := s.insertPositionTx(ctx, tx, endHash, endFlags, endExtras, gameID); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO games(id, end_hash, plies, headers, error_category) VALUES (?, ?, ?, ?, 0)",
			gameID, endHash.String(), encodePlies(plies), headerJSON); err != nil {
			return cgerrors.Wrap(err, "inserting game row")
		}
		return nil
	})
}

// insertPositionTx is InsertPosition's body, shared by InsertPosition and
// the composite operations that must run in the caller's own transaction.
func (s *Store) insertPositionTx(ctx context.Context, tx *sql.Tx, hash zobrist.Hash, flags position.Flags, extras position.Extras, gameID string) error {
	var existingFlags int64
	err := tx.QueryRowContext(ctx, "SELECT flags FROM positions WHERE hash = ?", hash.String()).Scan(&existingFlags)
	switch {
	case err == sql.ErrNoRows:
		if _, err := tx.ExecContext(ctx, "INSERT INTO positions(hash, flags) VALUES (?, ?)", hash.String(), int64(flags)); err != nil {
			return cgerrors.Wrap(err, "inserting position")
		}
	case err != nil:
		return cgerrors.Wrap(err, "looking up position")
	default:
		if position.Flags(existingFlags) != flags {
			return cgerrors.Wrapf(cgerrors.ErrFlagsMismatch, "position %s: stored flags %d, presented %d", hash, existingFlags, flags)
		}
	}
	if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO position_extras(hash, extras) VALUES (?, ?)", hash.String(), int64(extras)); err != nil {
		return cgerrors.Wrap(err, "inserting position extras")
	}
	if gameID != "" {
		if _, err := tx.ExecContext(ctx, "INSERT OR IGNORE INTO position_games(hash, game_id) VALUES (?, ?)", hash.String(), gameID); err != nil {
			return cgerrors.Wrap(err, "linking position to game")
		}
	}
	return nil
}

// InsertGameError records a game that failed ingest, in its own
// transaction (§4.7 step 7). Categories `empty-game` and
// `non-standard-chess` are expected to be silent at the logging layer;
// this method still stores them, since "silent" governs logging, not
// persistence.
func (s *Store) InsertGameError(ctx context.Context, gameID string, headers map[string]string, category cgerrors.Category, originalText, message string) error {
	headerJSON, err := encodeHeaders(headers)
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO games(id, end_hash, plies, headers, error_category, original_text, error_message) VALUES (?, NULL, '', ?, ?, ?, ?)",
			gameID, headerJSON, int64(category), originalText, message)
		if err != nil {
			return cgerrors.Wrap(err, "inserting error game row")
		}
		return nil
	})
}

// GetGame returns the stored row for gameID, or ErrNotFound.
func (s *Store) GetGame(ctx context.Context, gameID string) (*GameRow, error) {
	var endHash, pliesStr, headerJSON sql.NullString
	var category int64
	var originalText, message sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT end_hash, plies, headers, error_category, original_text, error_message FROM games WHERE id = ?", gameID).
		Scan(&endHash, &pliesStr, &headerJSON, &category, &originalText, &message)
	if err == sql.ErrNoRows {
		return nil, cgerrors.ErrNotFound
	}
	if err != nil {
		return nil, cgerrors.Wrap(err, "looking up game")
	}

	row := &GameRow{ID: gameID, ErrorCategory: cgerrors.Category(category), OriginalText: originalText.String, ErrorMessage: message.String}
	if endHash.Valid && endHash.String != "" {
		h, err := zobrist.FromHex(endHash.String)
		if err != nil {
			return nil, err
		}
		row.EndHash = h
	}
	plies, err := decodePlies(pliesStr.String)
	if err != nil {
		return nil, err
	}
	row.Plies = plies
	headers, err := decodeHeaders(headerJSON.String)
	if err != nil {
		return nil, err
	}
	row.Headers = headers
	return row, nil
}

// StreamAllGames returns every row in the Game relation. Ordering is
// unspecified.
func (s *Store) StreamAllGames(ctx context.Context) ([]GameRow, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM games")
	if err != nil {
		return nil, cgerrors.Wrap(err, "listing games")
	}
	defer rows.Close()
	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, cgerrors.Wrap(err, "scanning game id")
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	out := make([]GameRow, 0, len(ids))
	for _, id := range ids {
		row, err := s.GetGame(ctx, id)
		if err != nil {
			return nil, err
		}
		out = append(out, *row)
	}
	return out, nil
}

// SetAllGameIDs returns the set of every known game id, the lazily loaded
// cache §9's "module-level mutable state" note describes: it lives for
// the lifetime of the store handle and is refreshed on each call here,
// leaving the decision of how often to refresh to the ingest pipeline
// (which calls this once at startup and then re-checks the live store
// per game inside its own transaction, per §4.7 step 1).
func (s *Store) SetAllGameIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id FROM games")
	if err != nil {
		return nil, cgerrors.Wrap(err, "listing game ids")
	}
	defer rows.Close()
	out := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, cgerrors.Wrap(err, "scanning game id")
		}
		out[id] = struct{}{}
	}
	s.knownGameIDsMu.Lock()
	s.knownGameIDs = out
	s.knownGameIDsMu.Unlock()
	return out, rows.Err()
}

// KnownGameID reports whether gameID is present in the cached known-ids
// set, loading it lazily on first use.
func (s *Store) KnownGameID(ctx context.Context, gameID string) (bool, error) {
	s.knownGameIDsMu.RLock()
	cache := s.knownGameIDs
	s.knownGameIDsMu.RUnlock()
	if cache == nil {
		var err error
		cache, err = s.SetAllGameIDs(ctx)
		if err != nil {
			return false, err
		}
	}
	_, ok := cache[gameID]
	return ok, nil
}

// PartitionOKVsError reports the count of ok games (error_category = 0)
// versus error games.
func (s *Store) PartitionOKVsError(ctx context.Context) (ok, errored int, err error) {
	err = s.db.QueryRowContext(ctx, "SELECT COUNT(*) FILTER (WHERE error_category = 0), COUNT(*) FILTER (WHERE error_category != 0) FROM games").
		Scan(&ok, &errored)
	if err != nil {
		return 0, 0, cgerrors.Wrap(err, "partitioning games")
	}
	return ok, errored, nil
}
