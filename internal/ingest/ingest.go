// Package ingest drives the 7-step pipeline that turns one raw PGN game
// text into graph rows: computing its content-addressed id, normalizing
// and fixing its headers (C5), walking its plies (C4) to accumulate
// positions and edges, and finalizing or recording an error game (C6).
// It is grounded on the teacher's own per-game driver loop
// (internal/parser.ParseAllGames plus cmd/pgn-extract's game-by-game
// processing), generalized from "parse and print" into "parse, validate,
// and persist".
package ingest

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"

	"github.com/rs/zerolog"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/headers"
	"github.com/balparda/chessgraph/internal/pgniter"
	"github.com/balparda/chessgraph/internal/pgntext"
	"github.com/balparda/chessgraph/internal/ply"
	"github.com/balparda/chessgraph/internal/store"
)

// Result reports what happened to one game.
type Result struct {
	GameID        string
	AlreadyKnown  bool
	NewPositions  int
	Plies         int
	ErrorCategory cgerrors.Category // zero means ok
}

// Pipeline wires a store handle and logger into the per-game ingest
// operation. One Pipeline is reused across every game in a run so the
// store's known-game-id cache stays warm (§4.7 step 1).
type Pipeline struct {
	Store *store.Store
	Log   zerolog.Logger
}

// New returns a Pipeline over an already-open, writable store handle.
func New(s *store.Store, log zerolog.Logger) *Pipeline {
	return &Pipeline{Store: s, Log: log}
}

// GameID returns the content hash of rawText: the SHA-256 digest of the
// raw input bytes, hex-encoded to 64 characters (§4.1/§B).
func GameID(rawText string) string {
	sum := sha256.Sum256([]byte(rawText))
	return hex.EncodeToString(sum[:])
}

// errAlreadyKnown signals, from inside the transaction, that the game's
// id was committed by someone else between the lazy-cache check and this
// transaction opening. It never escapes Ingest.
var errAlreadyKnown = errors.New("game id already known")

// Ingest runs the pipeline for one parsed game and its raw source text.
// libraryErrored reports whether the upstream parser logged a diagnostic
// while producing game, per pgniter.Walk's contract.
func (p *Pipeline) Ingest(ctx context.Context, rawText string, game *pgntext.Game, libraryErrored bool) (Result, error) {
	gameID := GameID(rawText)
	res := Result{GameID: gameID}

	known, err := p.Store.KnownGameID(ctx, gameID)
	if err != nil {
		return res, err
	}
	if known {
		res.AlreadyKnown = true
		return res, nil
	}

	tags := headers.Normalize(game.Tags)

	var plies []ply.Encoded
	var lastPly pgniter.Ply
	var hadPly bool
	var newPositions int

	walkErr := p.Store.RunInTx(ctx, func(tx *sql.Tx) error {
		// Re-check inside the transaction per §4.7 step 1, since another
		// writer could have committed this id between the cache lookup
		// above and this transaction opening.
		exists, err := p.Store.GameExistsTx(ctx, tx, gameID)
		if err != nil {
			return err
		}
		if exists {
			return errAlreadyKnown
		}

		return pgniter.Walk(game, libraryErrored, func(pl pgniter.Ply) error {
			if pl.Index == 1 {
				// The starting position is never itself a Walk target, but the
				// first edge still needs a from_hash row to reference.
				if _, err := p.Store.InsertPositionTx(ctx, tx, pl.PrevHash, pl.PrevFlags, pl.PrevExtras, ""); err != nil {
					return err
				}
			}
			isNew, err := p.Store.InsertPositionTx(ctx, tx, pl.CurHash, pl.Flags, pl.Extras, "")
			if err != nil {
				return err
			}
			if err := p.Store.InsertEdgeTx(ctx, tx, pl.PrevHash, int(pl.Encoded), pl.CurHash); err != nil {
				return err
			}
			if isNew {
				newPositions++
			}
			plies = append(plies, pl.Encoded)
			lastPly = pl
			hadPly = true
			return nil
		})
	})

	switch {
	case errors.Is(walkErr, errAlreadyKnown):
		res.AlreadyKnown = true
		return res, nil
	case walkErr == nil:
		// fall through to the empty-game / finalize checks below.
	default:
		category := cgerrors.ClassifyError(walkErr)
		return p.recordError(ctx, gameID, tags, category, rawText, walkErr)
	}

	if !hadPly {
		return p.recordError(ctx, gameID, tags, cgerrors.CategoryEmptyGame, rawText, cgerrors.ErrEmptyGame)
	}

	result, err := headers.FixResult(tags, lastPly, hadPly, rawText)
	if err != nil {
		return p.recordError(ctx, gameID, tags, cgerrors.ClassifyError(err), rawText, err)
	}
	tags["result"] = result
	tags = headers.EnsureRoster(tags)

	if err := p.Store.InsertGameOKWithTerminal(ctx, gameID, lastPly.CurHash, lastPly.Flags, lastPly.Extras, plies, tags); err != nil {
		return res, err
	}

	res.NewPositions = newPositions
	res.Plies = len(plies)
	return res, nil
}

// recordError persists an error game in its own transaction (§4.7 step
// 7), and logs it unless the category is one of the high-volume expected
// ones.
func (p *Pipeline) recordError(ctx context.Context, gameID string, tags map[string]string, category cgerrors.Category, rawText string, cause error) (Result, error) {
	res := Result{GameID: gameID, ErrorCategory: category}
	if err := p.Store.InsertGameError(ctx, gameID, tags, category, rawText, cause.Error()); err != nil {
		return res, err
	}
	if !category.Silent() {
		p.Log.Warn().Str("game_id", gameID).Err(cause).Msg("game rejected during ingest")
	}
	return res, nil
}
