// Package fen reconstructs the FEN and move path leading to a stored
// position, by walking the graph backward from the target to the root
// one incoming edge at a time and then replaying forward to verify the
// path is genuine (C8). Grounded on the teacher's own rules.BoardToFEN /
// rules.NewBoardFromFEN pair (internal/rules/fen.go), which already does
// the board↔FEN conversion this package needs at both ends of the walk.
package fen

import (
	"context"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/pgntext"
	"github.com/balparda/chessgraph/internal/ply"
	"github.com/balparda/chessgraph/internal/rules"
	"github.com/balparda/chessgraph/internal/store"
	"github.com/balparda/chessgraph/internal/zobrist"
)

// Result is the reconstructed path to a target position.
type Result struct {
	FEN   string
	Board *pgntext.Board
	Plies []ply.Encoded
}

// Reconstruct walks backward from target to the root, then replays the
// collected plies forward from a fresh initial board, asserting every
// replayed move is legal and that the final board hashes to target.
func Reconstruct(ctx context.Context, s *store.Store, target zobrist.Hash) (Result, error) {
	root := zobrist.RootHash()

	var reversePlies []int
	current := target
	visited := map[zobrist.Hash]struct{}{current: {}}

	for current != root {
		from, p, ok, err := s.IncomingEdge(ctx, current)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			return Result{}, cgerrors.Wrapf(cgerrors.ErrNotFound, "position %s has no incoming edge and is not the root", current)
		}
		if _, seen := visited[from]; seen {
			return Result{}, cgerrors.Wrapf(cgerrors.ErrCycle, "backward walk from %s cycles back to %s", target, from)
		}
		visited[from] = struct{}{}
		reversePlies = append(reversePlies, p)
		current = from
	}

	plies := make([]int, len(reversePlies))
	for i := range reversePlies {
		plies[i] = reversePlies[len(reversePlies)-1-i]
	}

	board := rules.NewInitialBoard()
	encoded := make([]ply.Encoded, len(plies))
	for i, p := range plies {
		encoded[i] = ply.Encoded(p)
		move, err := decodeToMove(board, ply.Encoded(p))
		if err != nil {
			return Result{}, err
		}
		if !rules.IsLegalMove(board, move.FromCol, move.FromRank, move.ToCol, move.ToRank) {
			return Result{}, cgerrors.Wrapf(cgerrors.ErrInvalidMove, "replayed ply %d (%s) is illegal", i+1, move.Text)
		}
		if !rules.ApplyMove(board, move) {
			return Result{}, cgerrors.Wrapf(cgerrors.ErrInvalidMove, "replayed ply %d (%s) could not be applied", i+1, move.Text)
		}
	}

	finalHash := zobrist.ComputeHash(board)
	if finalHash != target {
		return Result{}, cgerrors.Wrapf(cgerrors.ErrSchemaViolation,
			"replayed path for %s lands on %s instead", target, finalHash)
	}

	return Result{FEN: rules.BoardToFEN(board), Board: board, Plies: encoded}, nil
}

// decodeToMove turns an encoded ply back into a pgntext.Move with concrete
// squares, leaving SAN disambiguation text empty since only From/To/Promoted
// matter to ApplyMove and IsLegalMove.
func decodeToMove(board *pgntext.Board, e ply.Encoded) (*pgntext.Move, error) {
	m, err := ply.Decode(e)
	if err != nil {
		return nil, err
	}
	fromFile, fromRank := ply.FileRank(m.From)
	toFile, toRank := ply.FileRank(m.To)

	move := &pgntext.Move{
		FromCol:  pgntext.ColBase + pgntext.Col(fromFile),
		FromRank: pgntext.RankBase + pgntext.Rank(fromRank),
		ToCol:    pgntext.ColBase + pgntext.Col(toFile),
		ToRank:   pgntext.RankBase + pgntext.Rank(toRank),
		Text:     m.String(),
	}
	if piece := pgntext.ExtractPiece(board.Get(move.FromCol, move.FromRank)); piece == pgntext.King {
		if delta := int(move.ToCol) - int(move.FromCol); delta == 2 {
			move.Class = pgntext.KingsideCastle
		} else if delta == -2 {
			move.Class = pgntext.QueensideCastle
		}
	}
	switch m.Promotion {
	case ply.Knight:
		move.PromotedPiece = pgntext.MakeColouredPiece(board.ToMove, pgntext.Knight)
	case ply.Bishop:
		move.PromotedPiece = pgntext.MakeColouredPiece(board.ToMove, pgntext.Bishop)
	case ply.Rook:
		move.PromotedPiece = pgntext.MakeColouredPiece(board.ToMove, pgntext.Rook)
	case ply.Queen:
		move.PromotedPiece = pgntext.MakeColouredPiece(board.ToMove, pgntext.Queen)
	}
	return move, nil
}
