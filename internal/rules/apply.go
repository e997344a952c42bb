package rules

import (
	"github.com/balparda/chessgraph/internal/pgntext"
)

// ApplyMove applies a move to the board and updates the board state.
// Returns true if the move was applied successfully.
func ApplyMove(board *pgntext.Board, move *pgntext.Move) bool {
	if move == nil {
		return false
	}

	switch move.Class {
	case pgntext.NullMove:
		// Just switch sides
		board.ToMove = board.ToMove.Opposite()
		board.EnPassant = false
		return true

	case pgntext.KingsideCastle:
		return applyCastle(board, true)

	case pgntext.QueensideCastle:
		return applyCastle(board, false)

	case pgntext.PawnMove, pgntext.PawnMoveWithPromotion, pgntext.EnPassantPawnMove:
		return applyPawnMove(board, move)

	case pgntext.PieceMove:
		return applyPieceMove(board, move)

	default:
		return false
	}
}
