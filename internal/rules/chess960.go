package rules

import (
	"strings"

	"github.com/balparda/chessgraph/internal/pgntext"
)

// IsChess960Game returns true if the game is a Chess960 game.
// This is detected by the Variant tag or non-standard castling rights.
func IsChess960Game(game *pgntext.Game) bool {
	variant := game.GetTag("Variant")
	variant = strings.ToLower(variant)
	if strings.Contains(variant, "960") || strings.Contains(variant, "fischerandom") {
		return true
	}
	return false
}

// IsChess960Position returns true if the board has non-standard castling positions.
func IsChess960Position(board *pgntext.Board) bool {
	// Standard positions: king on e-file, rooks on a and h files
	standardKingCol := pgntext.Col('e')
	standardKingSideRook := pgntext.Col('h')
	standardQueenSideRook := pgntext.Col('a')

	// Check if white has non-standard castling
	if board.WKingCol != standardKingCol {
		return true
	}
	if board.WKingCastle != 0 && board.WKingCastle != standardKingSideRook {
		return true
	}
	if board.WQueenCastle != 0 && board.WQueenCastle != standardQueenSideRook {
		return true
	}

	// Check if black has non-standard castling
	if board.BKingCol != standardKingCol {
		return true
	}
	if board.BKingCastle != 0 && board.BKingCastle != standardKingSideRook {
		return true
	}
	if board.BQueenCastle != 0 && board.BQueenCastle != standardQueenSideRook {
		return true
	}

	return false
}
