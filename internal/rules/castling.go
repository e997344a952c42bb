package rules

import "github.com/balparda/chessgraph/internal/pgntext"

// applyCastle applies a castling move.
func applyCastle(board *pgntext.Board, kingside bool) bool {
	colour := board.ToMove
	var rank pgntext.Rank
	var kingFromCol, kingToCol, rookFromCol, rookToCol pgntext.Col

	if colour == pgntext.White {
		rank = '1'
		kingFromCol = board.WKingCol
		if kingside {
			kingToCol = 'g'
			rookFromCol = board.WKingCastle
			rookToCol = 'f'
		} else {
			kingToCol = 'c'
			rookFromCol = board.WQueenCastle
			rookToCol = 'd'
		}
	} else {
		rank = '8'
		kingFromCol = board.BKingCol
		if kingside {
			kingToCol = 'g'
			rookFromCol = board.BKingCastle
			rookToCol = 'f'
		} else {
			kingToCol = 'c'
			rookFromCol = board.BQueenCastle
			rookToCol = 'd'
		}
	}

	// Move king
	king := board.Get(kingFromCol, rank)
	board.Set(kingFromCol, rank, pgntext.Empty)
	board.Set(kingToCol, rank, king)

	// Move rook
	rook := board.Get(rookFromCol, rank)
	board.Set(rookFromCol, rank, pgntext.Empty)
	board.Set(rookToCol, rank, rook)

	// Update king position
	if colour == pgntext.White {
		board.WKingCol = kingToCol
		board.WKingCastle = 0
		board.WQueenCastle = 0
	} else {
		board.BKingCol = kingToCol
		board.BKingCastle = 0
		board.BQueenCastle = 0
	}

	board.EnPassant = false
	board.HalfmoveClock++
	if colour == pgntext.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return true
}

// updateCastlingRightsForRook removes castling rights when a rook moves or is captured.
func updateCastlingRightsForRook(board *pgntext.Board, colour pgntext.Colour, col pgntext.Col, rank pgntext.Rank) {
	if colour == pgntext.White && rank == '1' {
		if col == board.WKingCastle {
			board.WKingCastle = 0
		}
		if col == board.WQueenCastle {
			board.WQueenCastle = 0
		}
	} else if colour == pgntext.Black && rank == '8' {
		if col == board.BKingCastle {
			board.BKingCastle = 0
		}
		if col == board.BQueenCastle {
			board.BQueenCastle = 0
		}
	}
}
