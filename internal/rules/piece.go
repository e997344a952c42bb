package rules

import "github.com/balparda/chessgraph/internal/pgntext"

// applyPieceMove applies a piece (non-pawn) move.
func applyPieceMove(board *pgntext.Board, move *pgntext.Move) bool {
	colour := board.ToMove
	fromCol := move.FromCol
	fromRank := move.FromRank
	toCol := move.ToCol
	toRank := move.ToRank
	pieceType := move.PieceToMove

	// If source square not specified, find the piece
	if fromCol == 0 || fromRank == 0 {
		fromCol, fromRank = findPieceSource(board, move, colour)
		if fromCol == 0 {
			return false
		}
	}

	piece := board.Get(fromCol, fromRank)
	capturedPiece := board.Get(toCol, toRank)

	// Move the piece
	board.Set(fromCol, fromRank, pgntext.Empty)
	board.Set(toCol, toRank, piece)

	// Update king position if king moved
	if pieceType == pgntext.King {
		if colour == pgntext.White {
			board.WKingCol = toCol
			board.WKingRank = toRank
			board.WKingCastle = 0
			board.WQueenCastle = 0
		} else {
			board.BKingCol = toCol
			board.BKingRank = toRank
			board.BKingCastle = 0
			board.BQueenCastle = 0
		}
	}

	// Update castling rights if rook moved or captured
	if pieceType == pgntext.Rook {
		updateCastlingRightsForRook(board, colour, fromCol, fromRank)
	}
	if capturedPiece != pgntext.Empty && pgntext.ExtractPiece(capturedPiece) == pgntext.Rook {
		capturedColour := pgntext.ExtractColour(capturedPiece)
		updateCastlingRightsForRook(board, capturedColour, toCol, toRank)
	}

	board.EnPassant = false

	// Update halfmove clock
	if capturedPiece != pgntext.Empty {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}

	if colour == pgntext.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return true
}

// findPieceSource finds the source square of a piece move.
func findPieceSource(board *pgntext.Board, move *pgntext.Move, colour pgntext.Colour) (pgntext.Col, pgntext.Rank) {
	toCol := move.ToCol
	toRank := move.ToRank
	pieceType := move.PieceToMove
	fromCol := move.FromCol
	fromRank := move.FromRank

	piece := pgntext.MakeColouredPiece(colour, pieceType)

	// Search for the piece that can move to the target square
	for col := pgntext.Col('a'); col <= 'h'; col++ {
		for rank := pgntext.Rank('1'); rank <= '8'; rank++ {
			if board.Get(col, rank) != piece {
				continue
			}

			// Check disambiguation
			if fromCol != 0 && col != fromCol {
				continue
			}
			if fromRank != 0 && rank != fromRank {
				continue
			}

			// Check if this piece can reach the target
			if canPieceMove(board, pieceType, col, rank, toCol, toRank) {
				return col, rank
			}
		}
	}

	return 0, 0
}
