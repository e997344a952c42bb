package rules

import "github.com/balparda/chessgraph/internal/pgntext"

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *pgntext.Board, colour pgntext.Colour) bool {
	for col := pgntext.Col('a'); col <= 'h'; col++ {
		for rank := pgntext.Rank('1'); rank <= '8'; rank++ {
			piece := board.Get(col, rank)
			if piece == pgntext.Empty || piece == pgntext.Off {
				continue
			}
			if pgntext.ExtractColour(piece) != colour {
				continue
			}
			if hasLegalMovesForPiece(board, col, rank, pgntext.ExtractPiece(piece), colour) {
				return true
			}
		}
	}
	return false
}

// hasLegalMovesForPiece checks if a specific piece has any legal moves.
func hasLegalMovesForPiece(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, pieceType pgntext.Piece, colour pgntext.Colour) bool {
	switch pieceType {
	case pgntext.Pawn:
		return hasPawnMoves(board, fromCol, fromRank, colour)
	case pgntext.Knight:
		return hasJumpMoves(board, fromCol, fromRank, colour, knightOffsets)
	case pgntext.King:
		return hasJumpMoves(board, fromCol, fromRank, colour, kingOffsets)
	case pgntext.Bishop:
		return hasSlidingMoves(board, fromCol, fromRank, colour, diagonalDirs)
	case pgntext.Rook:
		return hasSlidingMoves(board, fromCol, fromRank, colour, straightDirs)
	case pgntext.Queen:
		return hasSlidingMoves(board, fromCol, fromRank, colour, diagonalDirs) ||
			hasSlidingMoves(board, fromCol, fromRank, colour, straightDirs)
	}
	return false
}

// hasPawnMoves checks if a pawn has any legal moves.
func hasPawnMoves(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, colour pgntext.Colour) bool {
	dir := pgntext.ColourOffset(colour)
	toRank := pgntext.Rank(int(fromRank) + dir)

	if !isOnBoard(fromCol, toRank) {
		return false
	}

	// Forward move
	if board.Get(fromCol, toRank) == pgntext.Empty {
		if tryMove(board, fromCol, fromRank, fromCol, toRank, colour) {
			return true
		}
		// Double push from starting rank
		startRank := pgntext.Rank('2')
		if colour == pgntext.Black {
			startRank = '7'
		}
		if fromRank == startRank {
			toRank2 := pgntext.Rank(int(fromRank) + 2*dir)
			if board.Get(fromCol, toRank2) == pgntext.Empty {
				if tryMove(board, fromCol, fromRank, fromCol, toRank2, colour) {
					return true
				}
			}
		}
	}

	// Captures (including en passant)
	for _, dc := range []int{-1, 1} {
		toCol := pgntext.Col(int(fromCol) + dc)
		if !isOnBoard(toCol, toRank) {
			continue
		}
		target := board.Get(toCol, toRank)
		isCapture := target != pgntext.Empty && pgntext.ExtractColour(target) != colour
		isEnPassant := board.EnPassant && toCol == board.EPCol && toRank == board.EPRank
		if (isCapture || isEnPassant) && tryMove(board, fromCol, fromRank, toCol, toRank, colour) {
			return true
		}
	}

	return false
}

// hasJumpMoves checks if a knight or king has any legal moves.
func hasJumpMoves(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, colour pgntext.Colour, offsets [][2]int) bool {
	for _, offset := range offsets {
		toCol := pgntext.Col(int(fromCol) + offset[0])
		toRank := pgntext.Rank(int(fromRank) + offset[1])
		if !isOnBoard(toCol, toRank) {
			continue
		}
		target := board.Get(toCol, toRank)
		if target == pgntext.Empty || pgntext.ExtractColour(target) != colour {
			if tryMove(board, fromCol, fromRank, toCol, toRank, colour) {
				return true
			}
		}
	}
	return false
}

// hasSlidingMoves checks if a sliding piece (bishop, rook, queen) has legal moves.
func hasSlidingMoves(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, colour pgntext.Colour, dirs [][2]int) bool {
	for _, dir := range dirs {
		toCol := pgntext.Col(int(fromCol) + dir[0])
		toRank := pgntext.Rank(int(fromRank) + dir[1])
		for isOnBoard(toCol, toRank) {
			target := board.Get(toCol, toRank)
			if target != pgntext.Empty {
				if pgntext.ExtractColour(target) != colour {
					if tryMove(board, fromCol, fromRank, toCol, toRank, colour) {
						return true
					}
				}
				break
			}
			if tryMove(board, fromCol, fromRank, toCol, toRank, colour) {
				return true
			}
			toCol = pgntext.Col(int(toCol) + dir[0])
			toRank = pgntext.Rank(int(toRank) + dir[1])
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, toCol pgntext.Col, toRank pgntext.Rank, colour pgntext.Colour) bool {
	testBoard := board.Copy()
	piece := testBoard.Get(fromCol, fromRank)
	testBoard.Set(fromCol, fromRank, pgntext.Empty)
	testBoard.Set(toCol, toRank, piece)

	if pgntext.ExtractPiece(piece) == pgntext.King {
		if colour == pgntext.White {
			testBoard.WKingCol = toCol
			testBoard.WKingRank = toRank
		} else {
			testBoard.BKingCol = toCol
			testBoard.BKingRank = toRank
		}
	}

	return !IsInCheck(testBoard, colour)
}
