package rules

import "github.com/balparda/chessgraph/internal/pgntext"

// canPieceMove checks if a piece can move from one square to another.
func canPieceMove(board *pgntext.Board, pieceType pgntext.Piece, fromCol pgntext.Col, fromRank pgntext.Rank, toCol pgntext.Col, toRank pgntext.Rank) bool {
	colDiff := abs(int(toCol) - int(fromCol))
	rankDiff := abs(int(toRank) - int(fromRank))

	switch pieceType {
	case pgntext.Knight:
		return (colDiff == 1 && rankDiff == 2) || (colDiff == 2 && rankDiff == 1)

	case pgntext.Bishop:
		if colDiff != rankDiff {
			return false
		}
		return isDiagonalClear(board, fromCol, fromRank, toCol, toRank)

	case pgntext.Rook:
		if colDiff != 0 && rankDiff != 0 {
			return false
		}
		return isStraightClear(board, fromCol, fromRank, toCol, toRank)

	case pgntext.Queen:
		if colDiff == rankDiff {
			return isDiagonalClear(board, fromCol, fromRank, toCol, toRank)
		}
		if colDiff == 0 || rankDiff == 0 {
			return isStraightClear(board, fromCol, fromRank, toCol, toRank)
		}
		return false

	case pgntext.King:
		return colDiff <= 1 && rankDiff <= 1
	}

	return false
}

// isDiagonalClear checks if the diagonal path is clear.
func isDiagonalClear(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, toCol pgntext.Col, toRank pgntext.Rank) bool {
	colDir := sign(int(toCol) - int(fromCol))
	rankDir := sign(int(toRank) - int(fromRank))

	col := pgntext.Col(int(fromCol) + colDir)
	rank := pgntext.Rank(int(fromRank) + rankDir)

	for col != toCol && rank != toRank {
		if board.Get(col, rank) != pgntext.Empty {
			return false
		}
		col = pgntext.Col(int(col) + colDir)
		rank = pgntext.Rank(int(rank) + rankDir)
	}

	return true
}

// isStraightClear checks if the straight path is clear.
func isStraightClear(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, toCol pgntext.Col, toRank pgntext.Rank) bool {
	colDir := sign(int(toCol) - int(fromCol))
	rankDir := sign(int(toRank) - int(fromRank))

	col := pgntext.Col(int(fromCol) + colDir)
	rank := pgntext.Rank(int(fromRank) + rankDir)

	for col != toCol || rank != toRank {
		if board.Get(col, rank) != pgntext.Empty {
			return false
		}
		col = pgntext.Col(int(col) + colDir)
		rank = pgntext.Rank(int(rank) + rankDir)
	}

	return true
}
