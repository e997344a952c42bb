package rules

import "github.com/balparda/chessgraph/internal/pgntext"

// IsLegalMove reports whether moving the piece on (fromCol, fromRank) to
// (toCol, toRank) is legal for colour: the origin square holds one of
// colour's pieces, the destination is reachable for that piece's kind
// under the board's current occupancy, and making the move does not leave
// colour's own king in check. It builds on the same tryMove primitive the
// move generators use, exposed here as the single legality entry point the
// ingest pipeline can call per recorded ply without re-deriving it.
func IsLegalMove(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, toCol pgntext.Col, toRank pgntext.Rank) bool {
	if !isOnBoard(fromCol, fromRank) || !isOnBoard(toCol, toRank) {
		return false
	}
	piece := board.Get(fromCol, fromRank)
	if piece == pgntext.Empty || piece == pgntext.Off {
		return false
	}
	colour := pgntext.ExtractColour(piece)
	if colour != board.ToMove {
		return false
	}
	if !pieceReaches(board, fromCol, fromRank, toCol, toRank, pgntext.ExtractPiece(piece), colour) {
		return false
	}
	return tryMove(board, fromCol, fromRank, toCol, toRank, colour)
}

// pieceReaches reports whether pieceType on (fromCol, fromRank) can reach
// (toCol, toRank) given the board's current occupancy, ignoring whether
// the move would leave the mover's own king in check (tryMove covers that).
func pieceReaches(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, toCol pgntext.Col, toRank pgntext.Rank, pieceType pgntext.Piece, colour pgntext.Colour) bool {
	if dest := board.Get(toCol, toRank); dest != pgntext.Empty && pgntext.ExtractColour(dest) == colour && pieceType != pgntext.Pawn {
		return false
	}
	switch pieceType {
	case pgntext.Pawn:
		return pawnReaches(board, fromCol, fromRank, toCol, toRank, colour)
	case pgntext.Knight:
		return jumpReaches(fromCol, fromRank, toCol, toRank, knightOffsets)
	case pgntext.King:
		return jumpReaches(fromCol, fromRank, toCol, toRank, kingOffsets)
	case pgntext.Bishop:
		return slideReaches(board, fromCol, fromRank, toCol, toRank, diagonalDirs)
	case pgntext.Rook:
		return slideReaches(board, fromCol, fromRank, toCol, toRank, straightDirs)
	case pgntext.Queen:
		return slideReaches(board, fromCol, fromRank, toCol, toRank, diagonalDirs) ||
			slideReaches(board, fromCol, fromRank, toCol, toRank, straightDirs)
	}
	return false
}

func pawnReaches(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, toCol pgntext.Col, toRank pgntext.Rank, colour pgntext.Colour) bool {
	dir := pgntext.ColourOffset(colour)
	singleRank := pgntext.Rank(int(fromRank) + dir)

	if toCol == fromCol && toRank == singleRank {
		return board.Get(toCol, toRank) == pgntext.Empty
	}

	startRank := pgntext.Rank('2')
	if colour == pgntext.Black {
		startRank = '7'
	}
	if toCol == fromCol && fromRank == startRank && toRank == pgntext.Rank(int(fromRank)+2*dir) {
		return board.Get(fromCol, singleRank) == pgntext.Empty && board.Get(toCol, toRank) == pgntext.Empty
	}

	if toRank == singleRank && (toCol == fromCol-1 || toCol == fromCol+1) {
		target := board.Get(toCol, toRank)
		if target != pgntext.Empty && pgntext.ExtractColour(target) != colour {
			return true
		}
		return board.EnPassant && toCol == board.EPCol && toRank == board.EPRank
	}

	return false
}

func jumpReaches(fromCol pgntext.Col, fromRank pgntext.Rank, toCol pgntext.Col, toRank pgntext.Rank, offsets [][2]int) bool {
	for _, offset := range offsets {
		if pgntext.Col(int(fromCol)+offset[0]) == toCol && pgntext.Rank(int(fromRank)+offset[1]) == toRank {
			return true
		}
	}
	return false
}

// IsLegalCastle reports whether castling (kingside, or queenside when
// kingside is false) is legal for the side to move: the corresponding
// right is still held, every square between the king and its rook is
// empty, and the king is not currently in check, does not pass through
// an attacked square, and does not land on one.
func IsLegalCastle(board *pgntext.Board, kingside bool) bool {
	colour := board.ToMove
	rank := pgntext.Rank('1')
	if colour == pgntext.Black {
		rank = '8'
	}

	var kingFrom, rookFrom, kingTo pgntext.Col
	if colour == pgntext.White {
		kingFrom = board.WKingCol
	} else {
		kingFrom = board.BKingCol
	}
	if kingside {
		if colour == pgntext.White {
			rookFrom = board.WKingCastle
		} else {
			rookFrom = board.BKingCastle
		}
		kingTo = 'g'
	} else {
		if colour == pgntext.White {
			rookFrom = board.WQueenCastle
		} else {
			rookFrom = board.BQueenCastle
		}
		kingTo = 'c'
	}
	if rookFrom == 0 {
		return false
	}

	lo, hi := kingFrom, rookFrom
	if lo > hi {
		lo, hi = hi, lo
	}
	for c := lo; c <= hi; c++ {
		if c == kingFrom || c == rookFrom {
			continue
		}
		if board.Get(c, rank) != pgntext.Empty {
			return false
		}
	}

	opponent := colour.Opposite()
	step := 1
	if kingTo < kingFrom {
		step = -1
	}
	for c := kingFrom; ; c += pgntext.Col(step) {
		if isSquareAttacked(board, c, rank, opponent) {
			return false
		}
		if c == kingTo {
			break
		}
	}
	return true
}

func slideReaches(board *pgntext.Board, fromCol pgntext.Col, fromRank pgntext.Rank, toCol pgntext.Col, toRank pgntext.Rank, dirs [][2]int) bool {
	for _, dir := range dirs {
		c := pgntext.Col(int(fromCol) + dir[0])
		r := pgntext.Rank(int(fromRank) + dir[1])
		for isOnBoard(c, r) {
			if c == toCol && r == toRank {
				return true
			}
			if board.Get(c, r) != pgntext.Empty {
				break
			}
			c = pgntext.Col(int(c) + dir[0])
			r = pgntext.Rank(int(r) + dir[1])
		}
	}
	return false
}
