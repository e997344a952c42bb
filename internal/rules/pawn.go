package rules

import "github.com/balparda/chessgraph/internal/pgntext"

// applyPawnMove applies a pawn move.
func applyPawnMove(board *pgntext.Board, move *pgntext.Move) bool {
	colour := board.ToMove
	fromCol := move.FromCol
	fromRank := move.FromRank
	toCol := move.ToCol
	toRank := move.ToRank

	// If source square not specified, find the pawn
	if fromCol == 0 || fromRank == 0 {
		fromCol, fromRank = findPawnSource(board, move, colour)
		if fromCol == 0 {
			return false
		}
	}

	pawn := board.Get(fromCol, fromRank)

	// Handle en passant capture
	if move.Class == pgntext.EnPassantPawnMove {
		// Remove the captured pawn
		var capturedRank pgntext.Rank
		if colour == pgntext.White {
			capturedRank = toRank - 1
		} else {
			capturedRank = toRank + 1
		}
		board.Set(toCol, capturedRank, pgntext.Empty)
	}

	// Move the pawn
	board.Set(fromCol, fromRank, pgntext.Empty)

	// Handle promotion
	if move.Class == pgntext.PawnMoveWithPromotion {
		promotedPiece := move.PromotedPiece
		if promotedPiece == pgntext.Empty {
			promotedPiece = pgntext.Queen // Default to queen
		}
		board.Set(toCol, toRank, pgntext.MakeColouredPiece(colour, promotedPiece))
	} else {
		board.Set(toCol, toRank, pawn)
	}

	// Set en passant square if double pawn push
	board.EnPassant = false
	if colour == pgntext.White && fromRank == '2' && toRank == '4' {
		board.EnPassant = true
		board.EPCol = toCol
		board.EPRank = '3'
	} else if colour == pgntext.Black && fromRank == '7' && toRank == '5' {
		board.EnPassant = true
		board.EPCol = toCol
		board.EPRank = '6'
	}

	board.HalfmoveClock = 0 // Pawn move resets clock
	if colour == pgntext.Black {
		board.MoveNumber++
	}
	board.ToMove = colour.Opposite()

	return true
}

// findPawnSource finds the source square of a pawn move.
func findPawnSource(board *pgntext.Board, move *pgntext.Move, colour pgntext.Colour) (pgntext.Col, pgntext.Rank) {
	toCol := move.ToCol
	toRank := move.ToRank
	fromCol := move.FromCol

	pawn := pgntext.MakeColouredPiece(colour, pgntext.Pawn)
	direction := pgntext.ColourOffset(colour)

	// If we know the from column, look for the pawn there
	if fromCol != 0 {
		// Capture - look one rank back
		fromRank := pgntext.Rank(byte(toRank) - byte(direction))
		if board.Get(fromCol, fromRank) == pawn {
			return fromCol, fromRank
		}
		return 0, 0
	}

	// Non-capture - same column
	fromRank := pgntext.Rank(byte(toRank) - byte(direction))
	if board.Get(toCol, fromRank) == pawn {
		return toCol, fromRank
	}

	// Double pawn push
	if (colour == pgntext.White && toRank == '4') || (colour == pgntext.Black && toRank == '5') {
		fromRank = pgntext.Rank(byte(toRank) - byte(2*direction))
		middleRank := pgntext.Rank(byte(toRank) - byte(direction))
		if board.Get(toCol, fromRank) == pawn && board.Get(toCol, middleRank) == pgntext.Empty {
			return toCol, fromRank
		}
	}

	return 0, 0
}
