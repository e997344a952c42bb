package parser

import (
	"strings"

	"github.com/balparda/chessgraph/internal/pgntext"
)

// isCol returns true if c is a valid column (file) character.
func isCol(c byte) bool {
	return c >= pgntext.FirstCol && c <= pgntext.LastCol
}

// isRank returns true if c is a valid rank character.
func isRank(c byte) bool {
	return c >= pgntext.FirstRank && c <= pgntext.LastRank
}

// isPiece returns the piece type represented by the character(s) at the start of move.
func isPiece(move string) pgntext.Piece {
	if len(move) == 0 {
		return pgntext.Empty
	}

	switch move[0] {
	case 'K', 'k':
		return pgntext.King
	case 'Q', 'q', 'D': // D = Dutch/German Queen
		return pgntext.Queen
	case 'R', 'r', 'T': // T = Dutch/German Rook
		return pgntext.Rook
	case 'N', 'n', 'P', 'S': // P = Dutch Knight, S = German Knight
		return pgntext.Knight
	case 'B', 'L': // L = Dutch/German Bishop
		// Note: lowercase 'b' is most likely a pawn reference
		return pgntext.Bishop
	case RussianQueen:
		return pgntext.Queen
	case RussianRook:
		return pgntext.Rook
	case RussianBishop:
		return pgntext.Bishop
	case RussianKnightOrKing:
		// Check for two-character Russian King
		if len(move) > 1 && move[1] == RussianKingSecondLetter {
			return pgntext.King
		}
		return pgntext.Knight
	}
	return pgntext.Empty
}

// isCapture returns true if c is a capture or separator character.
func isCapture(c byte) bool {
	return c == 'x' || c == 'X' || c == ':' || c == '-'
}

// isCastlingChar returns true if c is a castling character.
func isCastlingChar(c byte) bool {
	return c == 'O' || c == '0' || c == 'o'
}

// isCheck returns true if c is a check indicator.
func isCheck(c byte) bool {
	return c == '+' || c == '#'
}

// DecodeMove parses a move string and returns a Move structure with decoded information.
func DecodeMove(moveString string) *pgntext.Move {
	move := pgntext.NewMove()
	move.Text = moveString

	var fromRank, toRank pgntext.Rank
	var fromCol, toCol pgntext.Col
	var class pgntext.MoveClass
	ok := true

	// Temporary locations
	var col pgntext.Col
	var rank pgntext.Rank

	pos := 0
	pieceToMove := pgntext.Empty
	promotedPiece := pgntext.Empty

	// Get current character helper
	currentChar := func() byte {
		if pos >= len(moveString) {
			return 0
		}
		return moveString[pos]
	}

	advance := func() {
		if pos < len(moveString) {
			pos++
		}
	}

	remaining := func() string {
		if pos >= len(moveString) {
			return ""
		}
		return moveString[pos:]
	}

	// Make an initial distinction between pawn moves and piece moves
	if isCol(currentChar()) {
		// Pawn move
		class = pgntext.PawnMove
		pieceToMove = pgntext.Pawn
		col = pgntext.Col(currentChar())
		advance()

		if isRank(currentChar()) {
			// e4, e2e4
			rank = pgntext.Rank(currentChar())
			advance()

			if isCapture(currentChar()) {
				advance()
			}

			if isCol(currentChar()) {
				fromCol = col
				fromRank = rank
				toCol = pgntext.Col(currentChar())
				advance()

				if isRank(currentChar()) {
					toRank = pgntext.Rank(currentChar())
					advance()
				}
			} else {
				toCol = col
				toRank = rank
			}
		} else {
			if isCapture(currentChar()) {
				// axb
				advance()
			}

			if isCol(currentChar()) {
				// ab, or bg8
				fromCol = col
				toCol = pgntext.Col(currentChar())
				advance()

				if isRank(currentChar()) {
					toRank = pgntext.Rank(currentChar())
					advance()

					// Sanity check
					if fromCol != 'b' && fromCol != pgntext.Col(byte(toCol)+1) && fromCol != pgntext.Col(byte(toCol)-1) {
						ok = false
					}
				} else {
					// Sanity check
					if fromCol != pgntext.Col(byte(toCol)+1) && fromCol != pgntext.Col(byte(toCol)-1) {
						ok = false
					}
				}
			} else {
				ok = false
			}
		}

		if ok {
			// Look for promotions
			if currentChar() == '=' {
				advance()
			}
			// Allow trailing 'b' as Bishop promotion
			if piece := isPiece(remaining()); piece != pgntext.Empty {
				class = pgntext.PawnMoveWithPromotion
				promotedPiece = piece
				advance()
			} else if currentChar() == 'b' {
				class = pgntext.PawnMoveWithPromotion
				promotedPiece = pgntext.Bishop
				advance()
			}
		}
	} else if pieceToMove = isPiece(remaining()); pieceToMove != pgntext.Empty {
		class = pgntext.PieceMove

		// Check for two-character Russian King
		if currentChar() == RussianKnightOrKing && pieceToMove == pgntext.King {
			advance()
		}
		advance()

		if isRank(currentChar()) {
			// Disambiguating rank: R1e1, R1xe3
			fromRank = pgntext.Rank(currentChar())
			advance()

			if isCapture(currentChar()) {
				advance()
			}

			if isCol(currentChar()) {
				toCol = pgntext.Col(currentChar())
				advance()

				if isRank(currentChar()) {
					toRank = pgntext.Rank(currentChar())
					advance()
				}
			} else {
				ok = false
			}
		} else {
			if isCapture(currentChar()) {
				// Rxe1
				advance()

				if isCol(currentChar()) {
					toCol = pgntext.Col(currentChar())
					advance()

					if isRank(currentChar()) {
						toRank = pgntext.Rank(currentChar())
						advance()
					} else {
						ok = false
					}
				} else {
					ok = false
				}
			} else if isCol(currentChar()) {
				col = pgntext.Col(currentChar())
				advance()

				if isCapture(currentChar()) {
					advance()
				}

				if isRank(currentChar()) {
					// Re1, Re1d1, Re1xd1
					rank = pgntext.Rank(currentChar())
					advance()

					if isCapture(currentChar()) {
						advance()
					}

					if isCol(currentChar()) {
						// Re1d1
						fromCol = col
						fromRank = rank
						toCol = pgntext.Col(currentChar())
						advance()

						if isRank(currentChar()) {
							toRank = pgntext.Rank(currentChar())
							advance()
						} else {
							ok = false
						}
					} else {
						toCol = col
						toRank = rank
					}
				} else if isCol(currentChar()) {
					// Rae1
					fromCol = col
					toCol = pgntext.Col(currentChar())
					advance()

					if isRank(currentChar()) {
						toRank = pgntext.Rank(currentChar())
						advance()
					} else {
						ok = false
					}
				} else {
					ok = false
				}
			} else {
				ok = false
			}
		}
	} else if isCastlingChar(currentChar()) {
		// Castling
		advance()

		// Allow optional separator
		if currentChar() == '-' {
			advance()
		}

		if isCastlingChar(currentChar()) {
			advance()

			if currentChar() == '-' {
				advance()
			}

			if isCastlingChar(currentChar()) {
				class = pgntext.QueensideCastle
				advance()
			} else {
				class = pgntext.KingsideCastle
			}
			pieceToMove = pgntext.King
		} else {
			ok = false
		}
	} else if moveString == pgntext.NullMoveString {
		class = pgntext.NullMove
	} else {
		ok = false
	}

	if ok && class != pgntext.NullMove {
		// Allow trailing checks
		for isCheck(currentChar()) {
			advance()
		}

		if currentChar() == 0 {
			// Nothing more to check
		} else if (strings.HasSuffix(remaining(), "ep") || strings.HasSuffix(remaining(), "e.p.")) &&
			class == pgntext.PawnMove {
			class = pgntext.EnPassantPawnMove
		} else {
			ok = false
		}
	}

	// Store all details
	if !ok {
		class = pgntext.UnknownMove
	}

	move.Class = class
	move.PieceToMove = pieceToMove
	move.PromotedPiece = promotedPiece
	move.FromCol = fromCol
	move.FromRank = fromRank
	move.ToCol = toCol
	move.ToRank = toRank

	return move
}

// DecodeAlgebraic refines move details using board context.
func DecodeAlgebraic(move *pgntext.Move, board *pgntext.Board) *pgntext.Move {
	fromR := pgntext.RankConvert(move.FromRank)
	fromC := pgntext.ColConvert(move.FromCol)

	if fromR == 0 || fromC == 0 {
		return move
	}

	colouredPiece := board.GetByIndex(fromC, fromR)
	pieceToMove := pgntext.ExtractPiece(colouredPiece)

	if pieceToMove != pgntext.Empty {
		// Check for castling
		if pieceToMove == pgntext.King && move.FromCol == 'e' {
			if move.ToCol == 'g' {
				move.Class = pgntext.KingsideCastle
			} else if move.ToCol == 'c' {
				move.Class = pgntext.QueensideCastle
			} else {
				move.Class = pgntext.PieceMove
				move.PieceToMove = pieceToMove
			}
		} else {
			if pieceToMove == pgntext.Pawn {
				move.Class = pgntext.PawnMove
			} else {
				move.Class = pgntext.PieceMove
			}
			move.PieceToMove = pieceToMove
		}
	}

	return move
}
