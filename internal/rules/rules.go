// Package rules adapts a chess move/position engine to the narrow capability
// set the graph store and ingest pipeline need: legality, application,
// status predicates, and FEN im/export.
package rules

import (
	"github.com/balparda/chessgraph/internal/pgntext"
)

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *pgntext.Board) bool {
	var whitePieces, blackPieces []pgntext.Piece
	var whiteBishopOnLight, blackBishopOnLight bool

	// Count pieces for each side
	for rank := pgntext.Rank(pgntext.FirstRank); rank <= pgntext.Rank(pgntext.LastRank); rank++ {
		for col := pgntext.Col(pgntext.FirstCol); col <= pgntext.Col(pgntext.LastCol); col++ {
			piece := board.Get(col, rank)
			if piece == pgntext.Empty || piece == pgntext.Off {
				continue
			}

			colour := pgntext.ExtractColour(piece)
			pieceType := pgntext.ExtractPiece(piece)

			// Kings don't count for material
			if pieceType == pgntext.King {
				continue
			}

			// Any pawn, rook, or queen means sufficient material
			if pieceType == pgntext.Pawn || pieceType == pgntext.Rook || pieceType == pgntext.Queen {
				return false
			}

			if colour == pgntext.White {
				whitePieces = append(whitePieces, pieceType)
				if pieceType == pgntext.Bishop {
					whiteBishopOnLight = isLightSquare(col, rank)
				}
			} else {
				blackPieces = append(blackPieces, pieceType)
				if pieceType == pgntext.Bishop {
					blackBishopOnLight = isLightSquare(col, rank)
				}
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == pgntext.Bishop || blackPieces[0] == pgntext.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == pgntext.Bishop || whitePieces[0] == pgntext.Knight
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 {
		if whitePieces[0] == pgntext.Bishop && blackPieces[0] == pgntext.Bishop {
			// Check if both bishops are on the same color squares
			if whiteBishopOnLight == blackBishopOnLight {
				return true
			}
		}
	}

	return false
}

// isLightSquare returns true if the given square is a light square.
func isLightSquare(col pgntext.Col, rank pgntext.Rank) bool {
	colNum := int(col - pgntext.FirstCol)
	rankNum := int(rank - pgntext.FirstRank)
	return (colNum+rankNum)%2 == 1
}
