// Package ply implements the bijection between a half-move and a compact
// integer: the move codec (C2). Grounded on the teacher's own SAN decoder
// (internal/parser); internal/pgniter resolves each decoded move to
// concrete from/to squares against the board before this codec ever sees
// them.
package ply

import (
	"fmt"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
)

// Promotion piece codes. Zero means no promotion; the rest match the
// classical SAN promotion letters without pawns or kings, which cannot be
// promoted to.
const (
	NoPromotion = 0
	Knight      = 1
	Bishop      = 2
	Rook        = 3
	Queen       = 4
)

const squareMultiplier = 100
const promotionMultiplier = 1_000_000

// Encoded is the compact integer encoding of one half-move.
type Encoded int

// Move is a half-move as the rules engine exposes it: 0-63 squares and an
// optional promotion piece code.
type Move struct {
	From      int
	To        int
	Promotion int
}

// Encode implements `from_square*100 + to_square + promotion*1_000_000`.
func Encode(m Move) (Encoded, error) {
	if err := validateSquare(m.From, "from"); err != nil {
		return 0, err
	}
	if err := validateSquare(m.To, "to"); err != nil {
		return 0, err
	}
	if err := validatePromotion(m.Promotion); err != nil {
		return 0, err
	}
	return Encoded(m.From*squareMultiplier + m.To + m.Promotion*promotionMultiplier), nil
}

// Decode inverts Encode, failing with a value error if squares are out of
// range or the promotion code is not one of {knight, bishop, rook, queen, 0}.
func Decode(e Encoded) (Move, error) {
	n := int(e)
	promotion := n / promotionMultiplier
	rest := n % promotionMultiplier
	from := rest / squareMultiplier
	to := rest % squareMultiplier
	m := Move{From: from, To: to, Promotion: promotion}
	if err := validateSquare(from, "from"); err != nil {
		return Move{}, err
	}
	if err := validateSquare(to, "to"); err != nil {
		return Move{}, err
	}
	if err := validatePromotion(promotion); err != nil {
		return Move{}, err
	}
	return m, nil
}

func validateSquare(sq int, which string) error {
	if sq < 0 || sq > 63 {
		return cgerrors.Wrapf(cgerrors.ErrInvalidMove, "%s square %d out of range [0, 63]", which, sq)
	}
	return nil
}

func validatePromotion(p int) error {
	switch p {
	case NoPromotion, Knight, Bishop, Rook, Queen:
		return nil
	default:
		return cgerrors.Wrapf(cgerrors.ErrInvalidMove, "promotion code %d is not knight/bishop/rook/queen/none", p)
	}
}

// SquareIndex converts 0-based file (0=a..7=h) and rank (0=1st..7=8th) into
// the 0..63 square index used throughout this package: rank*8 + file.
func SquareIndex(file, rank int) int {
	return rank*8 + file
}

// FileRank inverts SquareIndex.
func FileRank(square int) (file, rank int) {
	return square % 8, square / 8
}

func (m Move) String() string {
	fFile, fRank := FileRank(m.From)
	tFile, tRank := FileRank(m.To)
	return fmt.Sprintf("%c%d%c%d", 'a'+fFile, fRank+1, 'a'+tFile, tRank+1)
}
