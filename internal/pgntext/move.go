package pgntext

// Comment represents a PGN comment.
type Comment struct {
	Text string
}

// NAG represents a Numeric Annotation Glyph with optional comments.
type NAG struct {
	Text     []string
	Comments []*Comment
}

// Variation represents a variation (alternative line) in a game.
type Variation struct {
	PrefixComment []*Comment
	Moves         *Move
	SuffixComment []*Comment
}

// Move represents a single chess move with all associated data.
type Move struct {
	// The move text (e.g., "Nf3", "e4", "O-O").
	Text string

	// Class of move (pawn move, piece move, castle, etc.).
	Class MoveClass

	// Source square.
	FromCol  Col
	FromRank Rank

	// Destination square.
	ToCol  Col
	ToRank Rank

	// The piece being moved.
	PieceToMove Piece

	// The piece captured (Empty if no capture).
	CapturedPiece Piece

	// The piece promoted to (Empty if not a promotion).
	PromotedPiece Piece

	// Numeric Annotation Glyphs (!, ?, !!, ??, etc.).
	NAGs []*NAG

	// Comments associated with this move.
	Comments []*Comment

	// Terminating result if this is the last move (e.g., "1-0", "0-1", "1/2-1/2").
	TerminatingResult string

	// Alternative variations from this position.
	Variations []*Variation

	// Links to previous and next moves in the game.
	Prev *Move
	Next *Move
}

// NewMove creates a new empty move.
func NewMove() *Move {
	return &Move{
		CapturedPiece: Empty,
		PromotedPiece: Empty,
	}
}
