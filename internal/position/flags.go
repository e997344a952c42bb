// Package position defines the bit-level vocabulary shared by the game
// iterator and the graph store: a position's immutable flags and its
// set of history-dependent extras, both keyed on the position hash.
package position

// Flags is a bitset over predicates that depend only on the position
// itself (placement, turn, castling, ep-target) — never on how the
// position was reached. Exactly one of WhiteToMove/BlackToMove is set.
type Flags uint16

const (
	WhiteToMove Flags = 1 << iota
	BlackToMove
	Check
	Checkmate
	Stalemate
	WhiteInsufficientMaterial
	BlackInsufficientMaterial
)

// Has reports whether all bits in want are set.
func (f Flags) Has(want Flags) bool { return f&want == want }

// Extras is a bitset over history-dependent predicates: the same position
// can be reached along histories that differ in these, which is why the
// store keeps a *set* of Extras values per position rather than unioning
// them into one bitset.
type Extras uint16

const (
	Threefold Extras = 1 << iota
	Fivefold
	FiftyMove
	SeventyFiveMove
	ContinuedAfterMandatoryDraw
)

// Has reports whether all bits in want are set.
func (e Extras) Has(want Extras) bool { return e&want == want }

// IsMandatoryDraw reports whether e carries one of the rule-forced draw
// predicates: fivefold repetition, the 75-move rule, or (checked
// separately by the caller, since it isn't an Extras bit) stalemate or
// mutual insufficient material.
func (e Extras) IsMandatoryDraw() bool {
	return e.Has(Fivefold) || e.Has(SeventyFiveMove)
}
