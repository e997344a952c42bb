// Package pgniter walks a parsed game ply by ply, computing the position
// hash, move codec, and flags/extras bitset the graph store needs for
// each edge, and classifying the game into an error category the moment
// one of the preconditions in §4.4 is violated. It is grounded on the
// teacher's own AnalyzeDrawRules board-replay loop (internal/rules),
// generalized from a single pass over a finished game into a per-ply
// visitor the ingest pipeline drives inside its transaction.
package pgniter

import (
	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/pgntext"
	"github.com/balparda/chessgraph/internal/ply"
	"github.com/balparda/chessgraph/internal/position"
	"github.com/balparda/chessgraph/internal/rules"
	"github.com/balparda/chessgraph/internal/zobrist"
)

// Ply is one half-move produced while walking a game: its SAN text, its
// compact encoding, the hashes of the positions it connects, and the
// flags/extras of the resulting position.
type Ply struct {
	Index      int // 1-based ply number within the game
	SAN        string
	Encoded    ply.Encoded
	PrevHash   zobrist.Hash
	CurHash    zobrist.Hash
	PrevFlags  position.Flags // flags of PrevHash's position, for ply 1 this is the game's starting position
	PrevExtras position.Extras
	Flags      position.Flags
	Extras     position.Extras
}

// VisitFunc is called once per successfully validated ply, in order. A
// non-nil return aborts the walk, propagating the error to the caller.
type VisitFunc func(Ply) error

// Walk replays game from the standard initial position, calling visit for
// each ply. libraryErrored reports the result of precondition 1 (the
// upstream parser logged diagnostics for this game) since internal/parser
// writes those to a log writer rather than returning a structured error
// list — the caller determines this by wrapping its config's LogFile in a
// counting writer for the duration of parsing this one game.
//
// Preconditions are checked in the exact order spec.md §4.4 requires:
// library error, then non-standard starting position, then per-move
// legality/position validity, then the two ending-condition checks.
func Walk(game *pgntext.Game, libraryErrored bool, visit VisitFunc) error {
	if libraryErrored {
		return cgerrors.ErrLibraryError
	}

	board := rules.NewInitialBoard()
	if game.FEN() != "" {
		fenBoard, err := rules.NewBoardFromFEN(game.FEN())
		if err != nil {
			return cgerrors.Wrap(err, "parsing FEN starting position")
		}
		if zobrist.ComputeHash(fenBoard) != zobrist.ComputeHash(board) {
			return cgerrors.ErrNonStandardChess
		}
		board = fenBoard
	}
	if rules.IsChess960Game(game) || rules.IsChess960Position(board) {
		return cgerrors.ErrNonStandardChess
	}

	startHash := zobrist.ComputeHash(board)
	tracker := rules.NewRepetitionTracker(startHash)
	prevHash := startHash
	prevFlags, prevExtras := computeFlagsExtrasAt(board, tracker.Count(startHash))
	continuedAfterMandatoryDraw := false

	index := 0
	for move := game.Moves; move != nil; move = move.Next {
		index++

		if prevFlags.Has(position.Checkmate) {
			return cgerrors.ErrEndingError
		}

		if !moveIsLegal(board, move) {
			return cgerrors.Wrapf(cgerrors.ErrInvalidMove, "ply %d (%s) is illegal", index, move.Text)
		}
		if !rules.ApplyMove(board, move) {
			return cgerrors.Wrapf(cgerrors.ErrInvalidMove, "ply %d (%s) could not be applied", index, move.Text)
		}
		if !rules.IsValidPosition(board) {
			return cgerrors.Wrapf(cgerrors.ErrInvalidPosition, "ply %d (%s) produced an invalid position", index, move.Text)
		}

		encoded, err := encodeMove(move)
		if err != nil {
			return cgerrors.Wrapf(cgerrors.ErrInvalidMove, "ply %d (%s): %v", index, move.Text, err)
		}

		curHash := zobrist.ComputeHash(board)
		occurrences := tracker.Observe(curHash)
		flags, extras := computeFlagsExtrasAt(board, occurrences)

		// The bit applies starting with the ply right after the
		// mandatory-draw position, so check prevFlags/prevExtras (the
		// position this ply was played from) before, not after,
		// folding it into this ply's own extras.
		if mandatoryDrawReached(prevFlags, prevExtras) {
			continuedAfterMandatoryDraw = true
		}
		if continuedAfterMandatoryDraw {
			extras |= position.ContinuedAfterMandatoryDraw
		}

		if err := visit(Ply{
			Index:      index,
			SAN:        move.Text,
			Encoded:    encoded,
			PrevHash:   prevHash,
			CurHash:    curHash,
			PrevFlags:  prevFlags,
			PrevExtras: prevExtras,
			Flags:      flags,
			Extras:     extras,
		}); err != nil {
			return err
		}

		prevHash = curHash
		prevFlags, prevExtras = flags, extras
	}

	return nil
}

// mandatoryDrawReached reports whether the position described by flags
// and extras forces a draw: stalemate, fivefold repetition, the 75-move
// rule, or insufficient material on both sides.
func mandatoryDrawReached(flags position.Flags, extras position.Extras) bool {
	return flags.Has(position.Stalemate) ||
		extras.IsMandatoryDraw() ||
		(flags.Has(position.WhiteInsufficientMaterial) && flags.Has(position.BlackInsufficientMaterial))
}

// moveIsLegal reports whether move is legal on board. SAN usually names
// only the destination square, so it first fills in move's missing origin
// file and rank (and, for castling, the king's from/to squares) from the
// board, which encodeMove then needs.
func moveIsLegal(board *pgntext.Board, move *pgntext.Move) bool {
	switch move.Class {
	case pgntext.NullMove:
		return true
	case pgntext.KingsideCastle, pgntext.QueensideCastle:
		move.FromCol, move.FromRank = board.WKingCol, board.WKingRank
		if board.ToMove == pgntext.Black {
			move.FromCol, move.FromRank = board.BKingCol, board.BKingRank
		}
		move.ToCol, move.ToRank = 'c', move.FromRank
		if move.Class == pgntext.KingsideCastle {
			move.ToCol = 'g'
		}
		return rules.IsLegalCastle(board, move.Class == pgntext.KingsideCastle)
	default:
		want := pgntext.MakeColouredPiece(board.ToMove, move.PieceToMove)
		for c := pgntext.Col('a'); c <= 'h' && (move.FromCol == 0 || move.FromRank == 0); c++ {
			for r := pgntext.Rank('1'); r <= '8'; r++ {
				if board.Get(c, r) == want && (move.FromCol == 0 || move.FromCol == c) &&
					(move.FromRank == 0 || move.FromRank == r) && rules.IsLegalMove(board, c, r, move.ToCol, move.ToRank) {
					move.FromCol, move.FromRank = c, r
					break
				}
			}
		}
		return rules.IsLegalMove(board, move.FromCol, move.FromRank, move.ToCol, move.ToRank)
	}
}

func encodeMove(move *pgntext.Move) (ply.Encoded, error) {
	promo := ply.NoPromotion
	switch move.PromotedPiece {
	case pgntext.Knight:
		promo = ply.Knight
	case pgntext.Bishop:
		promo = ply.Bishop
	case pgntext.Rook:
		promo = ply.Rook
	case pgntext.Queen:
		promo = ply.Queen
	}
	from := ply.SquareIndex(int(move.FromCol-pgntext.ColBase), int(move.FromRank-pgntext.RankBase))
	to := ply.SquareIndex(int(move.ToCol-pgntext.ColBase), int(move.ToRank-pgntext.RankBase))
	return ply.Encode(ply.Move{From: from, To: to, Promotion: promo})
}

func computeFlagsExtrasAt(board *pgntext.Board, occurrences int) (position.Flags, position.Extras) {
	var flags position.Flags
	if board.ToMove == pgntext.White {
		flags |= position.WhiteToMove
	} else {
		flags |= position.BlackToMove
	}
	if rules.IsInCheck(board, board.ToMove) {
		flags |= position.Check
	}
	if rules.IsCheckmate(board) {
		flags |= position.Checkmate
	}
	if rules.IsStalemate(board) {
		flags |= position.Stalemate
	}
	if rules.HasInsufficientMaterial(board) {
		// HasInsufficientMaterial is a whole-board predicate; approximate
		// per-side insufficiency by the same whole-board result, since the
		// rules engine does not expose a per-colour variant and a position
		// with overall insufficient material has neither side able to mate.
		flags |= position.WhiteInsufficientMaterial | position.BlackInsufficientMaterial
	}

	var extras position.Extras
	if occurrences >= 3 {
		extras |= position.Threefold
	}
	if occurrences >= 5 {
		extras |= position.Fivefold
	}
	if board.HalfmoveClock >= 100 {
		extras |= position.FiftyMove
	}
	if board.HalfmoveClock >= 150 {
		extras |= position.SeventyFiveMove
	}
	return flags, extras
}
