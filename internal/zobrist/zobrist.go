// Package zobrist computes the 128-bit content hash identifying a chess
// position: piece placement, side to move, castling rights, and the
// en-passant target. It is grounded on the teacher's own Zobrist field on
// pgntext.Board (previously a 64-bit "Polyglot-compatible" hash) widened to
// the 128-bit table the graph store's vertices are keyed on.
package zobrist

import (
	"encoding/hex"
	"fmt"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/pgntext"
)

// Hash is a 128-bit position content hash, printed as 32 lowercase hex
// characters and used as the primary key of the Position relation.
type Hash struct {
	Hi, Lo uint64
}

// String renders the hash as 32 lowercase hex characters.
func (h Hash) String() string {
	return fmt.Sprintf("%016x%016x", h.Hi, h.Lo)
}

// HexLen is the fixed width of a position hash in hex characters, enforced
// by the storage layer's length check.
const HexLen = 32

// FromHex parses a 32-character hex string into a Hash.
func FromHex(s string) (Hash, error) {
	if len(s) != HexLen {
		return Hash{}, cgerrors.Wrapf(cgerrors.ErrSchemaViolation,
			"position hash must be %d hex chars, got %d", HexLen, len(s))
	}
	raw, err := hex.DecodeString(s)
	if err != nil {
		return Hash{}, cgerrors.Wrap(err, "decoding position hash")
	}
	var h Hash
	for i := 0; i < 8; i++ {
		h.Hi = h.Hi<<8 | uint64(raw[i])
	}
	for i := 8; i < 16; i++ {
		h.Lo = h.Lo<<8 | uint64(raw[i])
	}
	return h, nil
}

func (h *Hash) xor(idx int) {
	c := zobristTable[idx]
	h.Hi ^= c.Hi
	h.Lo ^= c.Lo
}

// pieceIndex returns the polyglot piece-kind index: black pieces on even
// slots, white on odd, ordered pawn, knight, bishop, rook, queen, king.
func pieceIndex(colour pgntext.Colour, kind pgntext.Piece) int {
	zkind := int(kind) - int(pgntext.Pawn) // 0=pawn .. 5=king
	colourBit := 0
	if colour == pgntext.White {
		colourBit = 1
	}
	return zkind*2 + colourBit
}

// Hasher wraps ComputeHash. It holds no state, so each Hash call computes
// the hash from scratch.
type Hasher struct{}

// NewHasher returns a Hasher. It carries no state today but gives callers
// a stable construction point if the table ever grows incremental caching.
func NewHasher() *Hasher {
	return &Hasher{}
}

// Hash computes the position hash for the given board.
func (hs *Hasher) Hash(b *pgntext.Board) Hash {
	return ComputeHash(b)
}

// ComputeHash computes the 128-bit content hash of a board: the function of
// (placement, turn, castling, ep-target) described in §4.1. Two boards
// reached by different move orders but logically identical hash identically.
func ComputeHash(b *pgntext.Board) Hash {
	var h Hash
	for col := 0; col < pgntext.BoardSize; col++ {
		for rank := 0; rank < pgntext.BoardSize; rank++ {
			piece := b.Squares[col+pgntext.Hedge][rank+pgntext.Hedge]
			if piece == pgntext.Empty || piece == pgntext.Off {
				continue
			}
			colour := pgntext.ExtractColour(piece)
			kind := pgntext.ExtractPiece(piece)
			square := rank*pgntext.BoardSize + col
			h.xor(64*pieceIndex(colour, kind) + square)
		}
	}
	if b.WQueenCastle != 0 {
		h.xor(768)
	}
	if b.WKingCastle != 0 {
		h.xor(769)
	}
	if b.BQueenCastle != 0 {
		h.xor(770)
	}
	if b.BKingCastle != 0 {
		h.xor(771)
	}
	if b.EnPassant && epCaptureIsLegal(b) {
		file := int(b.EPCol - pgntext.ColBase)
		h.xor(772 + file)
	}
	if b.ToMove == pgntext.White {
		h.xor(780)
	}
	return h
}

// epCaptureIsLegal reports whether a pawn of the side to move sits adjacent
// to the en-passant target file, i.e. whether the ep bit actually affects
// the position rather than being a dead flag left over from the prior move.
func epCaptureIsLegal(b *pgntext.Board) bool {
	capturingPawn := pgntext.W(pgntext.Pawn)
	if b.ToMove == pgntext.Black {
		capturingPawn = pgntext.B(pgntext.Pawn)
	}
	rank := int(b.EPRank - pgntext.RankBase)
	col := int(b.EPCol - pgntext.ColBase)
	for _, df := range [...]int{-1, 1} {
		c := col + df
		if c < 0 || c >= pgntext.BoardSize {
			continue
		}
		if b.Squares[c+pgntext.Hedge][rank+pgntext.Hedge] == capturingPawn {
			return true
		}
	}
	return false
}

// rootHash is computed once and cached; the ingest pipeline and the FEN
// reconstructor both anchor their walks on it.
var rootHash Hash

// wantRootHash is the hash of the standard initial position, verified
// against _examples/original_source/pawnzobrist.py's test_ZobristHash
// (the zobristTable values are copied from that module's frozen
// constants, so this value is fixed across both implementations).
const wantRootHash = "3a653200920c4adb562ceff24c6af691"

func init() {
	root := pgntext.NewBoard()
	root.SetupInitialPosition()
	rootHash = ComputeHash(root)
	if got := rootHash.String(); got != wantRootHash {
		panic(fmt.Sprintf("zobrist: root position hash = %s, want %s (zobristTable has drifted from the original implementation's constants)", got, wantRootHash))
	}
}

// RootHash returns the fixed hash of the standard initial position.
func RootHash() Hash {
	return rootHash
}
