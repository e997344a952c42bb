package rules

import (
	"testing"

	"github.com/balparda/chessgraph/internal/pgntext"
)

func TestApplyMove_NullMove(t *testing.T) {
	tests := []struct {
		name         string
		fen          string
		wantToMove   pgntext.Colour
		wantEnPassnt bool
	}{
		{
			name:         "null move from initial position",
			fen:          InitialFEN,
			wantToMove:   pgntext.Black,
			wantEnPassnt: false,
		},
		{
			name:         "null move as black",
			fen:          "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantToMove:   pgntext.White,
			wantEnPassnt: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			move := &pgntext.Move{Class: pgntext.NullMove}
			ok := ApplyMove(board, move)

			if !ok {
				t.Errorf("ApplyMove() = false, want true")
			}
			if board.ToMove != tt.wantToMove {
				t.Errorf("board.ToMove = %v, want %v", board.ToMove, tt.wantToMove)
			}
			if board.EnPassant != tt.wantEnPassnt {
				t.Errorf("board.EnPassant = %v, want %v", board.EnPassant, tt.wantEnPassnt)
			}
		})
	}
}

func TestApplyMove_NilMove(t *testing.T) {
	board, err := NewBoardFromFEN(InitialFEN)
	if err != nil {
		t.Fatalf("NewBoardFromFEN failed: %v", err)
	}

	ok := ApplyMove(board, nil)
	if ok {
		t.Errorf("ApplyMove(nil) = true, want false")
	}
}

func TestApplyMove_Castling(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		moveClass pgntext.MoveClass
		wantOk    bool
		checkFn   func(*pgntext.Board) bool
	}{
		{
			name:      "white kingside castle",
			fen:       "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moveClass: pgntext.KingsideCastle,
			wantOk:    true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('g', '1') == pgntext.W(pgntext.King) &&
					b.Get('f', '1') == pgntext.W(pgntext.Rook) &&
					b.Get('e', '1') == pgntext.Empty &&
					b.Get('h', '1') == pgntext.Empty &&
					b.ToMove == pgntext.Black
			},
		},
		{
			name:      "white queenside castle",
			fen:       "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			moveClass: pgntext.QueensideCastle,
			wantOk:    true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('c', '1') == pgntext.W(pgntext.King) &&
					b.Get('d', '1') == pgntext.W(pgntext.Rook) &&
					b.Get('e', '1') == pgntext.Empty &&
					b.Get('a', '1') == pgntext.Empty &&
					b.ToMove == pgntext.Black
			},
		},
		{
			name:      "black kingside castle",
			fen:       "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			moveClass: pgntext.KingsideCastle,
			wantOk:    true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('g', '8') == pgntext.B(pgntext.King) &&
					b.Get('f', '8') == pgntext.B(pgntext.Rook) &&
					b.Get('e', '8') == pgntext.Empty &&
					b.Get('h', '8') == pgntext.Empty &&
					b.ToMove == pgntext.White
			},
		},
		{
			name:      "black queenside castle",
			fen:       "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R b KQkq - 0 1",
			moveClass: pgntext.QueensideCastle,
			wantOk:    true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('c', '8') == pgntext.B(pgntext.King) &&
					b.Get('d', '8') == pgntext.B(pgntext.Rook) &&
					b.Get('e', '8') == pgntext.Empty &&
					b.Get('a', '8') == pgntext.Empty &&
					b.ToMove == pgntext.White
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			move := &pgntext.Move{Class: tt.moveClass}
			ok := ApplyMove(board, move)

			if ok != tt.wantOk {
				t.Errorf("ApplyMove() = %v, want %v", ok, tt.wantOk)
			}
			if ok && tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("checkFn failed after ApplyMove")
			}
		})
	}
}

func TestApplyMove_PawnMoves(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    *pgntext.Move
		wantOk  bool
		checkFn func(*pgntext.Board) bool
	}{
		{
			name: "pawn single move e2-e3",
			fen:  InitialFEN,
			move: &pgntext.Move{
				Class:    pgntext.PawnMove,
				FromCol:  'e',
				FromRank: '2',
				ToCol:    'e',
				ToRank:   '3',
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('e', '3') == pgntext.W(pgntext.Pawn) &&
					b.Get('e', '2') == pgntext.Empty
			},
		},
		{
			name: "pawn double move e2-e4",
			fen:  InitialFEN,
			move: &pgntext.Move{
				Class:    pgntext.PawnMove,
				FromCol:  'e',
				FromRank: '2',
				ToCol:    'e',
				ToRank:   '4',
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('e', '4') == pgntext.W(pgntext.Pawn) &&
					b.Get('e', '2') == pgntext.Empty &&
					b.EnPassant == true &&
					b.EPCol == 'e'
			},
		},
		{
			name: "pawn capture",
			fen:  "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			move: &pgntext.Move{
				Class:         pgntext.PawnMove,
				FromCol:       'e',
				FromRank:      '4',
				ToCol:         'd',
				ToRank:        '5',
				CapturedPiece: pgntext.Pawn,
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('d', '5') == pgntext.W(pgntext.Pawn) &&
					b.Get('e', '4') == pgntext.Empty
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			ok := ApplyMove(board, tt.move)

			if ok != tt.wantOk {
				t.Errorf("ApplyMove() = %v, want %v", ok, tt.wantOk)
			}
			if ok && tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("checkFn failed after ApplyMove")
			}
		})
	}
}

func TestApplyMove_EnPassant(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    *pgntext.Move
		wantOk  bool
		checkFn func(*pgntext.Board) bool
	}{
		{
			name: "white en passant capture",
			fen:  "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
			move: &pgntext.Move{
				Class:         pgntext.EnPassantPawnMove,
				FromCol:       'f',
				FromRank:      '5',
				ToCol:         'e',
				ToRank:        '6',
				CapturedPiece: pgntext.Pawn,
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('e', '6') == pgntext.W(pgntext.Pawn) &&
					b.Get('f', '5') == pgntext.Empty &&
					b.Get('e', '5') == pgntext.Empty // Captured pawn removed
			},
		},
		{
			name: "black en passant capture",
			fen:  "rnbqkbnr/ppppp1pp/8/8/4Pp2/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
			move: &pgntext.Move{
				Class:         pgntext.EnPassantPawnMove,
				FromCol:       'f',
				FromRank:      '4',
				ToCol:         'e',
				ToRank:        '3',
				CapturedPiece: pgntext.Pawn,
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('e', '3') == pgntext.B(pgntext.Pawn) &&
					b.Get('f', '4') == pgntext.Empty &&
					b.Get('e', '4') == pgntext.Empty // Captured pawn removed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			ok := ApplyMove(board, tt.move)

			if ok != tt.wantOk {
				t.Errorf("ApplyMove() = %v, want %v", ok, tt.wantOk)
			}
			if ok && tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("checkFn failed after ApplyMove")
			}
		})
	}
}

func TestApplyMove_Promotion(t *testing.T) {
	tests := []struct {
		name       string
		fen        string
		move       *pgntext.Move
		wantOk     bool
		wantPiece  pgntext.Piece
		wantSquare struct {
			col  pgntext.Col
			rank pgntext.Rank
		}
	}{
		{
			name: "white pawn promotes to queen",
			fen:  "8/P7/8/8/8/8/8/4K2k w - - 0 1",
			move: &pgntext.Move{
				Class:         pgntext.PawnMoveWithPromotion,
				FromCol:       'a',
				FromRank:      '7',
				ToCol:         'a',
				ToRank:        '8',
				PromotedPiece: pgntext.Queen,
			},
			wantOk:    true,
			wantPiece: pgntext.W(pgntext.Queen),
			wantSquare: struct {
				col  pgntext.Col
				rank pgntext.Rank
			}{'a', '8'},
		},
		{
			name: "white pawn promotes to knight",
			fen:  "8/P7/8/8/8/8/8/4K2k w - - 0 1",
			move: &pgntext.Move{
				Class:         pgntext.PawnMoveWithPromotion,
				FromCol:       'a',
				FromRank:      '7',
				ToCol:         'a',
				ToRank:        '8',
				PromotedPiece: pgntext.Knight,
			},
			wantOk:    true,
			wantPiece: pgntext.W(pgntext.Knight),
			wantSquare: struct {
				col  pgntext.Col
				rank pgntext.Rank
			}{'a', '8'},
		},
		{
			name: "black pawn promotes to queen",
			fen:  "4K2k/8/8/8/8/8/p7/8 b - - 0 1",
			move: &pgntext.Move{
				Class:         pgntext.PawnMoveWithPromotion,
				FromCol:       'a',
				FromRank:      '2',
				ToCol:         'a',
				ToRank:        '1',
				PromotedPiece: pgntext.Queen,
			},
			wantOk:    true,
			wantPiece: pgntext.B(pgntext.Queen),
			wantSquare: struct {
				col  pgntext.Col
				rank pgntext.Rank
			}{'a', '1'},
		},
		{
			name: "promotion with capture",
			fen:  "1n6/P7/8/8/8/8/8/4K2k w - - 0 1",
			move: &pgntext.Move{
				Class:         pgntext.PawnMoveWithPromotion,
				FromCol:       'a',
				FromRank:      '7',
				ToCol:         'b',
				ToRank:        '8',
				PromotedPiece: pgntext.Queen,
				CapturedPiece: pgntext.Knight,
			},
			wantOk:    true,
			wantPiece: pgntext.W(pgntext.Queen),
			wantSquare: struct {
				col  pgntext.Col
				rank pgntext.Rank
			}{'b', '8'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			ok := ApplyMove(board, tt.move)

			if ok != tt.wantOk {
				t.Errorf("ApplyMove() = %v, want %v", ok, tt.wantOk)
			}
			if ok {
				got := board.Get(tt.wantSquare.col, tt.wantSquare.rank)
				if got != tt.wantPiece {
					t.Errorf("board.Get(%c, %c) = %v, want %v",
						tt.wantSquare.col, tt.wantSquare.rank, got, tt.wantPiece)
				}
			}
		})
	}
}

func TestApplyMove_PieceMoves(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		move    *pgntext.Move
		wantOk  bool
		checkFn func(*pgntext.Board) bool
	}{
		{
			name: "knight move Nf3",
			fen:  InitialFEN,
			move: &pgntext.Move{
				Class:       pgntext.PieceMove,
				PieceToMove: pgntext.Knight,
				FromCol:     'g',
				FromRank:    '1',
				ToCol:       'f',
				ToRank:      '3',
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('f', '3') == pgntext.W(pgntext.Knight) &&
					b.Get('g', '1') == pgntext.Empty
			},
		},
		{
			name: "bishop move Bc4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 1 2",
			move: &pgntext.Move{
				Class:       pgntext.PieceMove,
				PieceToMove: pgntext.Bishop,
				FromCol:     'f',
				FromRank:    '1',
				ToCol:       'c',
				ToRank:      '4',
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('c', '4') == pgntext.W(pgntext.Bishop) &&
					b.Get('f', '1') == pgntext.Empty
			},
		},
		{
			name: "rook move Ra3",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1",
			move: &pgntext.Move{
				Class:       pgntext.PieceMove,
				PieceToMove: pgntext.Rook,
				FromCol:     'a',
				FromRank:    '1',
				ToCol:       'a',
				ToRank:      '3',
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('a', '3') == pgntext.W(pgntext.Rook) &&
					b.Get('a', '1') == pgntext.Empty
			},
		},
		{
			name: "queen move Qh5",
			fen:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
			move: &pgntext.Move{
				Class:       pgntext.PieceMove,
				PieceToMove: pgntext.Queen,
				FromCol:     'd',
				FromRank:    '1',
				ToCol:       'h',
				ToRank:      '5',
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('h', '5') == pgntext.W(pgntext.Queen) &&
					b.Get('d', '1') == pgntext.Empty
			},
		},
		{
			name: "king move Kf1",
			fen:  "rnbqkbnr/pppp1ppp/8/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 2",
			move: &pgntext.Move{
				Class:       pgntext.PieceMove,
				PieceToMove: pgntext.King,
				FromCol:     'e',
				FromRank:    '1',
				ToCol:       'f',
				ToRank:      '1',
			},
			wantOk: true,
			checkFn: func(b *pgntext.Board) bool {
				return b.Get('f', '1') == pgntext.W(pgntext.King) &&
					b.Get('e', '1') == pgntext.Empty &&
					b.WKingCol == 'f' && b.WKingRank == '1'
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			ok := ApplyMove(board, tt.move)

			if ok != tt.wantOk {
				t.Errorf("ApplyMove() = %v, want %v", ok, tt.wantOk)
			}
			if ok && tt.checkFn != nil && !tt.checkFn(board) {
				t.Errorf("checkFn failed after ApplyMove")
			}
		})
	}
}

func TestIsInCheck(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		colour      pgntext.Colour
		wantInCheck bool
	}{
		{
			name:        "initial position not in check",
			fen:         InitialFEN,
			colour:      pgntext.White,
			wantInCheck: false,
		},
		{
			name:        "initial position black not in check",
			fen:         InitialFEN,
			colour:      pgntext.Black,
			wantInCheck: false,
		},
		{
			name:        "scholar's mate - black in check",
			fen:         "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
			colour:      pgntext.Black,
			wantInCheck: true,
		},
		{
			name:        "white king in check from rook on same rank",
			fen:         "8/8/8/8/8/8/8/r3K3 w - - 0 1",
			colour:      pgntext.White,
			wantInCheck: true,
		},
		{
			name:        "white king in check from bishop on diagonal",
			fen:         "8/8/8/8/8/8/3b4/4K3 w - - 0 1",
			colour:      pgntext.White,
			wantInCheck: true,
		},
		{
			name:        "white king in check from knight",
			fen:         "8/8/8/8/8/5n2/8/4K3 w - - 0 1",
			colour:      pgntext.White,
			wantInCheck: true,
		},
		{
			name:        "white king in check from pawn",
			fen:         "8/8/8/8/8/3p4/8/4K3 w - - 0 1",
			colour:      pgntext.White,
			wantInCheck: false, // Pawn on d3 doesn't attack e1
		},
		{
			name:        "white king attacked by pawn on diagonal",
			fen:         "8/8/8/8/8/8/5p2/4K3 w - - 0 1",
			colour:      pgntext.White,
			wantInCheck: true,
		},
		{
			name:        "queen on h1 not giving check",
			fen:         "4k3/8/8/8/8/8/8/4K2Q w - - 0 1",
			colour:      pgntext.Black,
			wantInCheck: false, // Queen on h1 doesn't attack e8
		},
		{
			name:        "queen giving check on file",
			fen:         "4k3/8/8/8/4Q3/8/8/4K3 w - - 0 1",
			colour:      pgntext.Black,
			wantInCheck: true, // Queen on e4 attacks e8
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			got := IsInCheck(board, tt.colour)
			if got != tt.wantInCheck {
				t.Errorf("IsInCheck() = %v, want %v", got, tt.wantInCheck)
			}
		})
	}
}

func TestIsCheckmate(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		wantMate bool
	}{
		{
			name:     "initial position - not mate",
			fen:      InitialFEN,
			wantMate: false,
		},
		{
			name:     "fool's mate",
			fen:      "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			wantMate: true,
		},
		{
			name:     "scholar's mate",
			fen:      "r1bqkb1r/pppp1Qpp/2n2n2/4p3/2B1P3/8/PPPP1PPP/RNB1K1NR b KQkq - 0 4",
			wantMate: true,
		},
		{
			name:     "back rank mate",
			fen:      "8/8/8/8/8/8/5PPP/4r1K1 w - - 0 1",
			wantMate: true,
		},
		{
			name:     "smothered mate",
			fen:      "6rk/5Npp/8/8/8/8/8/4K3 b - - 0 1",
			wantMate: true,
		},
		{
			name:     "check but can block",
			fen:      "4k3/8/8/8/8/8/1R6/r3K3 w - - 0 1",
			wantMate: false,
		},
		{
			name:     "check but king can move",
			fen:      "8/8/8/8/8/8/8/r3K3 w - - 0 1",
			wantMate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			got := IsCheckmate(board)
			if got != tt.wantMate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.wantMate)
			}
		})
	}
}

func TestIsStalemate(t *testing.T) {
	tests := []struct {
		name          string
		fen           string
		wantStalemate bool
	}{
		{
			name:          "initial position - not stalemate",
			fen:           InitialFEN,
			wantStalemate: false,
		},
		{
			name:          "classic stalemate - king cornered by queen",
			fen:           "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			wantStalemate: true,
		},
		{
			name:          "stalemate - king in corner",
			fen:           "k7/2Q5/1K6/8/8/8/8/8 b - - 0 1",
			wantStalemate: true,
		},
		{
			name:          "king vs king and bishop - insufficient but not stalemate",
			fen:           "8/8/8/4k3/8/8/3B4/4K3 b - - 0 1",
			wantStalemate: false,
		},
		{
			name:          "checkmate is not stalemate",
			fen:           "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			wantStalemate: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			got := IsStalemate(board)
			if got != tt.wantStalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.wantStalemate)
			}
		})
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name           string
		fen            string
		colour         pgntext.Colour
		wantLegalMoves bool
	}{
		{
			name:           "initial position - white has moves",
			fen:            InitialFEN,
			colour:         pgntext.White,
			wantLegalMoves: true,
		},
		{
			name:           "initial position - black has moves",
			fen:            InitialFEN,
			colour:         pgntext.Black,
			wantLegalMoves: true,
		},
		{
			name:           "stalemate - no legal moves",
			fen:            "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			colour:         pgntext.Black,
			wantLegalMoves: false,
		},
		{
			name:           "checkmate - no legal moves",
			fen:            "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3",
			colour:         pgntext.White,
			wantLegalMoves: false,
		},
		{
			name:           "king only - has moves",
			fen:            "8/8/8/4k3/8/8/8/4K3 w - - 0 1",
			colour:         pgntext.White,
			wantLegalMoves: true,
		},
		{
			name:           "pinned piece cannot move away from pin line",
			fen:            "4k3/8/8/b7/8/8/3P4/4K3 w - - 0 1", // Pawn pinned by bishop
			colour:         pgntext.White,
			wantLegalMoves: true, // King can still move
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) failed: %v", tt.fen, err)
			}

			got := HasLegalMoves(board, tt.colour)
			if got != tt.wantLegalMoves {
				t.Errorf("HasLegalMoves() = %v, want %v", got, tt.wantLegalMoves)
			}
		})
	}
}

// TestHelperFunctions tests internal helper functions
func TestAbs(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{1, 1},
		{-1, 1},
		{5, 5},
		{-5, 5},
	}

	for _, tt := range tests {
		got := abs(tt.input)
		if got != tt.want {
			t.Errorf("abs(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}

func TestSign(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{5, 1},
		{-5, -1},
	}

	for _, tt := range tests {
		got := sign(tt.input)
		if got != tt.want {
			t.Errorf("sign(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
