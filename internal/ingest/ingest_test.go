package ingest

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/balparda/chessgraph/internal/config"
	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/parser"
	"github.com/balparda/chessgraph/internal/pgntext"
	"github.com/balparda/chessgraph/internal/store"
	"github.com/balparda/chessgraph/internal/zobrist"
)

func parseTestGame(t *testing.T, pgn string) *pgntext.Game {
	t.Helper()
	p := parser.NewParser(strings.NewReader(pgn), config.NewConfig())
	game, err := p.ParseGame()
	if err != nil {
		t.Fatalf("ParseGame error: %v", err)
	}
	if game == nil {
		t.Fatal("ParseGame returned nil")
	}
	return game
}

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(":memory:", false, zerolog.Nop())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

const foolsMate = `[Event "Test"]
[Site "?"]
[Date "2024.01.01"]
[Round "1"]
[White "Player1"]
[Black "Player2"]
[Result "*"]

1. f3 e5 2. g4 Qh4# *
`

func TestIngest_OKGame(t *testing.T) {
	s := newTestStore(t)
	p := New(s, zerolog.Nop())
	ctx := context.Background()

	game := parseTestGame(t, foolsMate)
	res, err := p.Ingest(ctx, foolsMate, game, false)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if res.AlreadyKnown {
		t.Fatal("first ingest reported AlreadyKnown")
	}
	if res.Plies != 4 {
		t.Errorf("Plies = %d, want 4", res.Plies)
	}
	if res.ErrorCategory != 0 {
		t.Errorf("ErrorCategory = %d, want 0", res.ErrorCategory)
	}

	stored, err := s.GetGame(ctx, res.GameID)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if got := stored.Headers["result"]; got != "0-1" {
		t.Errorf("result = %q, want 0-1 (inferred from checkmate)", got)
	}

	// Re-ingesting the identical text is a no-op.
	res2, err := p.Ingest(ctx, foolsMate, game, false)
	if err != nil {
		t.Fatalf("second Ingest failed: %v", err)
	}
	if !res2.AlreadyKnown {
		t.Error("second ingest of the same text did not report AlreadyKnown")
	}
	if diff := cmp.Diff(res.GameID, res2.GameID); diff != "" {
		t.Errorf("game id changed across ingests (-first +second):\n%s", diff)
	}
}

const emptyGame = `[Event "Test"]
[Site "?"]
[Date "2024.01.01"]
[Round "1"]
[White "Player1"]
[Black "Player2"]
[Result "*"]

*
`

func TestIngest_EmptyGame(t *testing.T) {
	s := newTestStore(t)
	p := New(s, zerolog.Nop())
	ctx := context.Background()

	game := parseTestGame(t, emptyGame)
	res, err := p.Ingest(ctx, emptyGame, game, false)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if res.ErrorCategory != cgerrors.CategoryEmptyGame {
		t.Errorf("ErrorCategory = %d, want CategoryEmptyGame", res.ErrorCategory)
	}

	stored, err := s.GetGame(ctx, res.GameID)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if stored.ErrorCategory != cgerrors.CategoryEmptyGame {
		t.Errorf("stored ErrorCategory = %d, want CategoryEmptyGame", stored.ErrorCategory)
	}
}

func TestIngest_LibraryError(t *testing.T) {
	s := newTestStore(t)
	p := New(s, zerolog.Nop())
	ctx := context.Background()

	game := parseTestGame(t, foolsMate)
	res, err := p.Ingest(ctx, foolsMate, game, true)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if res.ErrorCategory != cgerrors.CategoryLibraryError {
		t.Errorf("ErrorCategory = %d, want CategoryLibraryError", res.ErrorCategory)
	}
}

// a3Only pins scenario 1 of spec.md §8: ingesting `1. a3` alone produces
// exactly one new position beyond the root, whose hash and whose single
// encoded ply match the literal values recorded there.
const a3Only = `[Event "Test"]
[Site "?"]
[Date "2024.01.01"]
[Round "1"]
[White "Player1"]
[Black "Player2"]
[Result "*"]

1. a3 *
`

func TestIngest_A3OnlyMatchesTheLiteralPinnedScenario(t *testing.T) {
	s := newTestStore(t)
	p := New(s, zerolog.Nop())
	ctx := context.Background()

	root := zobrist.RootHash()
	rootBefore, err := s.GetPosition(ctx, root)
	if err != nil {
		t.Fatalf("GetPosition(root) before ingest failed: %v", err)
	}

	game := parseTestGame(t, a3Only)
	res, err := p.Ingest(ctx, a3Only, game, false)
	if err != nil {
		t.Fatalf("Ingest failed: %v", err)
	}
	if res.ErrorCategory != 0 {
		t.Fatalf("ErrorCategory = %d, want 0", res.ErrorCategory)
	}
	if res.Plies != 1 {
		t.Fatalf("Plies = %d, want 1", res.Plies)
	}

	stored, err := s.GetGame(ctx, res.GameID)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if len(stored.Plies) != 1 || stored.Plies[0] != 816 {
		t.Errorf("Plies = %v, want a single encoded ply of 816", stored.Plies)
	}
	if got, want := stored.EndHash.String(), "09e41bd5282ebaaf9f7a3e7c866e5382"; got != want {
		t.Errorf("terminal position hash = %s, want %s", got, want)
	}

	terminal, err := s.GetPosition(ctx, stored.EndHash)
	if err != nil {
		t.Fatalf("GetPosition(terminal) failed: %v", err)
	}
	if _, ok := terminal.GameIDs[res.GameID]; !ok {
		t.Errorf("terminal position's game ids = %v, want it to contain %s", terminal.GameIDs, res.GameID)
	}

	rootAfter, err := s.GetPosition(ctx, root)
	if err != nil {
		t.Fatalf("GetPosition(root) after ingest failed: %v", err)
	}
	if diff := cmp.Diff(rootBefore.GameIDs, rootAfter.GameIDs); diff != "" {
		t.Errorf("root position's game ids changed (-before +after):\n%s", diff)
	}
}

func TestGameID_IsStableAndContentAddressed(t *testing.T) {
	a := GameID("same text")
	b := GameID("same text")
	c := GameID("different text")
	if a != b {
		t.Error("GameID is not deterministic for identical input")
	}
	if a == c {
		t.Error("GameID collided for different input")
	}
	if len(a) != 64 {
		t.Errorf("len(GameID) = %d, want 64", len(a))
	}
}
