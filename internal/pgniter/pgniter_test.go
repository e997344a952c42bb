package pgniter

import (
	"strings"
	"testing"

	"github.com/balparda/chessgraph/internal/config"
	"github.com/balparda/chessgraph/internal/parser"
	"github.com/balparda/chessgraph/internal/position"
	"github.com/balparda/chessgraph/internal/zobrist"
)

const shortGame = `[Event "Test"]
[Site "?"]
[Date "2024.01.01"]
[Round "1"]
[White "Player1"]
[Black "Player2"]
[Result "1-0"]

1. e4 e5 2. Qh5 Nc6 3. Bc4 Nf6 4. Qxf7# 1-0
`

func TestWalk_ReturnsErrLibraryErrorWhenUpstreamParserFlaggedIt(t *testing.T) {
	p := parser.NewParser(strings.NewReader(shortGame), config.NewConfig())
	game, err := p.ParseGame()
	if err != nil {
		t.Fatalf("ParseGame failed: %v", err)
	}
	if err := Walk(game, true, func(Ply) error { return nil }); err == nil {
		t.Error("Walk(libraryErrored=true) succeeded, want an error")
	}
}

func TestWalk_VisitsEveryPlyAndEndsInCheckmate(t *testing.T) {
	p := parser.NewParser(strings.NewReader(shortGame), config.NewConfig())
	game, err := p.ParseGame()
	if err != nil {
		t.Fatalf("ParseGame failed: %v", err)
	}

	var plies []Ply
	if err := Walk(game, false, func(pl Ply) error {
		plies = append(plies, pl)
		return nil
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}

	if len(plies) != 7 {
		t.Fatalf("len(plies) = %d, want 7 (scholar's mate)", len(plies))
	}
	last := plies[len(plies)-1]
	if !last.Flags.Has(position.Checkmate) {
		t.Errorf("last ply flags = %v, want Checkmate set", last.Flags)
	}
	if plies[0].PrevHash != zobrist.RootHash() {
		t.Errorf("first ply's PrevHash = %s, want root", plies[0].PrevHash)
	}
	for i := 1; i < len(plies); i++ {
		if plies[i].PrevHash != plies[i-1].CurHash {
			t.Errorf("ply %d PrevHash does not chain from ply %d CurHash", i, i-1)
		}
	}
}

func TestWalk_AbortsWhenVisitReturnsError(t *testing.T) {
	p := parser.NewParser(strings.NewReader(shortGame), config.NewConfig())
	game, err := p.ParseGame()
	if err != nil {
		t.Fatalf("ParseGame failed: %v", err)
	}

	boom := errBoom("boom")
	seen := 0
	err = Walk(game, false, func(Ply) error {
		seen++
		if seen == 2 {
			return boom
		}
		return nil
	})
	if err != boom {
		t.Fatalf("Walk returned %v, want the injected error", err)
	}
	if seen != 2 {
		t.Errorf("visit called %d times, want exactly 2 before aborting", seen)
	}
}

type errBoom string

func (e errBoom) Error() string { return string(e) }

// fivefoldThenContinue shuffles both knights back and forth four times,
// reaching the starting position a fifth time at ply 16, then plays one
// more ply (17) past it.
const fivefoldThenContinue = `[Event "Test"]
[Site "?"]
[Date "2024.01.01"]
[Round "1"]
[White "Player1"]
[Black "Player2"]
[Result "*"]

1. Nf3 Nf6 2. Ng1 Ng8 3. Nf3 Nf6 4. Ng1 Ng8 5. Nf3 Nf6 6. Ng1 Ng8 7. Nf3 Nf6 8. Ng1 Ng8 9. Nf3 *
`

func TestWalk_SetsContinuedAfterMandatoryDrawOnTheVeryNextPly(t *testing.T) {
	p := parser.NewParser(strings.NewReader(fivefoldThenContinue), config.NewConfig())
	game, err := p.ParseGame()
	if err != nil {
		t.Fatalf("ParseGame failed: %v", err)
	}

	var plies []Ply
	if err := Walk(game, false, func(pl Ply) error {
		plies = append(plies, pl)
		return nil
	}); err != nil {
		t.Fatalf("Walk failed: %v", err)
	}
	if len(plies) != 17 {
		t.Fatalf("len(plies) = %d, want 17", len(plies))
	}

	ply16, ply17 := plies[15], plies[16]
	if !ply16.Extras.Has(position.Fivefold) {
		t.Fatalf("ply 16 extras = %v, want Fivefold set (the position repeats for the 5th time here)", ply16.Extras)
	}
	if ply16.Extras.Has(position.ContinuedAfterMandatoryDraw) {
		t.Errorf("ply 16 (the mandatory-draw ply itself) already carries ContinuedAfterMandatoryDraw, want it unset")
	}
	if !ply17.Extras.Has(position.ContinuedAfterMandatoryDraw) {
		t.Errorf("ply 17 (the very next ply after the mandatory-draw position) extras = %v, want ContinuedAfterMandatoryDraw set", ply17.Extras)
	}
}
