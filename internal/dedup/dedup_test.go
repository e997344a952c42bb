package dedup

import (
	"context"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/balparda/chessgraph/internal/config"
	"github.com/balparda/chessgraph/internal/ply"
	"github.com/balparda/chessgraph/internal/position"
	"github.com/balparda/chessgraph/internal/store"
	"github.com/balparda/chessgraph/internal/zobrist"
)

func longPlyList(n int) []ply.Encoded {
	out := make([]ply.Encoded, n)
	for i := range out {
		out[i] = ply.Encoded(i%64*100 + (i+1)%64)
	}
	return out
}

// TestRun_LongGameDuplicate implements spec scenario 6: two games ending
// at the same vertex with identical, long (≥ hard) ply sequences are
// unconditionally merged, and their disagreeing headers show up in the
// merge as a `|`-joined value with an issue recorded.
func TestRun_LongGameDuplicate(t *testing.T) {
	s, err := store.Open(":memory:", false, zerolog.Nop())
	if err != nil {
		t.Fatalf("store.Open failed: %v", err)
	}
	defer s.Close()

	ctx := context.Background()
	terminal := zobrist.Hash{Hi: 1, Lo: 2}
	plies := longPlyList(config.DefaultHardPlyLimit)

	headersA := map[string]string{"white": "Carlsen, Magnus", "black": "Caruana, Fabiano", "event": "Event A", "result": "1-0"}
	headersB := map[string]string{"white": "magnus carlsen", "black": "fabiano caruana", "event": "Event B", "result": "1-0"}

	if err := s.InsertGameOKWithTerminal(ctx, strings.Repeat("a", 64), terminal, position.Flags(0), position.Extras(0), plies, headersA); err != nil {
		t.Fatalf("InsertGameOKWithTerminal(a) failed: %v", err)
	}
	if err := s.InsertGameOKWithTerminal(ctx, strings.Repeat("b", 64), terminal, position.Flags(0), position.Extras(0), plies, headersB); err != nil {
		t.Fatalf("InsertGameOKWithTerminal(b) failed: %v", err)
	}

	actions, err := Run(ctx, s, Thresholds{Soft: config.DefaultSoftPlyLimit, Hard: config.DefaultHardPlyLimit})
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(actions) != 1 {
		t.Fatalf("len(actions) = %d, want 1", len(actions))
	}

	aID, bID := strings.Repeat("a", 64), strings.Repeat("b", 64)
	if actions[0].PrimaryID != aID {
		t.Errorf("PrimaryID = %q, want %q (lexicographically smallest)", actions[0].PrimaryID, aID)
	}
	if actions[0].DupID != bID {
		t.Errorf("DupID = %q, want %q", actions[0].DupID, bID)
	}

	merged, issues, err := s.MergedHeaders(ctx, aID)
	if err != nil {
		t.Fatalf("MergedHeaders failed: %v", err)
	}
	if merged["event"] != "Event A | Event B" {
		t.Errorf("merged event = %q, want a `|`-joined conflict", merged["event"])
	}
	if len(issues) == 0 {
		t.Error("expected at least one merge issue for the conflicting event header")
	}
}

func TestNormalizePlayer(t *testing.T) {
	tests := []struct{ a, b string }{
		{"Carlsen, Magnus", "magnus carlsen"},
		{"Caruana, F.", "f caruana"},
	}
	for _, tt := range tests {
		if got, want := normalizePlayer(tt.a), normalizePlayer(tt.b); got != want {
			t.Errorf("normalizePlayer(%q) = %q, normalizePlayer(%q) = %q, want equal", tt.a, got, tt.b, want)
		}
	}
}
