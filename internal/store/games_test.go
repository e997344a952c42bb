package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/ply"
	"github.com/balparda/chessgraph/internal/position"
	"github.com/balparda/chessgraph/internal/zobrist"
)

func TestInsertGameOKWithTerminal_RoundTrip(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	end := zobrist.Hash{Hi: 5, Lo: 6}
	plies := []ply.Encoded{101, 2536}
	headers := map[string]string{"white": "Alice", "black": "Bob", "result": "1-0"}

	id := fixedID('a')
	if err := s.InsertGameOKWithTerminal(ctx, id, end, position.Checkmate, 0, plies, headers); err != nil {
		t.Fatalf("InsertGameOKWithTerminal failed: %v", err)
	}

	row, err := s.GetGame(ctx, id)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if row.EndHash != end {
		t.Errorf("EndHash = %s, want %s", row.EndHash, end)
	}
	if diff := cmp.Diff(plies, row.Plies); diff != "" {
		t.Errorf("Plies mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(headers, row.Headers); diff != "" {
		t.Errorf("Headers mismatch (-want +got):\n%s", diff)
	}
	if row.ErrorCategory != 0 {
		t.Errorf("ErrorCategory = %d, want 0", row.ErrorCategory)
	}

	// The terminal position must carry the game id (§5's "end-vertex never
	// lacks the game id that produced it").
	posRow, err := s.GetPosition(ctx, end)
	if err != nil {
		t.Fatalf("GetPosition(end) failed: %v", err)
	}
	if _, ok := posRow.GameIDs[id]; !ok {
		t.Errorf("terminal position %s missing game id %s", end, id)
	}
}

func TestInsertGameError_RecordsCategoryAndIsErrorPartitioned(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	id := fixedID('b')

	if err := s.InsertGameError(ctx, id, map[string]string{"white": "X"}, cgerrors.CategoryEmptyGame, "[Event \"?\"]\n*\n", "empty game"); err != nil {
		t.Fatalf("InsertGameError failed: %v", err)
	}

	row, err := s.GetGame(ctx, id)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if row.ErrorCategory != cgerrors.CategoryEmptyGame {
		t.Errorf("ErrorCategory = %d, want CategoryEmptyGame", row.ErrorCategory)
	}
	if row.EndHash != (zobrist.Hash{}) {
		t.Errorf("EndHash = %s, want zero value for an error game", row.EndHash)
	}

	ok, errored, err := s.PartitionOKVsError(ctx)
	if err != nil {
		t.Fatalf("PartitionOKVsError failed: %v", err)
	}
	if ok != 0 || errored != 1 {
		t.Errorf("PartitionOKVsError = (%d, %d), want (0, 1)", ok, errored)
	}
}

func TestKnownGameID_CachesUntilRefreshed(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	id := fixedID('c')

	known, err := s.KnownGameID(ctx, id)
	if err != nil {
		t.Fatalf("KnownGameID failed: %v", err)
	}
	if known {
		t.Fatal("KnownGameID reported true before the game exists")
	}

	if err := s.InsertGameError(ctx, id, nil, cgerrors.CategoryEmptyGame, "", ""); err != nil {
		t.Fatalf("InsertGameError failed: %v", err)
	}

	// The cache was already primed by the first call and InsertGameError
	// does not invalidate it; only a fresh SetAllGameIDs call picks up the
	// new row, mirroring the ingest pipeline's own re-check-inside-the-
	// transaction pattern rather than trusting this cache as authoritative.
	known, err = s.KnownGameID(ctx, id)
	if err != nil {
		t.Fatalf("KnownGameID failed: %v", err)
	}
	if known {
		t.Error("KnownGameID reported true from a stale cache, want false")
	}

	if _, err := s.SetAllGameIDs(ctx); err != nil {
		t.Fatalf("SetAllGameIDs failed: %v", err)
	}
	known, err = s.KnownGameID(ctx, id)
	if err != nil {
		t.Fatalf("KnownGameID failed: %v", err)
	}
	if !known {
		t.Error("KnownGameID reported false after a refresh, want true")
	}
}

func TestGetGame_NotFound(t *testing.T) {
	s := openTestStore(t)
	_, err := s.GetGame(context.Background(), fixedID('z'))
	if !errors.Is(err, cgerrors.ErrNotFound) {
		t.Errorf("GetGame(unknown) = %v, want ErrNotFound", err)
	}
}

// fixedID returns a 64-character id of the given byte, satisfying the
// games table's CHECK (length(id) = 64) constraint.
func fixedID(b byte) string {
	buf := make([]byte, 64)
	for i := range buf {
		buf[i] = b
	}
	return string(buf)
}
