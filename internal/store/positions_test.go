package store

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/position"
	"github.com/balparda/chessgraph/internal/verdict"
	"github.com/balparda/chessgraph/internal/zobrist"
)

func TestInsertPosition_NewThenExisting(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	h := zobrist.Hash{Hi: 10, Lo: 20}

	isNew, err := s.InsertPosition(ctx, h, position.BlackToMove, position.Threefold, "game-a")
	if err != nil {
		t.Fatalf("first InsertPosition failed: %v", err)
	}
	if !isNew {
		t.Error("first InsertPosition reported isNew = false, want true")
	}

	isNew, err = s.InsertPosition(ctx, h, position.BlackToMove, position.Fivefold, "game-b")
	if err != nil {
		t.Fatalf("second InsertPosition failed: %v", err)
	}
	if isNew {
		t.Error("second InsertPosition reported isNew = true, want false")
	}

	row, err := s.GetPosition(ctx, h)
	if err != nil {
		t.Fatalf("GetPosition failed: %v", err)
	}
	wantGames := map[string]struct{}{"game-a": {}, "game-b": {}}
	if diff := cmp.Diff(wantGames, row.GameIDs); diff != "" {
		t.Errorf("GameIDs mismatch (-want +got):\n%s", diff)
	}
	wantExtras := map[position.Extras]struct{}{position.Threefold: {}, position.Fivefold: {}}
	if diff := cmp.Diff(wantExtras, row.Extras); diff != "" {
		t.Errorf("Extras mismatch (-want +got):\n%s", diff)
	}
}

func TestInsertEdge_ConflictingToHashRejected(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	a := zobrist.Hash{Hi: 1, Lo: 1}
	b := zobrist.Hash{Hi: 2, Lo: 2}
	c := zobrist.Hash{Hi: 3, Lo: 3}
	for _, h := range []zobrist.Hash{a, b, c} {
		if _, err := s.InsertPosition(ctx, h, position.WhiteToMove, 0, ""); err != nil {
			t.Fatalf("InsertPosition(%s) failed: %v", h, err)
		}
	}

	if err := s.InsertEdge(ctx, a, 101, b); err != nil {
		t.Fatalf("first InsertEdge failed: %v", err)
	}
	// Re-inserting the identical edge is a no-op.
	if err := s.InsertEdge(ctx, a, 101, b); err != nil {
		t.Fatalf("idempotent InsertEdge failed: %v", err)
	}
	// The same (from, ply) key pointing elsewhere is a schema violation.
	if err := s.InsertEdge(ctx, a, 101, c); !errors.Is(err, cgerrors.ErrSchemaViolation) {
		t.Errorf("conflicting InsertEdge = %v, want ErrSchemaViolation", err)
	}
}

func TestUpdateEvaluation_RequiresExistingRow(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	h := zobrist.Hash{Hi: 7, Lo: 7}

	if err := s.UpdateEvaluation(ctx, h, verdict.Verdict{Depth: 12}); !errors.Is(err, cgerrors.ErrNotFound) {
		t.Errorf("UpdateEvaluation on unknown hash = %v, want ErrNotFound", err)
	}

	if _, err := s.InsertPosition(ctx, h, position.WhiteToMove, 0, ""); err != nil {
		t.Fatalf("InsertPosition failed: %v", err)
	}
	v := verdict.Verdict{Depth: 12, BestMove: 2214, Mate: 0, Score: 35}
	if err := s.UpdateEvaluation(ctx, h, v); err != nil {
		t.Fatalf("UpdateEvaluation failed: %v", err)
	}

	row, err := s.GetPosition(ctx, h)
	if err != nil {
		t.Fatalf("GetPosition failed: %v", err)
	}
	if diff := cmp.Diff(&v, row.Verdict); diff != "" {
		t.Errorf("Verdict mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiGamePositions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	h := zobrist.Hash{Hi: 9, Lo: 9}

	if _, err := s.InsertPosition(ctx, h, position.WhiteToMove, 0, "game-a"); err != nil {
		t.Fatalf("InsertPosition failed: %v", err)
	}
	if _, err := s.InsertPosition(ctx, h, position.WhiteToMove, 0, "game-b"); err != nil {
		t.Fatalf("InsertPosition failed: %v", err)
	}

	candidates, err := s.MultiGamePositions(ctx)
	if err != nil {
		t.Fatalf("MultiGamePositions failed: %v", err)
	}
	ids, ok := candidates[h.String()]
	if !ok {
		t.Fatalf("MultiGamePositions missing %s", h)
	}
	if len(ids) != 2 {
		t.Errorf("len(ids) = %d, want 2", len(ids))
	}
}

func TestIncomingEdge(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	root := zobrist.RootHash()
	target := zobrist.Hash{Hi: 42, Lo: 42}

	if _, err := s.InsertPosition(ctx, target, position.BlackToMove, 0, ""); err != nil {
		t.Fatalf("InsertPosition failed: %v", err)
	}
	if err := s.InsertEdge(ctx, root, 101, target); err != nil {
		t.Fatalf("InsertEdge failed: %v", err)
	}

	from, ply, ok, err := s.IncomingEdge(ctx, target)
	if err != nil {
		t.Fatalf("IncomingEdge failed: %v", err)
	}
	if !ok || from != root || ply != 101 {
		t.Errorf("IncomingEdge = (%s, %d, %v), want (%s, 101, true)", from, ply, ok, root)
	}

	_, _, ok, err = s.IncomingEdge(ctx, root)
	if err != nil {
		t.Fatalf("IncomingEdge(root) failed: %v", err)
	}
	if ok {
		t.Error("IncomingEdge(root) reported an incoming edge, want none")
	}
}

func TestBranchingPositions(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()
	root := zobrist.RootHash()
	a := zobrist.Hash{Hi: 1, Lo: 100}
	b := zobrist.Hash{Hi: 1, Lo: 200}
	for _, h := range []zobrist.Hash{a, b} {
		if _, err := s.InsertPosition(ctx, h, position.BlackToMove, 0, ""); err != nil {
			t.Fatalf("InsertPosition(%s) failed: %v", h, err)
		}
	}
	if err := s.InsertEdge(ctx, root, 101, a); err != nil {
		t.Fatalf("InsertEdge failed: %v", err)
	}
	if err := s.InsertEdge(ctx, root, 102, b); err != nil {
		t.Fatalf("InsertEdge failed: %v", err)
	}

	byDegree, err := s.BranchingPositions(ctx, false)
	if err != nil {
		t.Fatalf("BranchingPositions failed: %v", err)
	}
	plies, ok := byDegree[2][root.String()]
	if !ok {
		t.Fatalf("BranchingPositions missing root at degree 2: %v", byDegree)
	}
	if plies[101] != a.String() || plies[102] != b.String() {
		t.Errorf("branching plies = %v, want {101: %s, 102: %s}", plies, a, b)
	}
}
