// Package integrity runs a read-only diagnostic pass over the graph
// store: game partitioning, duplicate-relation consistency, position
// reachability from the root, and gameless leaves (C11). Grounded on the
// teacher's own AnalyzeDrawRules-style whole-game sweep (internal/rules),
// reworked from a single-game board walk into a whole-store BFS over
// stored edges.
package integrity

import (
	"context"
	"fmt"

	"github.com/balparda/chessgraph/internal/store"
	"github.com/balparda/chessgraph/internal/zobrist"
)

// Report is the diagnostic output of one integrity check.
type Report struct {
	OKGames    int
	ErrorGames int

	DuplicateCount     int
	InBothRelations    []string // ids present in both Game and Duplicate
	PositionsWithGames int
	PositionsGameless  int
	Unreachable        []string // position hashes not reachable from the root
	GamelessLeaves     []string // leaf positions (no outgoing edges) with no games
}

// Line renders one line of a streamed report, matching §4.11's
// line-by-line output contract.
type Line string

// Run streams the diagnostic report line by line into emit, returning
// the aggregate Report once done. The check never mutates the store.
func Run(ctx context.Context, s *store.Store, emit func(Line)) (Report, error) {
	var report Report

	ok, errored, err := s.PartitionOKVsError(ctx)
	if err != nil {
		return report, err
	}
	report.OKGames, report.ErrorGames = ok, errored
	emit(Line(fmt.Sprintf("games: %d ok, %d error", ok, errored)))

	dupIDs, err := s.SetAllDuplicateIDs(ctx)
	if err != nil {
		return report, err
	}
	report.DuplicateCount = len(dupIDs)
	emit(Line(fmt.Sprintf("duplicates: %d", len(dupIDs))))

	for id := range dupIDs {
		known, err := s.KnownGameID(ctx, id)
		if err != nil {
			return report, err
		}
		if known {
			report.InBothRelations = append(report.InBothRelations, id)
			emit(Line(fmt.Sprintf("WARNING: %s present in both Game and Duplicate relations", id)))
		}
	}

	withGames, gameless, err := positionPartition(ctx, s)
	if err != nil {
		return report, err
	}
	report.PositionsWithGames = withGames
	report.PositionsGameless = gameless
	emit(Line(fmt.Sprintf("positions: %d with games, %d without", withGames, gameless)))

	visited, err := reachableFromRoot(ctx, s)
	if err != nil {
		return report, err
	}
	positions, err := s.StreamPositions(ctx, nil, nil, 0)
	if err != nil {
		return report, err
	}
	for _, pos := range positions {
		hash := pos.Hash.String()
		if _, ok := visited[pos.Hash]; !ok {
			report.Unreachable = append(report.Unreachable, hash)
			emit(Line(fmt.Sprintf("UNREACHABLE: %s", hash)))
		}

		edges, err := s.EdgesFrom(ctx, pos.Hash)
		if err != nil {
			return report, err
		}
		if len(edges) == 0 && len(pos.GameIDs) == 0 {
			report.GamelessLeaves = append(report.GamelessLeaves, hash)
			emit(Line(fmt.Sprintf("GAMELESS LEAF: %s", hash)))
		}
	}

	return report, nil
}

func positionPartition(ctx context.Context, s *store.Store) (withGames, gameless int, err error) {
	hasGame := true
	withRows, err := s.StreamPositions(ctx, nil, &hasGame, 0)
	if err != nil {
		return 0, 0, err
	}
	noGame := false
	withoutRows, err := s.StreamPositions(ctx, nil, &noGame, 0)
	if err != nil {
		return 0, 0, err
	}
	return len(withRows), len(withoutRows), nil
}

// reachableFromRoot runs a BFS over outgoing edges starting at the root.
func reachableFromRoot(ctx context.Context, s *store.Store) (map[zobrist.Hash]struct{}, error) {
	root := zobrist.RootHash()
	visited := map[zobrist.Hash]struct{}{root: {}}
	queue := []zobrist.Hash{root}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		edges, err := s.EdgesFrom(ctx, cur)
		if err != nil {
			return nil, err
		}
		for _, e := range edges {
			if _, seen := visited[e.To]; seen {
				continue
			}
			visited[e.To] = struct{}{}
			queue = append(queue, e.To)
		}
	}
	return visited, nil
}
