package rules

import "github.com/balparda/chessgraph/internal/zobrist"

// RepetitionTracker counts how many times each position hash has occurred
// along one game's move path, so the ingest pipeline can flag threefold and
// fivefold repetition as each ply is appended instead of rescanning the
// whole game afterward. It is keyed on the 128-bit position hash rather
// than the board's vestigial 64-bit Zobrist field.
type RepetitionTracker struct {
	counts map[zobrist.Hash]int
}

// NewRepetitionTracker returns a tracker seeded with the starting position.
func NewRepetitionTracker(start zobrist.Hash) *RepetitionTracker {
	t := &RepetitionTracker{counts: make(map[zobrist.Hash]int)}
	t.counts[start]++
	return t
}

// Observe records one more occurrence of hash (the position reached after
// playing a ply) and returns the running count for that position.
func (t *RepetitionTracker) Observe(hash zobrist.Hash) int {
	t.counts[hash]++
	return t.counts[hash]
}

// IsThreefold reports whether hash has now occurred three or more times.
func (t *RepetitionTracker) IsThreefold(hash zobrist.Hash) bool {
	return t.counts[hash] >= 3
}

// IsFivefold reports whether hash has now occurred five or more times,
// the point at which a draw is forced rather than merely claimable.
func (t *RepetitionTracker) IsFivefold(hash zobrist.Hash) bool {
	return t.counts[hash] >= 5
}

// Count returns the current occurrence count for hash without recording a
// new observation.
func (t *RepetitionTracker) Count(hash zobrist.Hash) int {
	return t.counts[hash]
}
