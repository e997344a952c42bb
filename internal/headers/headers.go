// Package headers normalizes a parsed game's PGN tag pairs and infers or
// fixes the result tag, per spec.md §4.5. Grounded on the teacher's own
// pgntext.Game tag map (internal/pgntext/game.go), which already lowercases
// nothing and strips nothing — this package is the missing normalization
// layer the ingest pipeline runs before storing a game's headers.
package headers

import (
	"strings"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/pgniter"
	"github.com/balparda/chessgraph/internal/pgntext"
	"github.com/balparda/chessgraph/internal/position"
)

// knownEmpty holds header values that normalize away entirely: the game
// carried the tag but recorded no real information in it.
var knownEmpty = map[string]struct{}{
	"?":       {},
	"*":       {},
	"unknown": {},
	"no date": {},
	"-":       {},
	"--":      {},
	"###":     {},
	"??":      {},
	"":        {},
}

// trailingSuffixes are stripped from date-like values, twice in a row, to
// collapse PGN's "unknown month/day" notation ("1992.??.??" → "1992").
var trailingSuffixes = []string{".??", ".xx", ".**", ".##"}

// Normalize lowercases every key, trims whitespace from every value,
// strips the known trailing unknown-date suffixes twice, and drops keys
// whose normalized value falls in the known-empty set. It mutates nothing
// on the input game; it returns a fresh map.
func Normalize(tags map[string]string) map[string]string {
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		key := strings.ToLower(strings.TrimSpace(k))
		val := strings.TrimSpace(v)
		for i := 0; i < 2; i++ {
			val = stripOneSuffix(val)
		}
		if _, empty := knownEmpty[strings.ToLower(val)]; empty {
			continue
		}
		out[key] = val
	}
	return out
}

// EnsureRoster fills in a literal "?" for any of the seven required PGN
// tags (pgntext.SevenTagRoster) that tags is missing after Normalize has
// already dropped its known-empty values — a stored game should always
// carry all seven, even when a source game omits one, rather than have
// readers special-case an absent roster key.
func EnsureRoster(tags map[string]string) map[string]string {
	for _, key := range pgntext.SevenTagRoster {
		lower := strings.ToLower(key)
		if _, ok := tags[lower]; !ok {
			tags[lower] = "?"
		}
	}
	return tags
}

func stripOneSuffix(v string) string {
	for _, suf := range trailingSuffixes {
		if strings.HasSuffix(v, suf) {
			return strings.TrimSuffix(v, suf)
		}
	}
	return v
}

// canonicalResults are the only values FixResult ever writes.
const (
	WhiteWins = "1-0"
	BlackWins = "0-1"
	Draw      = "1/2-1/2"
)

func isCanonicalResult(v string) bool {
	return v == WhiteWins || v == BlackWins || v == Draw
}

// mateWinner returns the canonical result for the side that delivered a
// checkmate, given the flags of the resulting (mated) position. Flags are
// computed on the post-move board, so the side recorded as "to move" is
// the side that got mated, not the side that moved.
func mateWinner(flags position.Flags) string {
	if flags.Has(position.BlackToMove) {
		return WhiteWins
	}
	return BlackWins
}

// FixResult infers a missing or non-canonical result tag from the game's
// terminal ply, or corrects a `1/2-1/2` claim contradicted by a mate at
// the last move (§4.5). A mate seen strictly before the last move is
// already rejected earlier, by pgniter.Walk's own precondition 4, so by
// the time this runs any checkmate flag on lastPly belongs to the true
// final ply. rawText's last non-blank line is a fallback source of the
// result when the terminal position doesn't itself settle it (wins by
// resignation or agreement never show up in the board state).
//
// The checkmate override only ever replaces a result that was missing,
// `*`, or a stale `1/2-1/2` claim — a claimed decisive result (`1-0` or
// `0-1`) is never overwritten, even when the terminal position also
// happens to be a mate, since §4.5 only asks this function to correct a
// draw claim contradicted by a mate, not to second-guess a decisive one.
//
// It returns the corrected result string, or ErrEndingError if no result
// can be determined.
func FixResult(tags map[string]string, lastPly pgniter.Ply, hadFinalMove bool, rawText string) (string, error) {
	claimed := tags["result"]
	claimedMissingOrDrawn := claimed == "" || claimed == "*" || claimed == Draw

	if hadFinalMove && claimedMissingOrDrawn && lastPly.Flags.Has(position.Checkmate) {
		return mateWinner(lastPly.Flags), nil
	}

	if isCanonicalResult(claimed) {
		return claimed, nil
	}

	if hadFinalMove && lastPly.Flags.Has(position.Stalemate) {
		return Draw, nil
	}

	if line := lastNonBlankLine(rawText); isCanonicalResult(line) {
		return line, nil
	}

	return "", cgerrors.ErrEndingError
}

func lastNonBlankLine(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n\r\t "), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		line := strings.TrimSpace(lines[i])
		if line != "" {
			return line
		}
	}
	return ""
}
