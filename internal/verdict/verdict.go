// Package verdict implements the bijection between an engine evaluation and
// its short textual form: four comma-separated lowercase hex integers (C3).
package verdict

import (
	"fmt"
	"strconv"
	"strings"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
)

// Verdict is an engine's evaluation of a position at some search depth.
// Mate is signed: positive means the side to move mates in N plies,
// negative means the opponent does, zero means no forced mate was found.
// Score is centipawns and is only meaningful when Mate == 0.
type Verdict struct {
	Depth     int
	BestMove  int // ply.Encoded, kept as a bare int to avoid an import cycle
	Mate      int
	Score     int
}

// Encode renders a Verdict as four comma-separated lowercase hex integers,
// in {depth, best-move, mate, score} order. Negative values are encoded
// with a leading '-' before the hex digits, matching strconv's signed hex.
func Encode(v Verdict) string {
	return strings.Join([]string{
		strconv.FormatInt(int64(v.Depth), 16),
		strconv.FormatInt(int64(v.BestMove), 16),
		strconv.FormatInt(int64(v.Mate), 16),
		strconv.FormatInt(int64(v.Score), 16),
	}, ",")
}

// Decode inverts Encode. Round trip with Encode must be exact.
func Decode(s string) (Verdict, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Verdict{}, cgerrors.Wrapf(cgerrors.ErrInvalidConfig,
			"verdict %q must have exactly 4 comma-separated fields, got %d", s, len(parts))
	}
	fields := make([]int64, 4)
	for i, p := range parts {
		n, err := strconv.ParseInt(p, 16, 64)
		if err != nil {
			return Verdict{}, cgerrors.Wrapf(cgerrors.ErrInvalidConfig, "verdict field %d (%q) is not hex: %v", i, p, err)
		}
		fields[i] = n
	}
	return Verdict{
		Depth:    int(fields[0]),
		BestMove: int(fields[1]),
		Mate:     int(fields[2]),
		Score:    int(fields[3]),
	}, nil
}

func (v Verdict) String() string {
	if v.Mate != 0 {
		return fmt.Sprintf("depth=%d mate=%d", v.Depth, v.Mate)
	}
	return fmt.Sprintf("depth=%d score=%d", v.Depth, v.Score)
}
