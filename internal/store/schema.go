package store

import (
	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/position"
	"github.com/balparda/chessgraph/internal/zobrist"
)

// schema creates the four relations of §3 plus the two association tables
// extras and position-games needs because both are modeled as sets (a
// position can carry several distinct extras bitsets, and several game
// ids). Hash widths are enforced with CHECK constraints per §4.6 ("hash
// widths enforced by length checks at the storage layer").
const schema = `
CREATE TABLE IF NOT EXISTS positions (
	hash       TEXT PRIMARY KEY CHECK (length(hash) = 32),
	flags      INTEGER NOT NULL,
	eval_depth INTEGER,
	eval_move  INTEGER,
	eval_mate  INTEGER,
	eval_score INTEGER,
	has_eval   INTEGER NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS position_extras (
	hash   TEXT NOT NULL REFERENCES positions(hash),
	extras INTEGER NOT NULL,
	PRIMARY KEY (hash, extras)
);

CREATE TABLE IF NOT EXISTS position_games (
	hash    TEXT NOT NULL REFERENCES positions(hash),
	game_id TEXT NOT NULL,
	PRIMARY KEY (hash, game_id)
);

CREATE TABLE IF NOT EXISTS edges (
	from_hash TEXT NOT NULL REFERENCES positions(hash),
	ply       INTEGER NOT NULL,
	to_hash   TEXT NOT NULL REFERENCES positions(hash),
	PRIMARY KEY (from_hash, ply)
);
CREATE INDEX IF NOT EXISTS edges_to_hash ON edges(to_hash);

CREATE TABLE IF NOT EXISTS games (
	id             TEXT PRIMARY KEY CHECK (length(id) = 64),
	end_hash       TEXT REFERENCES positions(hash),
	plies          TEXT NOT NULL DEFAULT '',
	headers        TEXT NOT NULL DEFAULT '{}',
	error_category INTEGER NOT NULL DEFAULT 0,
	original_text  TEXT,
	error_message  TEXT
);
CREATE INDEX IF NOT EXISTS games_end_hash ON games(end_hash);

CREATE TABLE IF NOT EXISTS duplicates (
	dup_id     TEXT PRIMARY KEY CHECK (length(dup_id) = 64),
	primary_id TEXT NOT NULL,
	headers    TEXT NOT NULL DEFAULT '{}'
);
CREATE INDEX IF NOT EXISTS duplicates_primary ON duplicates(primary_id);
`

func (s *Store) migrate() error {
	if _, err := s.db.Exec(schema); err != nil {
		return cgerrors.Wrap(err, "applying schema")
	}
	return s.seedRoot()
}

// seedRoot ensures the standard starting position has a row before any
// edge can cite it as a from_hash: Walk's first ply connects from the
// root, but never visits the root itself as a target, so no ordinary
// insert_position call ever creates it.
func (s *Store) seedRoot() error {
	root := zobrist.RootHash()
	_, err := s.db.Exec("INSERT OR IGNORE INTO positions(hash, flags) VALUES (?, ?)",
		root.String(), int64(position.WhiteToMove))
	if err != nil {
		return cgerrors.Wrap(err, "seeding root position")
	}
	return nil
}
