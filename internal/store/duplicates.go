package store

import (
	"context"
	"database/sql"
	"sort"
	"strings"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
)

// DuplicateRow is the public view of one duplicate link.
type DuplicateRow struct {
	DupID     string
	PrimaryID string
	Headers   map[string]string
}

// InsertDuplicate implements §4.6's insert_duplicate: it records
// (dupID → primaryID, dupHeaders) and, in the same transaction, removes
// dupID's row from the Game relation (§3: "on insertion of a duplicate,
// the duplicate's row is removed from the Game relation").
func (s *Store) InsertDuplicate(ctx context.Context, dupID, primaryID string, dupHeaders map[string]string) error {
	headerJSON, err := encodeHeaders(dupHeaders)
	if err != nil {
		return err
	}
	return s.withTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO duplicates(dup_id, primary_id, headers) VALUES (?, ?, ?)", dupID, primaryID, headerJSON); err != nil {
			return cgerrors.Wrap(err, "inserting duplicate")
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM games WHERE id = ?", dupID); err != nil {
			return cgerrors.Wrap(err, "removing duplicate's game row")
		}
		return nil
	})
}

// GetDuplicate returns the stored row for dupID, or ErrNotFound.
func (s *Store) GetDuplicate(ctx context.Context, dupID string) (*DuplicateRow, error) {
	var primaryID, headerJSON string
	err := s.db.QueryRowContext(ctx, "SELECT primary_id, headers FROM duplicates WHERE dup_id = ?", dupID).
		Scan(&primaryID, &headerJSON)
	if err == sql.ErrNoRows {
		return nil, cgerrors.ErrNotFound
	}
	if err != nil {
		return nil, cgerrors.Wrap(err, "looking up duplicate")
	}
	headers, err := decodeHeaders(headerJSON)
	if err != nil {
		return nil, err
	}
	return &DuplicateRow{DupID: dupID, PrimaryID: primaryID, Headers: headers}, nil
}

// FindTopPrimary follows the duplicate chain from id to its root: the
// first id that is itself not a duplicate of anything else. The walk
// guards against cycles with a visited set, surfacing ErrCycle rather
// than looping forever if the stored chain is corrupt.
func (s *Store) FindTopPrimary(ctx context.Context, id string) (string, error) {
	visited := map[string]struct{}{id: {}}
	current := id
	for {
		dup, err := s.GetDuplicate(ctx, current)
		if err == cgerrors.ErrNotFound {
			return current, nil
		}
		if err != nil {
			return "", err
		}
		if _, seen := visited[dup.PrimaryID]; seen {
			return "", cgerrors.Wrapf(cgerrors.ErrCycle, "duplicate chain starting at %s cycles back to %s", id, dup.PrimaryID)
		}
		visited[dup.PrimaryID] = struct{}{}
		current = dup.PrimaryID
	}
}

// SetAllDuplicateIDs returns the set of every known duplicate id.
func (s *Store) SetAllDuplicateIDs(ctx context.Context) (map[string]struct{}, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT dup_id FROM duplicates")
	if err != nil {
		return nil, cgerrors.Wrap(err, "listing duplicate ids")
	}
	defer rows.Close()
	out := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, cgerrors.Wrap(err, "scanning duplicate id")
		}
		out[id] = struct{}{}
	}
	return out, rows.Err()
}

// mergeConflictSeparator joins disagreeing header values, per §4.6's
// merge policy.
const mergeConflictSeparator = " | "

// MergedHeaders merges the headers of primaryID with every duplicate that
// resolves to it, per §4.6's header merge policy: equal values (case
// insensitive) keep the original; `result` conflicts become `*`; other
// conflicts concatenate with " | " and are recorded in the returned
// issues list.
func (s *Store) MergedHeaders(ctx context.Context, primaryID string) (map[string]string, []string, error) {
	primary, err := s.GetGame(ctx, primaryID)
	if err != nil {
		return nil, nil, err
	}
	merged := make(map[string]string, len(primary.Headers))
	for k, v := range primary.Headers {
		merged[k] = v
	}

	dupIDs, err := s.duplicatesOf(ctx, primaryID)
	if err != nil {
		return nil, nil, err
	}
	sort.Strings(dupIDs)

	var issues []string
	for _, dupID := range dupIDs {
		dup, err := s.GetDuplicate(ctx, dupID)
		if err != nil {
			return nil, nil, err
		}
		for k, v := range dup.Headers {
			existing, present := merged[k]
			if !present {
				merged[k] = v
				continue
			}
			if strings.EqualFold(existing, v) {
				continue
			}
			if k == "result" {
				merged[k] = "*"
			} else {
				merged[k] = existing + mergeConflictSeparator + v
			}
			issues = append(issues, k+": "+existing+mergeConflictSeparator+v)
		}
	}
	return merged, issues, nil
}

// duplicatesOf returns every duplicate id whose primary_id is primaryID.
func (s *Store) duplicatesOf(ctx context.Context, primaryID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT dup_id FROM duplicates WHERE primary_id = ?", primaryID)
	if err != nil {
		return nil, cgerrors.Wrap(err, "listing duplicates of primary")
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, cgerrors.Wrap(err, "scanning duplicate id")
		}
		out = append(out, id)
	}
	return out, rows.Err()
}
