// Package repository holds immutable record snapshots. There is no
// incremental update path: each fetch produces a whole new snapshot and the
// previous one is discarded. Derived structures (rankings, narratives) are
// pure functions of a snapshot, so no locking beyond the swap is needed.
package repository

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/okian/pundit/internal/domain/record"
)

// Snapshot is one fetched, validated, immutable record set.
type Snapshot struct {
	ID        string
	Source    string
	FetchedAt time.Time
	Records   []record.CreatorRecord

	byName map[string]record.CreatorRecord
}

// NewSnapshot builds a snapshot and its lookup index. On duplicate names
// the last row wins for lookup; Records keeps every row, duplicates
// included, which is what ranking operates on.
func NewSnapshot(records []record.CreatorRecord, source string, fetchedAt time.Time) *Snapshot {
	byName := make(map[string]record.CreatorRecord, len(records))
	for _, r := range records {
		byName[nameKey(r.Name)] = r
	}
	return &Snapshot{
		ID:        uuid.NewString(),
		Source:    source,
		FetchedAt: fetchedAt,
		Records:   records,
		byName:    byName,
	}
}

// Lookup finds a creator by display name, case-insensitively.
func (s *Snapshot) Lookup(name string) (record.CreatorRecord, bool) {
	r, ok := s.byName[nameKey(name)]
	return r, ok
}

// Count returns the number of rows in the snapshot, duplicates included.
func (s *Snapshot) Count() int {
	return len(s.Records)
}

func nameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
