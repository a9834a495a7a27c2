package repository

import (
	"sync/atomic"
	"time"

	"github.com/okian/pundit/internal/domain/record"
	"github.com/okian/pundit/pkg/metrics"
)

// Store holds the latest live snapshot behind an atomic pointer, plus an
// optional static baseline. Two independent snapshots never share state, so
// a swap is the only synchronization point.
type Store struct {
	latest   atomic.Pointer[Snapshot]
	baseline *Snapshot
}

// NewStore creates a Store with the given options.
func NewStore(opts ...Option) *Store {
	s := &Store{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Replace publishes a new live snapshot. Whichever refresh resolves last
// wins; coalescing of overlapping refreshes happens upstream.
func (s *Store) Replace(snap *Snapshot) {
	s.latest.Store(snap)
	if snap != nil {
		metrics.UpdateCreatorsTotal(snap.Count())
		metrics.UpdateSnapshotLastUnix(snap.FetchedAt.Unix())
	}
}

// Latest returns the current live snapshot, or nil before the first
// successful fetch.
func (s *Store) Latest() *Snapshot {
	return s.latest.Load()
}

// Baseline returns the static fallback snapshot, or nil when none was
// configured.
func (s *Store) Baseline() *Snapshot {
	return s.baseline
}

// Serving returns the snapshot queries should run against: the live one
// when present, else the baseline. ErrNoSnapshot when neither exists.
func (s *Store) Serving() (*Snapshot, error) {
	if snap := s.latest.Load(); snap != nil {
		return snap, nil
	}
	if s.baseline != nil {
		return s.baseline, nil
	}
	return nil, ErrNoSnapshot
}

// Creator returns the merged view of one creator: the live record overlaid
// on the baseline one, live fields winning when present.
func (s *Store) Creator(name string) (record.CreatorRecord, error) {
	var (
		live, fallback record.CreatorRecord
		haveLive       bool
		haveFallback   bool
	)
	if snap := s.latest.Load(); snap != nil {
		live, haveLive = snap.Lookup(name)
	}
	if s.baseline != nil {
		fallback, haveFallback = s.baseline.Lookup(name)
	}

	switch {
	case haveLive && haveFallback:
		return record.Merge(live, fallback), nil
	case haveLive:
		return live, nil
	case haveFallback:
		return fallback, nil
	default:
		return record.CreatorRecord{}, ErrNotFound
	}
}

// Age returns how stale the serving snapshot is, or false when nothing is
// being served yet.
func (s *Store) Age(now time.Time) (time.Duration, bool) {
	snap, err := s.Serving()
	if err != nil {
		return 0, false
	}
	return now.Sub(snap.FetchedAt), true
}
