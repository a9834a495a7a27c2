package repository

// Option applies a configuration option to the Store.
type Option func(*Store)

// WithBaseline seeds the store with a static fallback snapshot, used for
// merged per-creator views and as the serving set before the first live
// fetch lands.
func WithBaseline(snap *Snapshot) Option {
	return func(s *Store) {
		s.baseline = snap
	}
}
