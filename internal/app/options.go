package app

import (
	"github.com/okian/pundit/internal/adapters/fetch"
	"github.com/okian/pundit/internal/adapters/repository"
	"github.com/okian/pundit/internal/domain/rank"
	"github.com/okian/pundit/internal/domain/schema"
	"github.com/okian/pundit/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithFetcher sets the performance-sheet fetcher.
func WithFetcher(f fetch.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.fetcher = f
		}
	}
}

// WithPredictionsFetcher sets the open-predictions fetcher. Without one the
// open-predictions endpoints serve empty results.
func WithPredictionsFetcher(f fetch.Fetcher) Option {
	return func(s *Service) {
		if f != nil {
			s.predFetcher = f
		}
	}
}

// WithStore sets the snapshot store.
func WithStore(store *repository.Store) Option {
	return func(s *Service) {
		if store != nil {
			s.store = store
		}
	}
}

// WithAliasTable overrides the alias table the resolver matches against.
func WithAliasTable(table schema.AliasTable) Option {
	return func(s *Service) {
		if len(table.Entries) > 0 {
			s.aliases = table
		}
	}
}

// WithBoardSizes sets the leaderboard projection sizes.
func WithBoardSizes(sizes rank.Sizes) Option {
	return func(s *Service) {
		if sizes.Leaderboard > 0 && sizes.Interval > 0 && sizes.Assets > 0 {
			s.sizes = sizes
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}
