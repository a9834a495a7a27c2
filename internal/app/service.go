// Package app provides the core service that wires the ingestion pipeline
// to the snapshot store and implements the dependencies required by the
// HTTP API.
package app

import (
	"context"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/okian/pundit/internal/adapters/fetch"
	"github.com/okian/pundit/internal/adapters/repository"
	"github.com/okian/pundit/internal/domain/narrative"
	"github.com/okian/pundit/internal/domain/openpred"
	"github.com/okian/pundit/internal/domain/rank"
	"github.com/okian/pundit/internal/domain/record"
	"github.com/okian/pundit/internal/domain/schema"
	"github.com/okian/pundit/pkg/logger"
	"github.com/okian/pundit/pkg/metrics"
)

// CreatorView is the merged single-creator read model: live metrics where
// present, baseline fallback otherwise, plus the synthesized narrative.
type CreatorView struct {
	Record    record.CreatorRecord
	Narrative narrative.Summary
}

// Service implements the ingestion pipeline and read-side queries.
type Service struct {
	fetcher     fetch.Fetcher
	predFetcher fetch.Fetcher
	store       *repository.Store
	aliases     schema.AliasTable
	sizes       rank.Sizes

	// Overlapping refresh calls are coalesced: callers share one in-flight
	// pipeline run instead of racing independent fetches into the store.
	flight singleflight.Group

	predictions atomic.Pointer[[]openpred.Prediction]

	logger logger.Logger
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		store:   repository.NewStore(),
		aliases: schema.PerformanceAliases(),
		sizes:   rank.DefaultSizes(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Get().Named("app")
	}
	return s
}

// RefreshAll rebuilds the performance snapshot and, when configured, the
// open-predictions set. A failed refresh leaves the previous snapshot
// serving.
func (s *Service) RefreshAll(ctx context.Context) error {
	if _, err := s.Refresh(ctx); err != nil {
		return err
	}
	if s.predFetcher != nil {
		if err := s.refreshPredictions(ctx); err != nil {
			// Open predictions are a secondary dataset; their failure must
			// not invalidate a fresh performance snapshot.
			s.logger.Warn(ctx, "open predictions refresh failed", logger.Error(err))
		}
	}
	return nil
}

// Refresh fetches and ingests one performance snapshot, coalescing
// concurrent callers onto a single in-flight run.
func (s *Service) Refresh(ctx context.Context) (*repository.Snapshot, error) {
	v, err, shared := s.flight.Do("performance", func() (any, error) {
		return s.refresh(ctx)
	})
	if err != nil {
		return nil, err
	}
	snap := v.(*repository.Snapshot)
	if shared {
		s.logger.Debug(ctx, "refresh coalesced onto in-flight run",
			logger.String("snapshot", snap.ID),
		)
	}
	return snap, nil
}

func (s *Service) refresh(ctx context.Context) (*repository.Snapshot, error) {
	if s.fetcher == nil {
		return nil, fetch.ErrNoEndpoints
	}
	res, err := s.fetcher.Fetch(ctx)
	if err != nil {
		s.logger.Error(ctx, "snapshot fetch failed", logger.Error(err))
		return nil, err
	}

	snap, err := s.ingest(ctx, res.Text, res.Source, res.FetchedAt)
	if err != nil {
		return nil, err
	}

	s.store.Replace(snap)
	s.logger.Info(ctx, "snapshot replaced",
		logger.String("snapshot", snap.ID),
		logger.String("source", snap.Source),
		logger.Int("creators", snap.Count()),
	)
	return snap, nil
}

func (s *Service) refreshPredictions(ctx context.Context) error {
	res, err := s.predFetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	preds, err := openpred.Parse(res.Text)
	if err != nil {
		return err
	}
	s.predictions.Store(&preds)
	metrics.UpdateOpenPredictionsTotal(len(preds))
	s.logger.Info(ctx, "open predictions replaced", logger.Int("count", len(preds)))
	return nil
}

// Board derives the full leaderboard projection from the serving snapshot.
func (s *Service) Board(ctx context.Context) (rank.Board, error) {
	snap, err := s.store.Serving()
	if err != nil {
		return rank.Board{}, err
	}
	board := rank.BuildBoard(snap.Records, s.sizes)
	board.Meta.Filter = "sample size met, source " + snap.Source
	return board, nil
}

// Creator returns the merged view of one creator with its narrative.
func (s *Service) Creator(ctx context.Context, name string) (CreatorView, error) {
	r, err := s.store.Creator(name)
	if err != nil {
		return CreatorView{}, err
	}
	return CreatorView{
		Record:    r,
		Narrative: narrative.Synthesize(r),
	}, nil
}

// Assets returns the top asset mentions across all creators.
func (s *Service) Assets(ctx context.Context, limit int) ([]rank.AssetMention, error) {
	snap, err := s.store.Serving()
	if err != nil {
		return nil, err
	}
	mentions := rank.AggregateAssets(snap.Records)
	if limit > 0 && limit < len(mentions) {
		mentions = mentions[:limit]
	}
	return mentions, nil
}

// OpenPredictions returns the tracked open predictions, optionally filtered
// by creator identifier (case-insensitive).
func (s *Service) OpenPredictions(ctx context.Context, creator string) ([]openpred.Prediction, error) {
	p := s.predictions.Load()
	if p == nil {
		return []openpred.Prediction{}, nil
	}
	if creator == "" {
		return *p, nil
	}
	out := make([]openpred.Prediction, 0, len(*p))
	for _, pred := range *p {
		if strings.EqualFold(pred.CreatorID, creator) {
			out = append(out, pred)
		}
	}
	return out, nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	stats := map[string]interface{}{
		"alias_table_version": s.aliases.Version,
		"baseline_loaded":     s.store.Baseline() != nil,
	}
	if snap := s.store.Latest(); snap != nil {
		stats["snapshot_id"] = snap.ID
		stats["snapshot_source"] = snap.Source
		stats["snapshot_fetched_at"] = snap.FetchedAt
		stats["creators"] = snap.Count()
	}
	if p := s.predictions.Load(); p != nil {
		stats["open_predictions"] = len(*p)
	}
	return stats
}
