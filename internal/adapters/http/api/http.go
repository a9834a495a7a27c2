// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/okian/pundit/internal/adapters/repository"
	"github.com/okian/pundit/internal/app"
	"github.com/okian/pundit/internal/domain/openpred"
	"github.com/okian/pundit/internal/domain/rank"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to the service implementation.
type Dependencies interface {
	Board(ctx context.Context) (rank.Board, error)
	Creator(ctx context.Context, name string) (app.CreatorView, error)
	Assets(ctx context.Context, limit int) ([]rank.AssetMention, error)
	OpenPredictions(ctx context.Context, creator string) ([]openpred.Prediction, error)
	RefreshAll(ctx context.Context) error
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	leaderboardHandler *LeaderboardHandler
	creatorHandler     *CreatorHandler
	assetsHandler      *AssetsHandler
	predictionsHandler *PredictionsHandler
	refreshHandler     *RefreshHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider, maxAssetLimit int) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		leaderboardHandler: NewLeaderboardHandler(deps),
		creatorHandler:     NewCreatorHandler(deps),
		assetsHandler:      NewAssetsHandler(deps, maxAssetLimit),
		predictionsHandler: NewPredictionsHandler(deps),
		refreshHandler:     NewRefreshHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/metrics", s.healthHandler.HandleMetrics)
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/leaderboard", MetricsMiddleware(s.leaderboardHandler.HandleGetLeaderboard, "leaderboard"))
	mux.HandleFunc("/creators/", MetricsMiddleware(s.creatorHandler.HandleGetCreator, "creators"))
	mux.HandleFunc("/assets", MetricsMiddleware(s.assetsHandler.HandleGetAssets, "assets"))
	mux.HandleFunc("/predictions/open", MetricsMiddleware(s.predictionsHandler.HandleGetOpen, "predictions_open"))
	mux.HandleFunc("/refresh", MetricsMiddleware(s.refreshHandler.HandleRefresh, "refresh"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

// isNotFound translates upstream not-found errors to 404.
func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrNotFound)
}

// isNoData reports whether the service has nothing to serve yet (no live
// snapshot and no baseline), which maps to 503 rather than 500.
func isNoData(err error) bool {
	return errors.Is(err, repository.ErrNoSnapshot)
}

func trimPathParam(r *http.Request, prefix string) (string, bool) {
	p := strings.TrimPrefix(r.URL.Path, prefix)
	if p == "" || strings.Contains(p, "/") {
		return "", false
	}
	return p, true
}
