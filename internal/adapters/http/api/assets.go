package api

import (
	"net/http"
	"strconv"
)

// AssetsHandler serves aggregated asset mention counts.
type AssetsHandler struct {
	deps          Dependencies
	defaultLimit  int
	maxAssetLimit int
}

// NewAssetsHandler creates a new assets handler.
func NewAssetsHandler(deps Dependencies, maxAssetLimit int) *AssetsHandler {
	return &AssetsHandler{
		deps:          deps,
		defaultLimit:  8,
		maxAssetLimit: maxAssetLimit,
	}
}

// HandleGetAssets handles GET /assets requests. An optional limit query
// parameter caps the number of mentions returned.
func (h *AssetsHandler) HandleGetAssets(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	limit := h.defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, http.StatusBadRequest, "invalid_limit", ErrBadRequest)
			return
		}
		limit = n
	}
	if h.maxAssetLimit > 0 && limit > h.maxAssetLimit {
		limit = h.maxAssetLimit
	}

	mentions, err := h.deps.Assets(r.Context(), limit)
	if err != nil {
		if isNoData(err) {
			writeError(w, http.StatusServiceUnavailable, "no_data", ErrUnavailable)
			return
		}
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"limit":  limit,
		"assets": mentions,
	})
}
