package api

import "net/http"

// RefreshHandler triggers an on-demand snapshot rebuild.
type RefreshHandler struct {
	deps Dependencies
}

// NewRefreshHandler creates a new refresh handler.
func NewRefreshHandler(deps Dependencies) *RefreshHandler {
	return &RefreshHandler{deps: deps}
}

// HandleRefresh handles POST /refresh requests. Concurrent triggers share a
// single in-flight pipeline run, so hammering this endpoint cannot stampede
// the upstream sheet.
func (h *RefreshHandler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}

	if err := h.deps.RefreshAll(r.Context()); err != nil {
		writeError(w, http.StatusBadGateway, "refresh_failed", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "refreshed"})
}
