package api

import "net/http"

// PredictionsHandler serves the open prediction set.
type PredictionsHandler struct {
	deps Dependencies
}

// NewPredictionsHandler creates a new predictions handler.
func NewPredictionsHandler(deps Dependencies) *PredictionsHandler {
	return &PredictionsHandler{deps: deps}
}

// HandleGetOpen handles GET /predictions/open requests. An optional creator
// query parameter filters to a single creator, case-insensitively.
func (h *PredictionsHandler) HandleGetOpen(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	creator := r.URL.Query().Get("creator")
	preds, err := h.deps.OpenPredictions(r.Context(), creator)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "internal", err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"count":       len(preds),
		"predictions": preds,
	})
}
