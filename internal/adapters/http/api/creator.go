package api

import (
	"net/http"

	"github.com/okian/pundit/internal/domain/narrative"
	"github.com/okian/pundit/internal/domain/record"
)

// CreatorHandler serves the merged single-creator view.
type CreatorHandler struct {
	deps Dependencies
}

// NewCreatorHandler creates a new creator handler.
func NewCreatorHandler(deps Dependencies) *CreatorHandler {
	return &CreatorHandler{deps: deps}
}

// creatorResponse is the JSON shape for a single creator. Missing metrics
// serialize as null rather than leaking the internal NaN marker, which
// encoding/json would reject.
type creatorResponse struct {
	Name string `json:"name"`

	TotalPicks      *float64 `json:"totalPicks"`
	Accuracy        *float64 `json:"accuracy"`
	AvgAlpha        *float64 `json:"avgAlpha"`
	ShortTermAlpha  *float64 `json:"shortTermAlpha"`
	LongTermAlpha   *float64 `json:"longTermAlpha"`
	BullishAccuracy *float64 `json:"bullishAccuracy"`
	BearishAccuracy *float64 `json:"bearishAccuracy"`
	BestCall        *float64 `json:"bestCall"`
	WorstCall       *float64 `json:"worstCall"`
	AlphaStdDev     *float64 `json:"alphaStdDev"`
	Alpha2023       *float64 `json:"alpha2023"`
	Alpha2024       *float64 `json:"alpha2024"`
	Alpha2025       *float64 `json:"alpha2025"`
	Alpha2026       *float64 `json:"alpha2026"`
	PValue          *float64 `json:"pValue"`

	BestCallTicker    string `json:"bestCallTicker,omitempty"`
	WorstCallTicker   string `json:"worstCallTicker,omitempty"`
	RecommendedAssets string `json:"recommendedAssets,omitempty"`

	SampleSizeMet bool `json:"sampleSizeMet"`
	Significant   bool `json:"significant"`

	Narrative narrative.Summary `json:"narrative"`
}

func newCreatorResponse(r record.CreatorRecord, n narrative.Summary) creatorResponse {
	return creatorResponse{
		Name:              r.Name,
		TotalPicks:        nullable(r.TotalPicks),
		Accuracy:          nullable(r.Accuracy),
		AvgAlpha:          nullable(r.AvgAlpha),
		ShortTermAlpha:    nullable(r.ShortTermAlpha),
		LongTermAlpha:     nullable(r.LongTermAlpha),
		BullishAccuracy:   nullable(r.BullishAccuracy),
		BearishAccuracy:   nullable(r.BearishAccuracy),
		BestCall:          nullable(r.BestCall),
		WorstCall:         nullable(r.WorstCall),
		AlphaStdDev:       nullable(r.AlphaStdDev),
		Alpha2023:         nullable(r.Alpha2023),
		Alpha2024:         nullable(r.Alpha2024),
		Alpha2025:         nullable(r.Alpha2025),
		Alpha2026:         nullable(r.Alpha2026),
		PValue:            nullable(r.PValue),
		BestCallTicker:    r.BestCallTicker,
		WorstCallTicker:   r.WorstCallTicker,
		RecommendedAssets: r.RecommendedAssets,
		SampleSizeMet:     r.SampleSizeMet,
		Significant:       r.Significant,
		Narrative:         n,
	}
}

func nullable(v float64) *float64 {
	if !record.Has(v) {
		return nil
	}
	return &v
}

// HandleGetCreator handles GET /creators/{name} requests.
func (h *CreatorHandler) HandleGetCreator(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	name, ok := trimPathParam(r, "/creators/")
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid_name", ErrBadRequest)
		return
	}

	view, err := h.deps.Creator(r.Context(), name)
	if err != nil {
		switch {
		case isNotFound(err):
			writeError(w, http.StatusNotFound, "not_found", err)
		case isNoData(err):
			writeError(w, http.StatusServiceUnavailable, "no_data", ErrUnavailable)
		default:
			writeError(w, http.StatusInternalServerError, "internal", err)
		}
		return
	}

	writeJSON(w, http.StatusOK, newCreatorResponse(view.Record, view.Narrative))
}
