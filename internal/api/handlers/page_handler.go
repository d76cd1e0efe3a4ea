package handlers

import (
	"context"
	"net/http"

	"github.com/clinicware/clinic-assist/internal/infrastructure/observability"
	"github.com/clinicware/clinic-assist/internal/ui/views"
	"github.com/clinicware/clinic-assist/internal/ui/viewstate"
)

// SymptomCatalog provides the symptom tokens offered as form suggestions.
type SymptomCatalog interface {
	Symptoms(ctx context.Context) []string
}

// PageHandler renders the tabbed single page from the current flow state.
type PageHandler struct {
	state    *viewstate.State
	catalog  SymptomCatalog
	renderer *views.Renderer
}

// NewPageHandler creates a new page handler
func NewPageHandler(state *viewstate.State, catalog SymptomCatalog, renderer *views.Renderer) *PageHandler {
	return &PageHandler{
		state:    state,
		catalog:  catalog,
		renderer: renderer,
	}
}

// ShowPage handles GET /
func (h *PageHandler) ShowPage(w http.ResponseWriter, r *http.Request) {
	page := views.NewPage(
		r.URL.Query().Get("tab"),
		h.catalog.Symptoms(r.Context()),
		h.state.Diagnosis.Snapshot(),
		h.state.Analysis.Snapshot(),
	)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.renderer.RenderPage(w, page); err != nil {
		observability.LoggerFromContext(r.Context()).Error().Err(err).Msg("failed to render page")
	}
}
