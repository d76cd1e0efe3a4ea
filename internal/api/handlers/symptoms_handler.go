package handlers

import (
	"net/http"
)

// SymptomsHandler serves the cached symptom catalog as JSON.
type SymptomsHandler struct {
	catalog SymptomCatalog
}

// NewSymptomsHandler creates a new symptoms handler
func NewSymptomsHandler(catalog SymptomCatalog) *SymptomsHandler {
	return &SymptomsHandler{catalog: catalog}
}

// ListSymptoms handles GET /api/symptoms
func (h *SymptomsHandler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	symptoms := h.catalog.Symptoms(r.Context())
	if symptoms == nil {
		symptoms = []string{}
	}
	respondWithJSON(w, http.StatusOK, map[string][]string{
		"symptoms": symptoms,
	})
}
