package routes

import (
	"net/http"

	"github.com/clinicware/clinic-assist/internal/api/handlers"
	"github.com/clinicware/clinic-assist/internal/api/middleware"
	"github.com/clinicware/clinic-assist/internal/infrastructure/observability"
)

// Router holds all route handlers
type Router struct {
	mux *http.ServeMux

	pageHandler      *handlers.PageHandler
	diagnosisHandler *handlers.DiagnosisHandler
	medicineHandler  *handlers.MedicineHandler
	symptomsHandler  *handlers.SymptomsHandler

	metrics *observability.Metrics
}

// NewRouter creates a new router
func NewRouter(
	pageHandler *handlers.PageHandler,
	diagnosisHandler *handlers.DiagnosisHandler,
	medicineHandler *handlers.MedicineHandler,
	symptomsHandler *handlers.SymptomsHandler,
	metrics *observability.Metrics,
) *Router {
	return &Router{
		mux: http.NewServeMux(),

		pageHandler:      pageHandler,
		diagnosisHandler: diagnosisHandler,
		medicineHandler:  medicineHandler,
		symptomsHandler:  symptomsHandler,

		metrics: metrics,
	}
}

// SetupRoutes configures all application routes
func (r *Router) SetupRoutes() http.Handler {
	// Health check endpoint
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Page
	r.mux.HandleFunc("GET /{$}", r.pageHandler.ShowPage)

	// Flow submissions
	r.mux.HandleFunc("POST /diagnose", r.diagnosisHandler.Diagnose)
	r.mux.HandleFunc("POST /analyze_medicine", r.medicineHandler.Analyze)

	// Symptom catalog endpoint
	r.mux.HandleFunc("GET /api/symptoms", r.symptomsHandler.ListSymptoms)

	// Apply middleware in reverse order (last middleware wraps first)
	var handler http.Handler = r.mux
	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.ObservabilityMiddleware(r.metrics)(handler)

	// CORS wraps everything so headers are set on every response
	handler = middleware.CORSMiddleware(handler)

	return handler
}
