package handlers

import (
	"context"
	"net/http"

	"github.com/clinicware/clinic-assist/internal/domain/entities"
	"github.com/clinicware/clinic-assist/internal/ui/viewstate"
	apperrors "github.com/clinicware/clinic-assist/pkg/errors"
)

// DiagnosisService runs the intake-to-result diagnosis flow.
type DiagnosisService interface {
	Diagnose(ctx context.Context, intake *entities.PatientIntake) (*entities.DiagnosisResult, error)
}

// DiagnosisHandler handles the intake form submission.
type DiagnosisHandler struct {
	service DiagnosisService
	state   *viewstate.State
}

// NewDiagnosisHandler creates a new diagnosis handler
func NewDiagnosisHandler(service DiagnosisService, state *viewstate.State) *DiagnosisHandler {
	return &DiagnosisHandler{
		service: service,
		state:   state,
	}
}

// Diagnose handles POST /diagnose. Invalid input is rejected before any
// request is issued, keeping the previously displayed result; once a request
// is issued the previous result is gone for good.
func (h *DiagnosisHandler) Diagnose(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.state.Diagnosis.Reject("invalid form submission")
		redirectToTab(w, r, "diagnosis")
		return
	}

	intake := &entities.PatientIntake{
		Name:     r.PostFormValue("name"),
		Age:      r.PostFormValue("age"),
		Gender:   entities.Gender(r.PostFormValue("gender")),
		Symptoms: r.PostFormValue("symptoms"),
	}

	if err := intake.Validate(); err != nil {
		h.state.Diagnosis.Reject(apperrors.UserMessage(err, "invalid intake form"))
		redirectToTab(w, r, "diagnosis")
		return
	}

	h.state.Diagnosis.Begin()
	result, err := h.service.Diagnose(r.Context(), intake)
	if err != nil {
		h.state.Diagnosis.Fail(apperrors.UserMessage(err, "diagnosis failed"))
		redirectToTab(w, r, "diagnosis")
		return
	}

	h.state.Diagnosis.Complete(result)
	redirectToTab(w, r, "diagnosis")
}

func redirectToTab(w http.ResponseWriter, r *http.Request, tab string) {
	http.Redirect(w, r, "/?tab="+tab, http.StatusSeeOther)
}
