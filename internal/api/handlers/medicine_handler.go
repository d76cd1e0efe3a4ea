package handlers

import (
	"context"
	"io"
	"net/http"

	"github.com/clinicware/clinic-assist/internal/application/services"
	"github.com/clinicware/clinic-assist/internal/domain/entities"
	"github.com/clinicware/clinic-assist/internal/ui/viewstate"
	apperrors "github.com/clinicware/clinic-assist/pkg/errors"
)

const maxUploadBytes = 10 << 20

// MedicineService runs the image-upload medicine recognition flow.
type MedicineService interface {
	Validate(upload services.Upload) error
	Analyze(ctx context.Context, upload services.Upload) (*entities.MedicineAnalysis, error)
}

// MedicineHandler handles medicine image uploads.
type MedicineHandler struct {
	service MedicineService
	state   *viewstate.State
}

// NewMedicineHandler creates a new medicine analysis handler
func NewMedicineHandler(service MedicineService, state *viewstate.State) *MedicineHandler {
	return &MedicineHandler{
		service: service,
		state:   state,
	}
}

// Analyze handles POST /analyze_medicine. The upload is validated before the
// request is issued; a rejected file keeps the previously displayed result.
func (h *MedicineHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		h.state.Analysis.Reject("please choose an image file")
		redirectToTab(w, r, "medicine")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		h.state.Analysis.Reject("please choose an image file")
		redirectToTab(w, r, "medicine")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadBytes))
	if err != nil {
		h.state.Analysis.Reject("could not read the uploaded file")
		redirectToTab(w, r, "medicine")
		return
	}

	upload := services.Upload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}

	if err := h.service.Validate(upload); err != nil {
		h.state.Analysis.Reject(apperrors.UserMessage(err, "invalid upload"))
		redirectToTab(w, r, "medicine")
		return
	}

	h.state.Analysis.Begin()
	result, err := h.service.Analyze(r.Context(), upload)
	if err != nil {
		h.state.Analysis.Fail(apperrors.UserMessage(err, "medicine analysis failed"))
		redirectToTab(w, r, "medicine")
		return
	}

	h.state.Analysis.Complete(result)
	redirectToTab(w, r, "medicine")
}
