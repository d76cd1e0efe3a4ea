package services

import (
	"bytes"
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/clinicware/clinic-assist/internal/domain/entities"
	"github.com/clinicware/clinic-assist/internal/infrastructure/clients/diagnosisapi"
	"github.com/clinicware/clinic-assist/internal/infrastructure/observability"
	apperrors "github.com/clinicware/clinic-assist/pkg/errors"
)

// Upload is one user-selected file handed to the medicine analysis flow.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

// MedicineService runs the image-upload-to-result medicine recognition
// flow. The file is validated locally before any network I/O.
type MedicineService struct {
	client  diagnosisapi.Client
	metrics *observability.Metrics
}

// NewMedicineService creates a new medicine analysis service
func NewMedicineService(client diagnosisapi.Client, metrics *observability.Metrics) *MedicineService {
	return &MedicineService{
		client:  client,
		metrics: metrics,
	}
}

// Validate checks the upload locally: a file must be selected, non-empty
// and an image. Runs before any network I/O; callers may use it to reject
// input without invalidating the currently displayed result.
func (s *MedicineService) Validate(upload Upload) error {
	if len(upload.Data) == 0 {
		return apperrors.NewValidationError("please choose an image file")
	}
	if !isImage(upload) {
		return apperrors.NewValidationError("please upload an image file")
	}
	return nil
}

// Analyze validates the upload and submits it for medicine recognition.
func (s *MedicineService) Analyze(ctx context.Context, upload Upload) (*entities.MedicineAnalysis, error) {
	if err := s.Validate(upload); err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := s.client.AnalyzeMedicine(ctx, upload.Filename, bytes.NewReader(upload.Data))
	observability.RecordUpstreamMetric(ctx, s.metrics, "analyze_medicine", err == nil, time.Since(start))
	if err != nil {
		observability.LoggerFromContext(ctx).Error().
			Err(err).
			Str("filename", upload.Filename).
			Msg("medicine analysis request failed")
		return nil, mapUpstreamError(err, genericAnalysisMessage)
	}

	observability.LoggerFromContext(ctx).Info().
		Str("status", result.Status).
		Int("matches", len(result.Medicines)).
		Msg("medicine analysis completed")
	return result, nil
}

// isImage accepts a declared image content type, and falls back to content
// sniffing when the browser sent nothing useful.
func isImage(upload Upload) bool {
	ct := strings.ToLower(strings.TrimSpace(upload.ContentType))
	if strings.HasPrefix(ct, "image/") {
		return true
	}
	if ct == "" || ct == "application/octet-stream" {
		return strings.HasPrefix(http.DetectContentType(upload.Data), "image/")
	}
	return false
}
