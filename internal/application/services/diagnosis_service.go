package services

import (
	"context"
	"time"

	"github.com/clinicware/clinic-assist/internal/domain/entities"
	"github.com/clinicware/clinic-assist/internal/infrastructure/clients/diagnosisapi"
	"github.com/clinicware/clinic-assist/internal/infrastructure/observability"
)

// DiagnosisService runs the intake-to-result diagnosis flow: validate the
// intake, derive the symptom list and issue exactly one request to the
// diagnosis service. Validation failures never reach the network; transport
// failures are mapped to user-facing messages and never retried.
type DiagnosisService struct {
	client  diagnosisapi.Client
	metrics *observability.Metrics
}

// NewDiagnosisService creates a new diagnosis service
func NewDiagnosisService(client diagnosisapi.Client, metrics *observability.Metrics) *DiagnosisService {
	return &DiagnosisService{
		client:  client,
		metrics: metrics,
	}
}

// Diagnose validates the intake and requests a diagnosis for its symptoms.
func (s *DiagnosisService) Diagnose(ctx context.Context, intake *entities.PatientIntake) (*entities.DiagnosisResult, error) {
	if err := intake.Validate(); err != nil {
		return nil, err
	}
	symptoms := intake.SymptomList()

	start := time.Now()
	result, err := s.client.Diagnose(ctx, symptoms)
	observability.RecordUpstreamMetric(ctx, s.metrics, "diagnose", err == nil, time.Since(start))
	if err != nil {
		observability.LoggerFromContext(ctx).Error().
			Err(err).
			Strs("symptoms", symptoms).
			Msg("diagnosis request failed")
		return nil, mapUpstreamError(err, genericDiagnosisMessage)
	}

	observability.LoggerFromContext(ctx).Info().
		Str("diagnosis", result.Diagnosis).
		Float64("confidence", result.Confidence).
		Int("symptom_count", len(symptoms)).
		Msg("diagnosis completed")
	return result, nil
}
