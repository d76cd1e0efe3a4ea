package services

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clinicware/clinic-assist/internal/domain/entities"
	"github.com/clinicware/clinic-assist/internal/infrastructure/clients/diagnosisapi"
	apperrors "github.com/clinicware/clinic-assist/pkg/errors"
)

// stubClient records calls to the diagnosis service so tests can assert
// that validation failures never reach the network.
type stubClient struct {
	diagnoseCalls int
	gotSymptoms   []string
	diagnoseRes   *entities.DiagnosisResult
	diagnoseErr   error

	analyzeCalls int
	gotFilename  string
	gotData      []byte
	analyzeRes   *entities.MedicineAnalysis
	analyzeErr   error

	listCalls int
	listRes   []string
	listErr   error
}

func (s *stubClient) Diagnose(ctx context.Context, symptoms []string) (*entities.DiagnosisResult, error) {
	s.diagnoseCalls++
	s.gotSymptoms = symptoms
	return s.diagnoseRes, s.diagnoseErr
}

func (s *stubClient) AnalyzeMedicine(ctx context.Context, filename string, file io.Reader) (*entities.MedicineAnalysis, error) {
	s.analyzeCalls++
	s.gotFilename = filename
	s.gotData, _ = io.ReadAll(file)
	return s.analyzeRes, s.analyzeErr
}

func (s *stubClient) ListSymptoms(ctx context.Context) ([]string, error) {
	s.listCalls++
	return s.listRes, s.listErr
}

func TestDiagnose_MissingFieldNeverHitsNetwork(t *testing.T) {
	tests := []struct {
		name   string
		intake entities.PatientIntake
	}{
		{"empty name", entities.PatientIntake{Age: "34", Gender: entities.GenderFemale, Symptoms: "fever"}},
		{"empty age", entities.PatientIntake{Name: "Jane", Gender: entities.GenderFemale, Symptoms: "fever"}},
		{"empty gender", entities.PatientIntake{Name: "Jane", Age: "34", Symptoms: "fever"}},
		{"empty symptoms", entities.PatientIntake{Name: "Jane", Age: "34", Gender: entities.GenderFemale}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &stubClient{}
			service := NewDiagnosisService(client, nil)

			_, err := service.Diagnose(context.Background(), &tt.intake)
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Zero(t, client.diagnoseCalls)
		})
	}
}

func TestDiagnose_SymptomsCollapseToNothing(t *testing.T) {
	client := &stubClient{}
	service := NewDiagnosisService(client, nil)

	intake := &entities.PatientIntake{
		Name:     "Jane",
		Age:      "34",
		Gender:   entities.GenderFemale,
		Symptoms: " , ,, ",
	}

	_, err := service.Diagnose(context.Background(), intake)
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
	assert.Zero(t, client.diagnoseCalls)
}

func TestDiagnose_Success(t *testing.T) {
	want := &entities.DiagnosisResult{
		Diagnosis:  "Common Cold",
		Confidence: 0.8734,
	}
	client := &stubClient{diagnoseRes: want}
	service := NewDiagnosisService(client, nil)

	intake := &entities.PatientIntake{
		Name:     "Jane",
		Age:      "34",
		Gender:   entities.GenderFemale,
		Symptoms: "fever, cough ,headache",
	}

	got, err := service.Diagnose(context.Background(), intake)
	require.NoError(t, err)
	assert.Same(t, want, got)
	assert.Equal(t, 1, client.diagnoseCalls)
	assert.Equal(t, []string{"fever", "cough", "headache"}, client.gotSymptoms)
}

func TestDiagnose_UpstreamDetailSurfaces(t *testing.T) {
	client := &stubClient{
		diagnoseErr: &diagnosisapi.APIError{StatusCode: http.StatusBadRequest, Detail: "No symptoms provided"},
	}
	service := NewDiagnosisService(client, nil)

	intake := &entities.PatientIntake{Name: "Jane", Age: "34", Gender: entities.GenderMale, Symptoms: "fever"}

	_, err := service.Diagnose(context.Background(), intake)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)
	assert.Equal(t, "No symptoms provided", appErr.Message)
}

func TestDiagnose_TransportErrorUsesGenericMessage(t *testing.T) {
	client := &stubClient{diagnoseErr: errors.New("connection refused")}
	service := NewDiagnosisService(client, nil)

	intake := &entities.PatientIntake{Name: "Jane", Age: "34", Gender: entities.GenderMale, Symptoms: "fever"}

	_, err := service.Diagnose(context.Background(), intake)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, apperrors.ErrorTypeExternal, appErr.Type)
	assert.Equal(t, genericDiagnosisMessage, appErr.Message)
}

func TestDiagnose_UpstreamErrorWithoutDetailUsesGenericMessage(t *testing.T) {
	client := &stubClient{
		diagnoseErr: &diagnosisapi.APIError{StatusCode: http.StatusInternalServerError},
	}
	service := NewDiagnosisService(client, nil)

	intake := &entities.PatientIntake{Name: "Jane", Age: "34", Gender: entities.GenderMale, Symptoms: "fever"}

	_, err := service.Diagnose(context.Background(), intake)
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, genericDiagnosisMessage, appErr.Message)
}
