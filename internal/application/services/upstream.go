package services

import (
	"errors"

	"github.com/clinicware/clinic-assist/internal/infrastructure/clients/diagnosisapi"
	apperrors "github.com/clinicware/clinic-assist/pkg/errors"
)

const (
	genericDiagnosisMessage = "The diagnosis service is currently unavailable. Please try again."
	genericAnalysisMessage  = "Medicine analysis failed. Please try again."
)

// mapUpstreamError converts a client error into a user-facing external
// error: the upstream detail field when the response carried one, the
// flow's generic message otherwise.
func mapUpstreamError(err error, fallback string) error {
	var apiErr *diagnosisapi.APIError
	if errors.As(err, &apiErr) && apiErr.Detail != "" {
		return apperrors.NewExternalError(apiErr.Detail, err)
	}
	return apperrors.NewExternalError(fallback, err)
}
