package diagnosisapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/clinicware/clinic-assist/internal/domain/entities"
)

// Client is the boundary to the remote diagnosis service. The service owns
// all inference, OCR and medicine matching; this client only moves requests
// and responses across the wire.
type Client interface {
	Diagnose(ctx context.Context, symptoms []string) (*entities.DiagnosisResult, error)
	AnalyzeMedicine(ctx context.Context, filename string, file io.Reader) (*entities.MedicineAnalysis, error)
	ListSymptoms(ctx context.Context) ([]string, error)
}

// APIError is a non-2xx response from the diagnosis service. Detail carries
// the optional human-readable "detail" field of the error body; it is empty
// when the body had none.
type APIError struct {
	StatusCode int
	Detail     string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("diagnosis api returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("diagnosis api returned status %d", e.StatusCode)
}

// HTTPClient talks to the diagnosis service over HTTP.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the diagnosis service at baseURL. A
// non-positive timeout falls back to 30 seconds.
func NewClient(baseURL string, timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type diagnoseRequest struct {
	Symptoms []string `json:"symptoms"`
}

type symptomsResponse struct {
	Symptoms []string `json:"symptoms"`
}

// Diagnose submits a symptom list to POST /diagnose.
func (c *HTTPClient) Diagnose(ctx context.Context, symptoms []string) (*entities.DiagnosisResult, error) {
	payload, err := json.Marshal(diagnoseRequest{Symptoms: symptoms})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal diagnose request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/diagnose", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create diagnose request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	out := &entities.DiagnosisResult{}
	if err := c.do(req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// AnalyzeMedicine uploads an image to POST /analyze_medicine as multipart
// form data with a single "file" field.
func (c *HTTPClient) AnalyzeMedicine(ctx context.Context, filename string, file io.Reader) (*entities.MedicineAnalysis, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return nil, fmt.Errorf("failed to copy image data: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to close multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/analyze_medicine", body)
	if err != nil {
		return nil, fmt.Errorf("failed to create analyze request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	out := &entities.MedicineAnalysis{}
	if err := c.do(req, out); err != nil {
		return nil, err
	}
	return out, nil
}

// ListSymptoms fetches the known symptom tokens from GET /symptoms.
func (c *HTTPClient) ListSymptoms(ctx context.Context) ([]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/symptoms", nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create symptoms request: %w", err)
	}

	out := &symptomsResponse{}
	if err := c.do(req, out); err != nil {
		return nil, err
	}
	return out.Symptoms, nil
}

func (c *HTTPClient) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeAPIError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode diagnosis api response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return apiErr
	}

	var detail struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &detail); err == nil {
		apiErr.Detail = strings.TrimSpace(detail.Detail)
	}
	return apiErr
}
