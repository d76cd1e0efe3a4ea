package diagnosisapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnose_Success(t *testing.T) {
	var gotBody struct {
		Symptoms []string `json:"symptoms"`
	}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/diagnose", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"diagnosis": "Common Cold",
			"confidence": 0.8734,
			"disease_info": {
				"name": "Common Cold",
				"description": "A viral infection of the upper respiratory tract",
				"severity": "Mild",
				"contagious": "Yes",
				"precautions": "Rest and fluids"
			},
			"possible_diagnoses": [
				{"disease": "Common Cold", "confidence": 0.8734},
				{"disease": "Flu", "confidence": 0.0912},
				{"disease": "Allergy", "confidence": 0.0354}
			],
			"medicines": [
				{"name": "Paracetamol", "usage": "Fever reduction", "dosage": "500mg", "side_effects": "Rare at normal doses"}
			]
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	result, err := client.Diagnose(context.Background(), []string{"fever", "cough"})
	require.NoError(t, err)

	assert.Equal(t, []string{"fever", "cough"}, gotBody.Symptoms)
	assert.Equal(t, "Common Cold", result.Diagnosis)
	assert.InDelta(t, 0.8734, result.Confidence, 1e-9)
	assert.Equal(t, "Mild", result.DiseaseInfo.Severity)
	assert.Len(t, result.PossibleDiagnoses, 3)
	assert.Equal(t, "Common Cold", result.PossibleDiagnoses[0].Disease)
	require.Len(t, result.Medicines, 1)
	assert.Equal(t, "Paracetamol", result.Medicines[0].Name)
	assert.Equal(t, "Rare at normal doses", result.Medicines[0].SideEffects)
}

func TestDiagnose_ErrorWithDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		io.WriteString(w, `{"detail": "No symptoms provided"}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.Diagnose(context.Background(), nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "No symptoms provided", apiErr.Detail)
}

func TestDiagnose_ErrorWithoutDetail(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		io.WriteString(w, "upstream exploded")
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	_, err := client.Diagnose(context.Background(), []string{"fever"})
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.Empty(t, apiErr.Detail)
}

func TestAnalyzeMedicine_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/analyze_medicine", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()

		assert.Equal(t, "paracetamol.png", header.Filename)
		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "fake-image-bytes", string(data))

		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"status": "success",
			"medicines": [
				{"name": "Paracetamol", "usage": "Fever reduction", "dosage": "500mg", "side_effects": "Rare"}
			],
			"extracted_text": "paracetamol 500mg tablets"
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	result, err := client.AnalyzeMedicine(context.Background(), "paracetamol.png", strings.NewReader("fake-image-bytes"))
	require.NoError(t, err)

	assert.True(t, result.Found())
	require.Len(t, result.Medicines, 1)
	assert.Equal(t, "Paracetamol", result.Medicines[0].Name)
	assert.Equal(t, "paracetamol 500mg tablets", result.ExtractedText)
}

func TestAnalyzeMedicine_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{
			"status": "not_found",
			"message": "No medicine information found in the image",
			"extracted_text": "illegible scribbles"
		}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	result, err := client.AnalyzeMedicine(context.Background(), "photo.jpg", strings.NewReader("bytes"))
	require.NoError(t, err)

	assert.False(t, result.Found())
	assert.Equal(t, "No medicine information found in the image", result.Message)
	assert.Equal(t, "illegible scribbles", result.ExtractedText)
	assert.Empty(t, result.Medicines)
}

func TestListSymptoms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/symptoms", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, `{"symptoms": ["fever", "cough", "headache"]}`)
	}))
	defer server.Close()

	client := NewClient(server.URL, 0)
	symptoms, err := client.ListSymptoms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"fever", "cough", "headache"}, symptoms)
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:8000/", 0)
	assert.Equal(t, "http://localhost:8000", client.baseURL)
}
