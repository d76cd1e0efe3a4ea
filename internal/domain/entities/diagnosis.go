package entities

// DiseaseInfo describes the primary diagnosed disease
type DiseaseInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Severity    string `json:"severity"`
	Contagious  string `json:"contagious"`
	Precautions string `json:"precautions"`
}

// PossibleDiagnosis is one candidate disease with its model confidence
type PossibleDiagnosis struct {
	Disease    string  `json:"disease"`
	Confidence float64 `json:"confidence"`
}

// Medicine describes one recommended or recognized medicine
type Medicine struct {
	Name        string `json:"name"`
	Usage       string `json:"usage"`
	Dosage      string `json:"dosage"`
	SideEffects string `json:"side_effects"`
}

// DiagnosisResult is the response of the diagnosis service for one symptom
// submission. PossibleDiagnoses is sorted by descending confidence and its
// first entry duplicates the primary diagnosis. The UI owns at most one
// DiagnosisResult at a time; each new request replaces it wholesale.
type DiagnosisResult struct {
	Diagnosis         string              `json:"diagnosis"`
	Confidence        float64             `json:"confidence"`
	DiseaseInfo       DiseaseInfo         `json:"disease_info"`
	PossibleDiagnoses []PossibleDiagnosis `json:"possible_diagnoses"`
	Medicines         []Medicine          `json:"medicines"`
}
