package entities

// AnalysisStatusSuccess marks a medicine analysis that matched at least one
// known medicine. Any other status carries a message instead.
const AnalysisStatusSuccess = "success"

// MedicineAnalysis is the response of the medicine recognition endpoint.
// It is a tagged union on Status: "success" carries Medicines, anything
// else carries Message. ExtractedText holds the raw OCR output either way.
type MedicineAnalysis struct {
	Status        string     `json:"status"`
	Medicines     []Medicine `json:"medicines,omitempty"`
	Message       string     `json:"message,omitempty"`
	ExtractedText string     `json:"extracted_text,omitempty"`
}

// Found reports whether the analysis matched any medicines.
func (a *MedicineAnalysis) Found() bool {
	return a.Status == AnalysisStatusSuccess
}
