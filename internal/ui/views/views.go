package views

import (
	"fmt"

	"github.com/clinicware/clinic-assist/internal/domain/entities"
	"github.com/clinicware/clinic-assist/internal/ui/viewstate"
)

// Tab names used by the page and the redirect targets of the form handlers.
const (
	TabDiagnosis = "diagnosis"
	TabMedicine  = "medicine"
)

// Page is the view model of the single tabbed page.
type Page struct {
	ActiveTab string
	Symptoms  []string
	Diagnosis DiagnosisView
	Analysis  AnalysisView
}

// DiagnosisView projects the diagnosis flow slot.
type DiagnosisView struct {
	Loading bool
	Err     string
	Result  *DiagnosisResultView
}

// DiagnosisResultView is a DiagnosisResult prepared for display.
type DiagnosisResultView struct {
	Diagnosis     string
	ConfidencePct string
	Disease       DiseaseInfoView
	// Others lists the alternative candidates: the primary diagnosis
	// duplicated at index 0 of the response array is excluded.
	Others    []CandidateView
	Medicines []MedicineView
}

// DiseaseInfoView carries the disease details of the primary diagnosis.
type DiseaseInfoView struct {
	Description string
	Severity    string
	Contagious  string
	Precautions string
}

// CandidateView is one alternative diagnosis with formatted confidence.
type CandidateView struct {
	Disease       string
	ConfidencePct string
}

// MedicineView is one medicine entry prepared for display.
type MedicineView struct {
	Name        string
	Usage       string
	Dosage      string
	SideEffects string
}

// AnalysisView projects the medicine analysis flow slot.
type AnalysisView struct {
	Loading bool
	Err     string
	Result  *AnalysisResultView
}

// AnalysisResultView renders the medicine analysis union: matched medicines
// on success, the not-found message plus extracted text otherwise.
type AnalysisResultView struct {
	Found         bool
	Medicines     []MedicineView
	Message       string
	ExtractedText string
}

// FormatConfidence renders a [0,1] confidence as a percentage with two
// decimal places: 0.8734 becomes "87.34%".
func FormatConfidence(confidence float64) string {
	return fmt.Sprintf("%.2f%%", confidence*100)
}

// NewPage assembles the page view model from the flow slots.
func NewPage(activeTab string, symptoms []string, diagnosis viewstate.View[entities.DiagnosisResult], analysis viewstate.View[entities.MedicineAnalysis]) Page {
	if activeTab != TabMedicine {
		activeTab = TabDiagnosis
	}
	return Page{
		ActiveTab: activeTab,
		Symptoms:  symptoms,
		Diagnosis: NewDiagnosisView(diagnosis),
		Analysis:  NewAnalysisView(analysis),
	}
}

// NewDiagnosisView projects a diagnosis slot snapshot.
func NewDiagnosisView(view viewstate.View[entities.DiagnosisResult]) DiagnosisView {
	out := DiagnosisView{
		Loading: view.Loading,
		Err:     view.Err,
	}
	if view.Result != nil {
		out.Result = NewDiagnosisResultView(view.Result)
	}
	return out
}

// NewDiagnosisResultView prepares one diagnosis result for display.
func NewDiagnosisResultView(result *entities.DiagnosisResult) *DiagnosisResultView {
	out := &DiagnosisResultView{
		Diagnosis:     result.Diagnosis,
		ConfidencePct: FormatConfidence(result.Confidence),
		Disease: DiseaseInfoView{
			Description: result.DiseaseInfo.Description,
			Severity:    result.DiseaseInfo.Severity,
			Contagious:  result.DiseaseInfo.Contagious,
			Precautions: result.DiseaseInfo.Precautions,
		},
		Medicines: newMedicineViews(result.Medicines),
	}

	if len(result.PossibleDiagnoses) > 1 {
		for _, candidate := range result.PossibleDiagnoses[1:] {
			out.Others = append(out.Others, CandidateView{
				Disease:       candidate.Disease,
				ConfidencePct: FormatConfidence(candidate.Confidence),
			})
		}
	}
	return out
}

// NewAnalysisView projects a medicine analysis slot snapshot.
func NewAnalysisView(view viewstate.View[entities.MedicineAnalysis]) AnalysisView {
	out := AnalysisView{
		Loading: view.Loading,
		Err:     view.Err,
	}
	if view.Result != nil {
		out.Result = &AnalysisResultView{
			Found:         view.Result.Found(),
			Medicines:     newMedicineViews(view.Result.Medicines),
			Message:       view.Result.Message,
			ExtractedText: view.Result.ExtractedText,
		}
	}
	return out
}

func newMedicineViews(medicines []entities.Medicine) []MedicineView {
	out := make([]MedicineView, 0, len(medicines))
	for _, m := range medicines {
		out = append(out, MedicineView{
			Name:        m.Name,
			Usage:       m.Usage,
			Dosage:      m.Dosage,
			SideEffects: m.SideEffects,
		})
	}
	return out
}
