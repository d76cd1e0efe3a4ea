package viewstate

import (
	"sync"

	"github.com/clinicware/clinic-assist/internal/domain/entities"
)

// Slot holds the live result of one flow. At most one result is live at a
// time; starting a new request invalidates the previous result and error.
// Overlapping requests are not cancelled: whichever completes last owns the
// slot (last-writer-wins by completion order, not issuance order).
type Slot[T any] struct {
	mu      sync.Mutex
	loading bool
	result  *T
	err     string
}

// View is an immutable snapshot of a slot for rendering.
type View[T any] struct {
	Loading bool
	Result  *T
	Err     string
}

// Begin marks a new request in flight, discarding the previous result and
// any error shown for this flow.
func (s *Slot[T]) Begin() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	s.result = nil
	s.err = ""
}

// Complete stores a finished result. It overwrites whatever the slot holds,
// including results of requests issued later but completed earlier.
func (s *Slot[T]) Complete(result *T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.result = result
	s.err = ""
}

// Fail stores a failed request's user-facing message.
func (s *Slot[T]) Fail(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	s.result = nil
	s.err = message
}

// Reject records a validation message for input that never produced a
// request. The current result stays displayed alongside the message.
func (s *Slot[T]) Reject(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = message
}

// Snapshot returns the slot contents for rendering.
func (s *Slot[T]) Snapshot() View[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return View[T]{
		Loading: s.loading,
		Result:  s.result,
		Err:     s.err,
	}
}

// State holds the two independent flow slots of the page.
type State struct {
	Diagnosis *Slot[entities.DiagnosisResult]
	Analysis  *Slot[entities.MedicineAnalysis]
}

// New creates empty page state.
func New() *State {
	return &State{
		Diagnosis: &Slot[entities.DiagnosisResult]{},
		Analysis:  &Slot[entities.MedicineAnalysis]{},
	}
}
