package recovery

import (
	"fmt"
	"sync"
)

// StrictStrategy refuses any degradation. Useful for QA pipelines that want
// "renders something" upgraded to "renders faithfully or fails".
type StrictStrategy struct{}

func NewStrictStrategy() *StrictStrategy {
	return &StrictStrategy{}
}

func (s *StrictStrategy) OnDegraded(d Degradation) Action {
	return ActionFail
}

// LenientStrategy accumulates degradations and lets the pipeline continue.
// This is the default: every page renders something. The collected warnings
// are guarded, so one strategy can serve concurrent compile calls.
type LenientStrategy struct {
	mu       sync.Mutex
	warnings []error
}

func NewLenientStrategy() *LenientStrategy {
	return &LenientStrategy{}
}

func (s *LenientStrategy) OnDegraded(d Degradation) Action {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.warnings = append(s.warnings, fmt.Errorf("[%s] line %d: %s: %s", d.Component, d.Line, d.Kind, d.Detail))
	return ActionWarn
}

// Warnings returns a copy of the degradations collected so far.
func (s *LenientStrategy) Warnings() []error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]error(nil), s.warnings...)
}
