package recovery

import (
	"sync"
	"testing"
)

func TestStrictStrategy(t *testing.T) {
	if NewStrictStrategy().OnDegraded(Degradation{Kind: UnknownGlyph}) != ActionFail {
		t.Error("strict strategy must fail every degradation")
	}
}

func TestLenientStrategy(t *testing.T) {
	s := NewLenientStrategy()
	if s.OnDegraded(Degradation{Kind: UnterminatedString, Line: 3, Component: "scanner"}) != ActionWarn {
		t.Error("lenient strategy must continue")
	}
	warnings := s.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Error() == "" {
		t.Error("warning should describe the degradation")
	}
}

func TestLenientStrategy_Concurrent(t *testing.T) {
	s := NewLenientStrategy()
	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				s.OnDegraded(Degradation{Kind: UnknownGlyph, Component: "strokes"})
			}
		}()
	}
	wg.Wait()
	if got := len(s.Warnings()); got != 16*50 {
		t.Errorf("expected 800 warnings, got %d", got)
	}
}
