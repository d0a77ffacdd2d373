// Package recovery defines the policy applied when source content degrades
// gracefully instead of rendering faithfully: unknown languages, characters
// with no authored glyph, strings left unterminated at end of line.
package recovery

type Strategy interface {
	OnDegraded(d Degradation) Action
}

// Kind classifies a content degradation.
type Kind int

const (
	UnknownLanguage Kind = iota
	UnterminatedString
	UnknownGlyph
)

func (k Kind) String() string {
	switch k {
	case UnknownLanguage:
		return "unknown language"
	case UnterminatedString:
		return "unterminated string"
	case UnknownGlyph:
		return "unknown glyph"
	default:
		return "degradation"
	}
}

// Degradation describes one absorbed content anomaly.
type Degradation struct {
	Kind      Kind
	Detail    string
	Line      int
	Component string
}

type Action int

const (
	ActionFail Action = iota
	ActionSkip
	ActionWarn
)
