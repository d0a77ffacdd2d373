// Package strokes turns glyph cell paths into positioned pen strokes. A
// synthesizer is immutable after construction and safe to share between
// compile calls.
package strokes

import (
	"math"

	"github.com/wudi/inkkit/geo"
	"github.com/wudi/inkkit/glyphs"
	"github.com/wudi/inkkit/ink"
	"github.com/wudi/inkkit/recovery"
)

// Synthesizer renders characters as pen strokes at a given font size.
type Synthesizer struct {
	lib      *glyphs.Library
	pen      ink.PenKind
	color    ink.Color
	scale    float64
	lineStep float64
	rec      recovery.Strategy
}

type Option func(*Synthesizer)

func WithPen(pen ink.PenKind) Option {
	return func(s *Synthesizer) { s.pen = pen }
}

func WithColor(c ink.Color) Option {
	return func(s *Synthesizer) { s.color = c }
}

// WithLineStep overrides the vertical step taken on a line break.
func WithLineStep(step float64) Option {
	return func(s *Synthesizer) { s.lineStep = step }
}

// WithRecovery installs the strategy notified when a character has no
// authored glyph.
func WithRecovery(r recovery.Strategy) Option {
	return func(s *Synthesizer) { s.rec = r }
}

// New builds a synthesizer rendering glyphs at fontSize points: the glyph
// cell is scaled so its full height matches the font size.
func New(lib *glyphs.Library, fontSize float64, opts ...Option) *Synthesizer {
	s := &Synthesizer{
		lib:   lib,
		pen:   ink.PenFineliner,
		color: "#1a1a1a",
		scale: fontSize / glyphs.CellHeight,
	}
	s.lineStep = glyphs.CellHeight * s.scale * 1.3
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Advance returns the horizontal pen step per character, in points.
func (s *Synthesizer) Advance() float64 { return glyphs.CellAdvance * s.scale }

// LineStep returns the vertical pen step per line break, in points.
func (s *Synthesizer) LineStep() float64 { return s.lineStep }

// DegradedError is returned when the recovery strategy rejects a
// degradation.
type DegradedError struct {
	Degradation recovery.Degradation
}

func (e *DegradedError) Error() string {
	return "synthesis rejected: " + e.Degradation.Kind.String() + ": " + e.Degradation.Detail
}

// Synthesize returns the strokes for one character anchored so the glyph
// cell's baseline sits at (x, y). An unsupported character follows the
// recovery strategy: fail returns a DegradedError, skip emits nothing, and
// the default renders the dot placeholder.
func (s *Synthesizer) Synthesize(r rune, x, y float64) ([]ink.Stroke, error) {
	paths, ok := s.lib.Lookup(r)
	if !ok {
		d := recovery.Degradation{
			Kind:      recovery.UnknownGlyph,
			Detail:    string(r),
			Component: "strokes",
		}
		switch s.degrade(d) {
		case recovery.ActionFail:
			return nil, &DegradedError{Degradation: d}
		case recovery.ActionSkip:
			return nil, nil
		}
		paths = s.lib.Dot()
	}
	return s.place(paths, x, y), nil
}

func (s *Synthesizer) degrade(d recovery.Degradation) recovery.Action {
	if s.rec == nil {
		return recovery.ActionWarn
	}
	return s.rec.OnDegraded(d)
}

// SynthesizeString walks text from (x, y), advancing the pen a fixed
// horizontal step per character and a fixed vertical step per line break.
// Whitespace advances the pen without touching the page; a skipped glyph
// still advances so the surrounding characters hold their positions.
func (s *Synthesizer) SynthesizeString(text string, x, y float64) ([]ink.Stroke, error) {
	var out []ink.Stroke
	curX, curY := x, y
	for _, r := range text {
		switch r {
		case '\n':
			curX = x
			curY += s.lineStep
		case ' ', '\t', '\r':
			curX += s.Advance()
		default:
			strokes, err := s.Synthesize(r, curX, curY)
			if err != nil {
				return nil, err
			}
			out = append(out, strokes...)
			curX += s.Advance()
		}
	}
	return out, nil
}

// place maps glyph-local paths onto the page through one affine: scale to
// the font size, then translate so the cell baseline lands on (x, y).
func (s *Synthesizer) place(paths []glyphs.Path, x, y float64) []ink.Stroke {
	m := geo.Scale(s.scale, s.scale).Multiply(geo.Translate(x, y-glyphs.CellAscent*s.scale))
	out := make([]ink.Stroke, 0, len(paths))
	for _, path := range paths {
		if len(path) == 0 {
			panic("inkkit: empty glyph path")
		}
		points := make([]ink.Point, len(path))
		for i, pt := range path {
			px, py := m.Apply(pt[0], pt[1])
			points[i] = ink.Point{X: px, Y: py, Pressure: pressureAt(i, len(path))}
		}
		out = append(out, ink.Stroke{Points: points, Pen: s.pen, Color: s.color})
	}
	return out
}

// pressureAt tapers pressure along a path: light at the ends, heavier in the
// middle, as a real pen lands and lifts.
func pressureAt(i, n int) float64 {
	if n <= 1 {
		return 0.5
	}
	return 0.55 + 0.35*math.Sin(math.Pi*float64(i)/float64(n-1))
}
