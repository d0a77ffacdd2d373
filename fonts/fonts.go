// Package fonts supplies character advance metrics to the layout stage.
// Widths are expressed in 1/1000 em so they scale linearly with font size.
package fonts

// Metrics measures per-character advances.
type Metrics interface {
	// Advance returns the horizontal advance of r in 1/1000 em.
	Advance(r rune) float64
	Name() string
}

// Width returns the rendered width of text at the given font size.
func Width(m Metrics, text string, size float64) float64 {
	var units float64
	for _, r := range text {
		units += m.Advance(r)
	}
	return units * size / 1000.0
}

type monospace struct {
	advance float64
}

// Monospace returns fixed-pitch metrics with the Courier advance of 600
// units per character. This is the default for code rendering.
func Monospace() Metrics {
	return monospace{advance: 600}
}

func (m monospace) Advance(rune) float64 { return m.advance }
func (m monospace) Name() string         { return "monospace" }
