// Package glyphs holds the pre-authored handwriting stroke paths for each
// supported character. Paths are polylines in glyph-local coordinates inside
// a fixed cell; the stroke synthesizer translates and scales them onto the
// page. The table is built once at init and never mutated.
package glyphs

// Glyph cell geometry, in glyph-local units. The origin is the top-left of
// the cell; the baseline sits at y = CellAscent and descenders reach down to
// y = CellAscent + CellDescent. CellAdvance is the pen's horizontal step
// between characters.
const (
	CellWidth   = 10.0
	CellAscent  = 10.0
	CellDescent = 3.0
	CellHeight  = CellAscent + CellDescent
	CellAdvance = 12.0
)

// Path is one pen polyline in glyph-local coordinates. A path with a single
// point renders as a dot.
type Path [][2]float64

// Library answers character lookups against the authored stroke table.
type Library struct {
	glyphs map[rune][]Path
}

// NewLibrary returns the library over the built-in stroke table.
func NewLibrary() *Library {
	return &Library{glyphs: table}
}

// Lookup returns the stroke paths for r. The second result is false when the
// character has no authored glyph.
func (l *Library) Lookup(r rune) ([]Path, bool) {
	p, ok := l.glyphs[r]
	return p, ok
}

// Supported reports whether r has an authored glyph.
func (l *Library) Supported(r rune) bool {
	_, ok := l.glyphs[r]
	return ok
}

// Dot is the placeholder glyph for unsupported characters: a single pen
// touch at the center of the cell, visually distinct from any letterform.
func (l *Library) Dot() []Path {
	return []Path{{{CellWidth / 2, CellAscent / 2}}}
}

// Size returns the number of authored glyphs.
func (l *Library) Size() int { return len(l.glyphs) }
