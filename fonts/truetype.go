package fonts

import (
	"fmt"
	"strings"
	"sync"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// TrueType derives advance metrics from a parsed TrueType/OpenType font.
// Lookups are cached; the cache is guarded so a loaded font can serve
// concurrent compile calls.
type TrueType struct {
	name         string
	font         *sfnt.Font
	unitsPerEm   sfnt.Units
	ppem         fixed.Int26_6
	defaultWidth float64

	mu    sync.Mutex
	buf   sfnt.Buffer
	cache map[rune]float64
}

// LoadTrueType parses font data and extracts advance metrics. The name is
// cosmetic and overridden by the font's PostScript name when present.
func LoadTrueType(name string, data []byte) (*TrueType, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("truetype font data is empty")
	}
	font, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse truetype: %w", err)
	}
	unitsPerEm := font.UnitsPerEm()
	if unitsPerEm == 0 {
		return nil, fmt.Errorf("invalid unitsPerEm")
	}

	t := &TrueType{
		name:         strings.TrimSpace(name),
		font:         font,
		unitsPerEm:   unitsPerEm,
		ppem:         fixed.Int26_6(unitsPerEm << 6),
		defaultWidth: 600,
		cache:        make(map[rune]float64),
	}
	if ps, _ := font.Name(&t.buf, sfnt.NameIDPostScript); len(ps) > 0 {
		t.name = ps
	}
	if t.name == "" {
		t.name = "CustomTT"
	}
	return t, nil
}

func (t *TrueType) Name() string { return t.name }

// Advance returns the advance of r, or the default width when the font has
// no glyph for it.
func (t *TrueType) Advance(r rune) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	if w, ok := t.cache[r]; ok {
		return w
	}
	w := t.defaultWidth
	idx, err := t.font.GlyphIndex(&t.buf, r)
	if err == nil && idx != 0 {
		adv, err := t.font.GlyphAdvance(&t.buf, idx, t.ppem, xfont.HintingNone)
		if err == nil {
			w = scaleFixed(adv, t.unitsPerEm)
		}
	}
	t.cache[r] = w
	return w
}

func scaleFixed(val fixed.Int26_6, unitsPerEm sfnt.Units) float64 {
	return float64(val) * 1000.0 / (64.0 * float64(unitsPerEm))
}
