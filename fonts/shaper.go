package fonts

import (
	"bytes"
	"fmt"
	"sync"
	"unicode"

	"github.com/go-text/typesetting/di"
	gofont "github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
)

// ShapedGlyph is a single shaped glyph with positioning in 1/1000 em units.
type ShapedGlyph struct {
	ID       int
	Cluster  int
	XAdvance float64
	YAdvance float64
	XOffset  float64
	YOffset  float64
}

// ShapeText shapes text with HarfBuzz and returns positioned glyphs. Used to
// measure runs in scripts where naive per-rune advances misplace marks and
// ligatures.
func ShapeText(fontData []byte, text string) ([]ShapedGlyph, error) {
	if len(fontData) == 0 {
		return nil, nil
	}
	face, err := gofont.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, err
	}
	return shapeRun(&shaping.HarfbuzzShaper{}, face, text), nil
}

// RunAdvance returns the total shaped advance of text in 1/1000 em.
func RunAdvance(fontData []byte, text string) (float64, error) {
	glyphs, err := ShapeText(fontData, text)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, g := range glyphs {
		total += g.XAdvance
	}
	return total, nil
}

// Shaped derives per-rune advance metrics from HarfBuzz shaping of a loaded
// font. The shaper and cache are guarded, so one instance can serve
// concurrent layouts.
type Shaped struct {
	name string
	face *gofont.Face

	mu     sync.Mutex
	shaper shaping.HarfbuzzShaper
	cache  map[rune]float64
}

// LoadShaped parses font data into shaping-backed metrics.
func LoadShaped(name string, data []byte) (*Shaped, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("shaped font data is empty")
	}
	face, err := gofont.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	if name == "" {
		name = "shaped"
	}
	return &Shaped{name: name, face: face, cache: make(map[rune]float64)}, nil
}

func (s *Shaped) Name() string { return s.name }

// Advance shapes r alone and returns its advance in 1/1000 em, falling back
// to the fixed-pitch default for characters the font cannot shape.
func (s *Shaped) Advance(r rune) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if w, ok := s.cache[r]; ok {
		return w
	}
	var total float64
	for _, g := range shapeRun(&s.shaper, s.face, string(r)) {
		total += g.XAdvance
	}
	w := 600.0
	if total > 0 {
		w = total
	}
	s.cache[r] = w
	return w
}

func shapeRun(shaper *shaping.HarfbuzzShaper, face *gofont.Face, text string) []ShapedGlyph {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}
	script := detectScript(runes)

	// Shape at 1000 units per em so advances come out in 1/1000 em.
	size := fixed.Int26_6(1000 * 64)

	input := shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: scriptDirection(script),
		Face:      face,
		Size:      size,
		Script:    script,
		Language:  language.DefaultLanguage(),
	}

	output := shaper.Shape(input)

	var result []ShapedGlyph
	for _, g := range output.Glyphs {
		result = append(result, ShapedGlyph{
			ID:       int(g.GlyphID),
			Cluster:  int(g.ClusterIndex),
			XAdvance: float64(g.XAdvance) / 64.0,
			YAdvance: float64(g.YAdvance) / 64.0,
			XOffset:  float64(g.XOffset) / 64.0,
			YOffset:  float64(g.YOffset) / 64.0,
		})
	}
	return result
}

func scriptDirection(script language.Script) di.Direction {
	switch script {
	case language.Arabic, language.Hebrew, language.Syriac, language.Thaana, language.Nko:
		return di.DirectionRTL
	default:
		return di.DirectionLTR
	}
}

func detectScript(runes []rune) language.Script {
	counts := make(map[language.Script]int)
	maxCount := 0
	bestScript := language.Latin

	for _, r := range runes {
		script := scriptFromRune(r)
		if script == language.Unknown {
			continue
		}
		counts[script]++
		if counts[script] > maxCount {
			maxCount = counts[script]
			bestScript = script
		}
	}
	return bestScript
}

func scriptFromRune(r rune) language.Script {
	switch {
	case unicode.Is(unicode.Arabic, r):
		return language.Arabic
	case unicode.Is(unicode.Hebrew, r):
		return language.Hebrew
	case unicode.Is(unicode.Latin, r):
		return language.Latin
	case unicode.Is(unicode.Cyrillic, r):
		return language.Cyrillic
	case unicode.Is(unicode.Greek, r):
		return language.Greek
	case unicode.Is(unicode.Han, r):
		return language.Han
	case unicode.Is(unicode.Hiragana, r), unicode.Is(unicode.Katakana, r):
		return language.Katakana
	case unicode.Is(unicode.Hangul, r):
		return language.Hangul
	case unicode.Is(unicode.Thai, r):
		return language.Thai
	case unicode.Is(unicode.Devanagari, r):
		return language.Devanagari
	default:
		return language.Unknown
	}
}
