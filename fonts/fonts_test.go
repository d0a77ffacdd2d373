package fonts

import (
	"math"
	"testing"

	"golang.org/x/image/font/gofont/goregular"
)

func TestMonospace(t *testing.T) {
	m := Monospace()
	if m.Advance('m') != m.Advance('i') {
		t.Error("monospace advances must be uniform")
	}
	if m.Advance('x') != 600 {
		t.Errorf("expected 600 units, got %f", m.Advance('x'))
	}
}

func TestWidth(t *testing.T) {
	m := Monospace()
	// 5 chars * 600/1000 em * 10pt
	if w := Width(m, "hello", 10); w != 30 {
		t.Errorf("expected width 30, got %f", w)
	}
	if w := Width(m, "", 10); w != 0 {
		t.Errorf("empty string should have zero width, got %f", w)
	}
}

func TestLoadTrueType_BadData(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if _, err := LoadTrueType("x", nil); err == nil {
			t.Error("expected error for empty data")
		}
	})
	t.Run("Garbage", func(t *testing.T) {
		if _, err := LoadTrueType("x", []byte("not a font")); err == nil {
			t.Error("expected error for garbage data")
		}
	})
}

func TestLoadTrueType_GoRegular(t *testing.T) {
	tt, err := LoadTrueType("", goregular.TTF)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if tt.Name() == "" {
		t.Error("expected a PostScript name")
	}
	i, m := tt.Advance('i'), tt.Advance('m')
	if i <= 0 || m <= 0 {
		t.Fatalf("advances must be positive: i=%g m=%g", i, m)
	}
	if i >= m {
		t.Errorf("proportional font: 'i' (%g) should be narrower than 'm' (%g)", i, m)
	}
	if tt.Advance('i') != i {
		t.Error("cached advance changed between lookups")
	}
}

func TestLoadShaped_GoRegular(t *testing.T) {
	s, err := LoadShaped("go-regular", goregular.TTF)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if s.Name() != "go-regular" {
		t.Errorf("name = %q", s.Name())
	}
	i, m := s.Advance('i'), s.Advance('m')
	if i <= 0 || m <= 0 {
		t.Fatalf("advances must be positive: i=%g m=%g", i, m)
	}
	if i >= m {
		t.Errorf("shaped metrics: 'i' (%g) should be narrower than 'm' (%g)", i, m)
	}
	if w := Width(s, "im", 10); w <= 0 {
		t.Errorf("width = %g", w)
	}
}

func TestLoadShaped_BadData(t *testing.T) {
	if _, err := LoadShaped("x", nil); err == nil {
		t.Error("expected error for empty data")
	}
	if _, err := LoadShaped("x", []byte("not a font")); err == nil {
		t.Error("expected error for garbage data")
	}
}

func TestShapeText_GoRegular(t *testing.T) {
	glyphs, err := ShapeText(goregular.TTF, "hello")
	if err != nil {
		t.Fatalf("shape: %v", err)
	}
	if len(glyphs) != 5 {
		t.Fatalf("expected 5 glyphs, got %d", len(glyphs))
	}
	for _, g := range glyphs {
		if g.XAdvance <= 0 {
			t.Errorf("glyph %d has non-positive advance %g", g.ID, g.XAdvance)
		}
	}

	one, err := RunAdvance(goregular.TTF, "m")
	if err != nil {
		t.Fatal(err)
	}
	two, err := RunAdvance(goregular.TTF, "mm")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(two-2*one) > one*0.05 {
		t.Errorf("'mm' advance %g should be close to twice 'm' advance %g", two, one)
	}
}

func TestShapeText_NoFont(t *testing.T) {
	glyphs, err := ShapeText(nil, "abc")
	if err != nil {
		t.Fatalf("nil font data should be a no-op: %v", err)
	}
	if glyphs != nil {
		t.Errorf("expected no glyphs, got %d", len(glyphs))
	}
}
