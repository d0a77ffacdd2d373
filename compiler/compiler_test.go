package compiler

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/wudi/inkkit/fonts"
	"github.com/wudi/inkkit/geo"
	"github.com/wudi/inkkit/ink"
	"github.com/wudi/inkkit/recovery"
	"github.com/wudi/inkkit/strokes"
	"github.com/wudi/inkkit/themes"
)

func compile(t *testing.T, e *Engine, req Request) *ink.Document {
	t.Helper()
	doc, err := e.Compile(context.Background(), req)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return doc
}

func textRuns(p ink.PageProgram) []ink.Primitive {
	var out []ink.Primitive
	for _, prim := range p.Primitives {
		if prim.Kind == ink.PrimText {
			out = append(out, prim)
		}
	}
	return out
}

func TestCompile_PythonScenario(t *testing.T) {
	e := New()
	doc := compile(t, e, Request{
		Source:   "def f():\n    return 1",
		Language: "python",
		Options:  DefaultOptions(),
	})

	if len(doc.Pages) != 1 {
		t.Fatalf("expected exactly 1 page, got %d", len(doc.Pages))
	}
	p := doc.Pages[0]
	if p.PageNumber != 1 {
		t.Errorf("page number should be 1, got %d", p.PageNumber)
	}
	if p.Primitives[0].Kind != ink.PrimBackground {
		t.Errorf("first primitive should be the background fill, got %s", p.Primitives[0].Kind)
	}

	runs := textRuns(p)
	var texts []string
	for _, r := range runs {
		texts = append(texts, r.Text)
	}
	for _, want := range []string{"def", "f", "(", ")", ":", "return", "1"} {
		found := false
		for _, got := range texts {
			if got == want {
				found = true
			}
		}
		if !found {
			t.Errorf("missing text run %q in %v", want, texts)
		}
	}
}

func TestCompile_SharedBaselinePerLine(t *testing.T) {
	e := New()
	doc := compile(t, e, Request{Source: "a + b", Language: "python", Options: DefaultOptions()})
	runs := textRuns(doc.Pages[0])
	if len(runs) != 3 {
		t.Fatalf("expected 3 text runs, got %d", len(runs))
	}
	for _, r := range runs[1:] {
		if r.Y != runs[0].Y {
			t.Errorf("primitives on one line must share a y-coordinate: %g vs %g", r.Y, runs[0].Y)
		}
	}
	if !(runs[0].X < runs[1].X && runs[1].X < runs[2].X) {
		t.Errorf("cursor must advance left to right: %g %g %g", runs[0].X, runs[1].X, runs[2].X)
	}
}

func TestCompile_ThemeColors(t *testing.T) {
	e := New()
	doc := compile(t, e, Request{
		Source:   "def f():\n    return \"s\"  # c",
		Language: "python",
		Theme:    "paper",
		Options:  DefaultOptions(),
	})
	colors, _ := themes.Builtin("paper")

	byText := map[string]ink.Color{}
	for _, r := range textRuns(doc.Pages[0]) {
		byText[r.Text] = r.Color
	}
	if byText["def"] != colors.Keyword {
		t.Errorf("keyword color: got %s want %s", byText["def"], colors.Keyword)
	}
	if byText[`"s"`] != colors.String {
		t.Errorf("string color: got %s want %s", byText[`"s"`], colors.String)
	}
	if byText["# c"] != colors.Comment {
		t.Errorf("comment color: got %s want %s", byText["# c"], colors.Comment)
	}
	if byText["f"] != colors.FunctionName {
		t.Errorf("identifier after def should take the function color, got %s", byText["f"])
	}
}

func TestCompile_ThemeNotFound(t *testing.T) {
	e := New()
	_, err := e.Compile(context.Background(), Request{
		Source:  "x",
		Theme:   "not-a-real-theme",
		Options: DefaultOptions(),
	})
	if !errors.Is(err, themes.ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestCompile_EmptyInput(t *testing.T) {
	t.Run("Allowed", func(t *testing.T) {
		e := New()
		doc := compile(t, e, Request{
			Source:   "",
			Language: "python",
			Metadata: &ink.Metadata{Filename: "empty.py"},
			Options: func() Options {
				o := DefaultOptions()
				o.ShowMetadata = true
				return o
			}(),
		})
		if len(doc.Pages) != 1 {
			t.Fatalf("empty input should yield 1 page, got %d", len(doc.Pages))
		}
		if doc.Pages[0].Metadata == nil || doc.Pages[0].Metadata.LineCount != 0 {
			t.Errorf("line_count should be 0 for empty input: %+v", doc.Pages[0].Metadata)
		}
	})
	t.Run("Disallowed", func(t *testing.T) {
		e := New()
		o := DefaultOptions()
		o.DisallowEmpty = true
		_, err := e.Compile(context.Background(), Request{Source: "", Options: o})
		if !errors.Is(err, ErrEmptyInput) {
			t.Fatalf("expected ErrEmptyInput, got %v", err)
		}
	})
}

func TestCompile_Determinism(t *testing.T) {
	e := New()
	req := Request{
		Source:   "package main\n\nfunc main() {\n\tprintln(42)\n}\n",
		Language: "go",
		Theme:    "midnight",
		Metadata: &ink.Metadata{Filename: "main.go", Author: "t"},
		Options: func() Options {
			o := DefaultOptions()
			o.ShowLineNumbers = true
			o.ShowMetadata = true
			o.EmbedMetadata = true
			o.StrokeMode = true
			return o
		}(),
	}

	a, err := json.Marshal(compile(t, e, req))
	if err != nil {
		t.Fatal(err)
	}
	b, err := json.Marshal(compile(t, e, req))
	if err != nil {
		t.Fatal(err)
	}
	if string(a) != string(b) {
		t.Fatal("identical requests must produce byte-identical output")
	}
}

func TestCompile_LineNumbers(t *testing.T) {
	e := New()
	o := DefaultOptions()
	o.ShowLineNumbers = true
	doc := compile(t, e, Request{Source: "a\nb", Language: "plain", Options: o})
	runs := textRuns(doc.Pages[0])

	var gutter []string
	for _, r := range runs {
		if r.Text == "1" || r.Text == "2" {
			gutter = append(gutter, r.Text)
		}
	}
	if len(gutter) != 2 {
		t.Fatalf("expected gutter runs 1 and 2, got %v", gutter)
	}

	t.Run("Offset By LineStart", func(t *testing.T) {
		doc := compile(t, e, Request{
			Source:   "a",
			Language: "plain",
			Metadata: &ink.Metadata{LineStart: 41},
			Options:  o,
		})
		found := false
		for _, r := range textRuns(doc.Pages[0]) {
			if r.Text == "41" {
				found = true
			}
		}
		if !found {
			t.Error("gutter should start at metadata line_start")
		}
	})

	t.Run("Suppressed On Continuations", func(t *testing.T) {
		narrow := DefaultOptions()
		narrow.PageSize = geo.Size{Width: 160, Height: 500}
		narrow.Margins = geo.Uniform(20)
		narrow.ShowLineNumbers = true
		doc := compile(t, e, Request{
			Source:   strings.Repeat("w ", 40),
			Language: "plain",
			Options:  narrow,
		})
		count := 0
		for _, r := range textRuns(doc.Pages[0]) {
			if r.Text == "1" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("source line number must appear once, not on continuations; got %d", count)
		}
	})
}

func TestCompile_EmbedMetadata(t *testing.T) {
	e := New()
	o := DefaultOptions()
	o.EmbedMetadata = true
	src := "x = 1"
	doc := compile(t, e, Request{
		Source:   src,
		Language: "python",
		Metadata: &ink.Metadata{Filename: "x.py", Language: "python", Tags: []string{"snippet"}},
		Options:  o,
	})

	var embedded *ink.Primitive
	for i, prim := range doc.Pages[0].Primitives {
		if prim.Kind == ink.PrimText && strings.HasPrefix(prim.Text, embedMarker) {
			embedded = &doc.Pages[0].Primitives[i]
		}
	}
	if embedded == nil {
		t.Fatal("expected an embedded metadata run on page 1")
	}
	var md ink.Metadata
	if err := json.Unmarshal([]byte(strings.TrimPrefix(embedded.Text, embedMarker)), &md); err != nil {
		t.Fatalf("embedded metadata must be machine-parseable: %v", err)
	}
	if md.Filename != "x.py" || len(md.Tags) != 1 {
		t.Errorf("metadata fields lost: %+v", md)
	}
	if md.Fingerprint != Fingerprint(src) {
		t.Errorf("fingerprint mismatch: %s", md.Fingerprint)
	}
}

func TestCompile_DebugGrid(t *testing.T) {
	e := New()
	o := DefaultOptions()
	o.DebugMode = true
	doc := compile(t, e, Request{Source: "x", Language: "python", Options: o})

	var grid *ink.Primitive
	for i, prim := range doc.Pages[0].Primitives {
		if prim.Kind == ink.PrimStrokeGroup && prim.W == o.PageSize.Width {
			grid = &doc.Pages[0].Primitives[i]
		}
	}
	if grid == nil {
		t.Fatal("debug mode should overlay a full-page grid")
	}
	if len(grid.Strokes) == 0 {
		t.Fatal("grid has no rules")
	}

	foundRect := false
	for _, prim := range doc.Pages[0].Primitives {
		if prim.Kind == ink.PrimRect {
			foundRect = true
		}
	}
	if !foundRect {
		t.Error("debug mode should outline the content area")
	}
}

func TestCompile_StrokeMode(t *testing.T) {
	e := New()
	o := DefaultOptions()
	o.StrokeMode = true
	doc := compile(t, e, Request{Source: "hi", Language: "plain", Options: o})

	var groups []ink.Primitive
	for _, prim := range doc.Pages[0].Primitives {
		if prim.Kind == ink.PrimStrokeGroup {
			groups = append(groups, prim)
		}
	}
	if len(groups) != 1 {
		t.Fatalf("expected one stroke group for one token, got %d", len(groups))
	}
	for _, s := range groups[0].Strokes {
		if len(s.Points) == 0 {
			t.Fatal("stroke with zero points")
		}
	}
	for _, prim := range doc.Pages[0].Primitives {
		if prim.Kind == ink.PrimText {
			t.Errorf("stroke mode must not emit text runs: %q", prim.Text)
		}
	}
}

func TestCompile_StrictRecovery(t *testing.T) {
	t.Run("Unknown Language", func(t *testing.T) {
		e := New(WithRecovery(recovery.NewStrictStrategy()))
		_, err := e.Compile(context.Background(), Request{
			Source:   "x",
			Language: "made-up-language",
			Options:  DefaultOptions(),
		})
		if err == nil {
			t.Fatal("strict recovery should reject an unknown language")
		}
	})

	t.Run("Unknown Glyph In Stroke Mode", func(t *testing.T) {
		e := New(WithRecovery(recovery.NewStrictStrategy()))
		o := DefaultOptions()
		o.StrokeMode = true
		_, err := e.Compile(context.Background(), Request{
			Source:   "é",
			Language: "plain",
			Options:  o,
		})
		var derr *strokes.DegradedError
		if !errors.As(err, &derr) {
			t.Fatalf("strict recovery should reject an unknown glyph in stroke mode, got %v", err)
		}
		if derr.Degradation.Kind != recovery.UnknownGlyph {
			t.Errorf("degradation kind = %s", derr.Degradation.Kind)
		}
	})

	t.Run("Unknown Glyph Degrades By Default", func(t *testing.T) {
		e := New()
		o := DefaultOptions()
		o.StrokeMode = true
		doc := compile(t, e, Request{Source: "é", Language: "plain", Options: o})
		if len(doc.Pages) != 1 {
			t.Fatalf("expected 1 page, got %d", len(doc.Pages))
		}
	})
}

func TestCompile_ProportionalMetrics(t *testing.T) {
	m, err := fonts.LoadShaped("go-regular", goregular.TTF)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	e := New(WithMetrics(m))
	doc := compile(t, e, Request{Source: "ill mmm", Language: "plain", Options: DefaultOptions()})

	runs := textRuns(doc.Pages[0])
	if len(runs) != 2 {
		t.Fatalf("expected 2 text runs, got %d", len(runs))
	}
	gap := runs[1].X - runs[0].X
	want := fonts.Width(m, "ill ", DefaultOptions().FontSize)
	if math.Abs(gap-want) > 1e-9 {
		t.Errorf("cursor advanced %g, shaped metrics say %g", gap, want)
	}
	if mono := fonts.Width(fonts.Monospace(), "ill ", DefaultOptions().FontSize); gap >= mono {
		t.Errorf("proportional 'ill ' (%g) should be narrower than fixed pitch (%g)", gap, mono)
	}
}

func TestCompile_MultiPageMetadataLineCount(t *testing.T) {
	e := New()
	o := DefaultOptions()
	o.PageSize = geo.Size{Width: 400, Height: 200}
	o.Margins = geo.Uniform(20)
	o.ShowMetadata = true
	src := strings.TrimSuffix(strings.Repeat("x\n", 40), "\n")
	doc := compile(t, e, Request{
		Source:   src,
		Language: "plain",
		Metadata: &ink.Metadata{Filename: "x.txt"},
		Options:  o,
	})

	if len(doc.Pages) < 2 {
		t.Fatalf("expected multiple pages, got %d", len(doc.Pages))
	}
	total := 0
	for _, p := range doc.Pages {
		if p.Metadata == nil {
			t.Fatal("show_metadata should attach metadata to every page")
		}
		total += p.Metadata.LineCount
	}
	if total != 40 {
		t.Errorf("per-page line counts should sum to 40, got %d", total)
	}
}

func TestFingerprint(t *testing.T) {
	if Fingerprint("a") == Fingerprint("b") {
		t.Error("distinct sources should not collide")
	}
	if len(Fingerprint("x")) != 64 {
		t.Errorf("expected 256-bit hex digest, got %d chars", len(Fingerprint("x")))
	}
}
