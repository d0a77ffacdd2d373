package themes

import (
	"context"
	"errors"
	"testing"
)

func validRecord() map[string]string {
	return map[string]string{
		"background": "#ffffff", "foreground": "#000000",
		"keyword": "#aa0000", "string": "#00aa00", "comment": "#888888",
		"number": "#0000aa", "operator": "#333333", "identifier": "#000000",
		"function_name": "#000088", "class_name": "#880000",
	}
}

func TestResolve_Builtins(t *testing.T) {
	r := NewResolver(nil)
	for _, name := range BuiltinNames() {
		c, err := r.Resolve(name)
		if err != nil {
			t.Fatalf("builtin %q failed to resolve: %v", name, err)
		}
		if c.Background == "" || c.Keyword == "" {
			t.Errorf("builtin %q has empty fields: %+v", name, c)
		}
	}
	if len(BuiltinNames()) != 3 {
		t.Fatalf("expected 3 built-in themes, got %v", BuiltinNames())
	}
}

func TestResolve_DefaultsWhenUnnamed(t *testing.T) {
	c, err := NewResolver(nil).Resolve("")
	if err != nil {
		t.Fatalf("empty theme name should use default: %v", err)
	}
	want, _ := Builtin(DefaultTheme)
	if c != want {
		t.Errorf("expected default theme colors")
	}
}

func TestResolve_CustomProvider(t *testing.T) {
	r := NewResolver(MapProvider{"custom": validRecord()})
	c, err := r.Resolve("custom")
	if err != nil {
		t.Fatalf("custom theme failed: %v", err)
	}
	if c.Keyword != "#aa0000" {
		t.Errorf("unexpected keyword color %q", c.Keyword)
	}
}

func TestResolve_NotFound(t *testing.T) {
	r := NewResolver(MapProvider{})
	_, err := r.Resolve("not-a-real-theme")
	if !errors.Is(err, ErrThemeNotFound) {
		t.Fatalf("expected ErrThemeNotFound, got %v", err)
	}
}

func TestFromRecord_Validation(t *testing.T) {
	t.Run("Missing Field", func(t *testing.T) {
		rec := validRecord()
		delete(rec, "comment")
		if _, err := FromRecord(rec); err == nil {
			t.Error("expected error for missing field")
		}
	})
	t.Run("Malformed Color", func(t *testing.T) {
		rec := validRecord()
		rec["number"] = "blue"
		if _, err := FromRecord(rec); err == nil {
			t.Error("expected error for malformed color")
		}
	})
	t.Run("Case Normalized", func(t *testing.T) {
		rec := validRecord()
		rec["keyword"] = "#AA0000"
		c, err := FromRecord(rec)
		if err != nil {
			t.Fatal(err)
		}
		if c.Keyword != "#aa0000" {
			t.Errorf("expected lowercased color, got %q", c.Keyword)
		}
	})
}

func TestScriptProvider(t *testing.T) {
	script := `({
		background: "#fbf8f1", foreground: "#1a1a1a",
		keyword: "#7c3aed", string: "#15803d", comment: "#9ca3af",
		number: "#b45309", operator: "#334155", identifier: "#1a1a1a",
		function_name: "#1d4ed8", class_name: "#b91c1c"
	})`
	p, err := NewScriptProvider(context.Background(), map[string]string{"scripted": script})
	if err != nil {
		t.Fatalf("script provider: %v", err)
	}
	c, err := NewResolver(p).Resolve("scripted")
	if err != nil {
		t.Fatalf("resolve scripted theme: %v", err)
	}
	if c.FunctionName != "#1d4ed8" {
		t.Errorf("unexpected function color %q", c.FunctionName)
	}
}

func TestScriptProvider_BadScript(t *testing.T) {
	t.Run("Syntax Error", func(t *testing.T) {
		if _, err := NewScriptProvider(context.Background(), map[string]string{"bad": "({"}); err == nil {
			t.Error("expected error for broken script")
		}
	})
	t.Run("Wrong Shape", func(t *testing.T) {
		if _, err := NewScriptProvider(context.Background(), map[string]string{"bad": `({background: "#ffffff"})`}); err == nil {
			t.Error("expected error for incomplete record")
		}
	})
	t.Run("Non Object", func(t *testing.T) {
		if _, err := NewScriptProvider(context.Background(), map[string]string{"bad": "42"}); err == nil {
			t.Error("expected error for non-object result")
		}
	})
}
