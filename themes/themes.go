// Package themes maps semantic token roles to display colors. Three built-in
// themes always resolve; custom themes come from an injected provider and a
// missing resource is a caller-visible error, never a silent substitution.
package themes

import (
	"errors"
	"fmt"
	"sort"

	"github.com/wudi/inkkit/ink"
)

// ErrThemeNotFound reports a requested custom theme with no matching
// resource.
var ErrThemeNotFound = errors.New("theme not found")

// Colors is the fixed 10-field color record every theme resolves to.
type Colors struct {
	Background   ink.Color
	Foreground   ink.Color
	Keyword      ink.Color
	String       ink.Color
	Comment      ink.Color
	Number       ink.Color
	Operator     ink.Color
	Identifier   ink.Color
	FunctionName ink.Color
	ClassName    ink.Color
}

// recordKeys lists the required keys of a theme resource, in record order.
var recordKeys = []string{
	"background", "foreground", "keyword", "string", "comment",
	"number", "operator", "identifier", "function_name", "class_name",
}

// FromRecord builds Colors from a flat resource record, checking all ten
// fields for presence and #RRGGBB shape.
func FromRecord(rec map[string]string) (Colors, error) {
	vals := make(map[string]ink.Color, len(recordKeys))
	for _, key := range recordKeys {
		raw, ok := rec[key]
		if !ok {
			return Colors{}, fmt.Errorf("theme record missing field %q", key)
		}
		c, err := ink.ParseColor(raw)
		if err != nil {
			return Colors{}, fmt.Errorf("theme field %q: %w", key, err)
		}
		vals[key] = c
	}
	return Colors{
		Background:   vals["background"],
		Foreground:   vals["foreground"],
		Keyword:      vals["keyword"],
		String:       vals["string"],
		Comment:      vals["comment"],
		Number:       vals["number"],
		Operator:     vals["operator"],
		Identifier:   vals["identifier"],
		FunctionName: vals["function_name"],
		ClassName:    vals["class_name"],
	}, nil
}

var builtins = map[string]Colors{
	"paper": {
		Background:   "#fbf8f1",
		Foreground:   "#1a1a1a",
		Keyword:      "#7c3aed",
		String:       "#15803d",
		Comment:      "#9ca3af",
		Number:       "#b45309",
		Operator:     "#334155",
		Identifier:   "#1a1a1a",
		FunctionName: "#1d4ed8",
		ClassName:    "#b91c1c",
	},
	"midnight": {
		Background:   "#1e1e2e",
		Foreground:   "#cdd6f4",
		Keyword:      "#cba6f7",
		String:       "#a6e3a1",
		Comment:      "#6c7086",
		Number:       "#fab387",
		Operator:     "#94e2d5",
		Identifier:   "#cdd6f4",
		FunctionName: "#89b4fa",
		ClassName:    "#f9e2af",
	},
	"graphite": {
		Background:   "#ffffff",
		Foreground:   "#202020",
		Keyword:      "#000000",
		String:       "#4b4b4b",
		Comment:      "#a0a0a0",
		Number:       "#303030",
		Operator:     "#202020",
		Identifier:   "#202020",
		FunctionName: "#000000",
		ClassName:    "#000000",
	},
}

// DefaultTheme is the theme used when the caller names none.
const DefaultTheme = "paper"

// Builtin returns a built-in theme by name.
func Builtin(name string) (Colors, bool) {
	c, ok := builtins[name]
	return c, ok
}

// BuiltinNames lists the built-in themes in sorted order.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Provider supplies custom theme records by name.
type Provider interface {
	Theme(name string) (map[string]string, bool)
}

// MapProvider serves theme records from memory.
type MapProvider map[string]map[string]string

func (p MapProvider) Theme(name string) (map[string]string, bool) {
	rec, ok := p[name]
	return rec, ok
}

// Resolver resolves theme names against the built-ins and an optional
// injected provider. A nil provider leaves only the built-ins.
type Resolver struct {
	provider Provider
}

func NewResolver(provider Provider) *Resolver {
	return &Resolver{provider: provider}
}

// Resolve returns the color record for name. Built-ins always resolve; any
// other name is looked up in the provider, and a miss wraps
// ErrThemeNotFound.
func (r *Resolver) Resolve(name string) (Colors, error) {
	if name == "" {
		name = DefaultTheme
	}
	if c, ok := builtins[name]; ok {
		return c, nil
	}
	if r.provider != nil {
		if rec, ok := r.provider.Theme(name); ok {
			return FromRecord(rec)
		}
	}
	return Colors{}, fmt.Errorf("%q: %w", name, ErrThemeNotFound)
}
