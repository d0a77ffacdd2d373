// Package notes extracts compilable sections from authored documents. A
// markdown or HTML note is split into prose passages and fenced code blocks;
// each section compiles to its own page run and the runs concatenate into one
// document.
package notes

import (
	"context"
	"strings"

	"github.com/wudi/inkkit/compiler"
	"github.com/wudi/inkkit/ink"
)

// SectionKind separates code blocks from the surrounding prose.
type SectionKind int

const (
	SectionProse SectionKind = iota
	SectionCode
)

func (k SectionKind) String() string {
	if k == SectionCode {
		return "code"
	}
	return "prose"
}

// Section is one contiguous run of note content. Language is set only for
// code sections that declared one.
type Section struct {
	Kind     SectionKind
	Language string
	Text     string
}

// Compile renders sections in order with e and concatenates the resulting
// pages into one document, renumbered sequentially. base supplies the theme,
// metadata and render options; source and language come from each section.
// Prose compiles with the generic grammar.
func Compile(ctx context.Context, e *compiler.Engine, sections []Section, base compiler.Request) (*ink.Document, error) {
	doc := &ink.Document{}
	for _, sec := range sections {
		if strings.TrimSpace(sec.Text) == "" {
			continue
		}
		req := base
		req.Source = sec.Text
		switch sec.Kind {
		case SectionCode:
			req.Language = sec.Language
		default:
			req.Language = "plain"
		}
		part, err := e.Compile(ctx, req)
		if err != nil {
			return nil, err
		}
		doc.Pages = append(doc.Pages, part.Pages...)
	}
	for i := range doc.Pages {
		doc.Pages[i].PageNumber = i + 1
	}
	return doc, nil
}
