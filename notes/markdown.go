package notes

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// ParseMarkdown splits a markdown note into sections using goldmark. Fenced
// and indented code blocks become code sections; the info string of a fence
// supplies the language. Everything else flattens into prose, with adjacent
// prose blocks merged into one section.
func ParseMarkdown(source string) []Section {
	src := []byte(source)
	doc := goldmark.New().Parser().Parse(text.NewReader(src))

	var (
		sections []Section
		prose    strings.Builder
	)
	flushProse := func() {
		if prose.Len() == 0 {
			return
		}
		sections = append(sections, Section{Kind: SectionProse, Text: prose.String()})
		prose.Reset()
	}

	for child := doc.FirstChild(); child != nil; child = child.NextSibling() {
		switch n := child.(type) {
		case *ast.FencedCodeBlock:
			flushProse()
			sections = append(sections, Section{
				Kind:     SectionCode,
				Language: string(n.Language(src)),
				Text:     blockLines(n, src),
			})
		case *ast.CodeBlock:
			flushProse()
			sections = append(sections, Section{Kind: SectionCode, Text: blockLines(n, src)})
		case *ast.Heading:
			appendProse(&prose, string(n.Text(src)))
		case *ast.Paragraph:
			appendProse(&prose, paragraphText(n, src))
		case *ast.List:
			for item := n.FirstChild(); item != nil; item = item.NextSibling() {
				appendProse(&prose, "- "+string(item.Text(src)))
			}
		default:
			if t := string(child.Text(src)); t != "" {
				appendProse(&prose, t)
			}
		}
	}
	flushProse()
	return sections
}

func appendProse(b *strings.Builder, line string) {
	if line == "" {
		return
	}
	if b.Len() > 0 {
		b.WriteByte('\n')
	}
	b.WriteString(line)
}

// blockLines reassembles a code block's raw source lines, dropping the
// trailing newline the fence syntax requires.
func blockLines(n ast.Node, src []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(src))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

// paragraphText joins a paragraph's inline children, turning soft breaks into
// spaces the way a renderer would.
func paragraphText(n *ast.Paragraph, src []byte) string {
	var b strings.Builder
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		if t, ok := child.(*ast.Text); ok {
			b.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				b.WriteByte(' ')
			}
			continue
		}
		b.WriteString(string(child.Text(src)))
	}
	return strings.TrimSpace(b.String())
}
