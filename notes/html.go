package notes

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseHTML splits an HTML note into sections. <pre> blocks become code
// sections, taking the language from a "language-*" class on the <pre> or an
// inner <code>; headings, paragraphs and list items flatten into prose.
func ParseHTML(source string) ([]Section, error) {
	doc, err := html.Parse(strings.NewReader(source))
	if err != nil {
		return nil, err
	}

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

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.DataAtom {
			case atom.Pre:
				flushProse()
				sections = append(sections, Section{
					Kind:     SectionCode,
					Language: codeLanguage(n),
					Text:     strings.TrimSuffix(extractText(n), "\n"),
				})
				return
			case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6, atom.P, atom.Li:
				appendProse(&prose, strings.TrimSpace(extractText(n)))
				return
			case atom.Script, atom.Style:
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	flushProse()
	return sections, nil
}

// codeLanguage finds a "language-*" class on n or a nested <code> element.
func codeLanguage(n *html.Node) string {
	for _, attr := range n.Attr {
		if attr.Key != "class" {
			continue
		}
		for _, class := range strings.Fields(attr.Val) {
			if lang, ok := strings.CutPrefix(class, "language-"); ok {
				return lang
			}
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.Code {
			return codeLanguage(c)
		}
	}
	return ""
}

func extractText(n *html.Node) string {
	var b strings.Builder
	var f func(*html.Node)
	f = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			f(c)
		}
	}
	f(n)
	return b.String()
}
