// Package layout paginates a token stream: tokens grouped by source line,
// lines wrapped at token boundaries against the content width, wrapped lines
// accumulated into fixed-height pages. Layout is deterministic and never
// drops or duplicates a token.
package layout

import (
	"github.com/wudi/inkkit/fonts"
	"github.com/wudi/inkkit/geo"
	"github.com/wudi/inkkit/scanner"
)

// Line is one rendered line: a segment of a source line's tokens. Wrapped
// marks continuation segments; they keep the original source line number so
// gutters can suppress the repeated number.
type Line struct {
	SourceLine int
	Tokens     []scanner.Token
	Width      float64
	Wrapped    bool
}

// Page is one bounded-geometry unit of output. LineCount counts only
// non-continuation lines, the figure shown in page metadata.
type Page struct {
	Number    int
	Lines     []Line
	LineCount int
}

// Calculator lays out token streams. It is immutable after construction and
// safe to share across concurrent layouts.
type Calculator struct {
	pageSize        geo.Size
	margins         geo.Margins
	metrics         fonts.Metrics
	fontSize        float64
	lineHeight      float64
	showLineNumbers bool
	firstReserve    float64
}

// Option configures a Calculator.
type Option func(*Calculator)

func WithPageSize(size geo.Size) Option {
	return func(c *Calculator) { c.pageSize = size }
}

func WithMargins(m geo.Margins) Option {
	return func(c *Calculator) { c.margins = m }
}

func WithMetrics(m fonts.Metrics) Option {
	return func(c *Calculator) { c.metrics = m }
}

func WithFontSize(size float64) Option {
	return func(c *Calculator) { c.fontSize = size }
}

// WithLineHeight sets the line height multiplier.
func WithLineHeight(multiplier float64) Option {
	return func(c *Calculator) { c.lineHeight = multiplier }
}

// WithLineNumbers reserves a left gutter for line numbers.
func WithLineNumbers(show bool) Option {
	return func(c *Calculator) { c.showLineNumbers = show }
}

// WithFirstPageReserve keeps extra vertical space on page 1, used for the
// metadata header and the debug alignment grid.
func WithFirstPageReserve(points float64) Option {
	return func(c *Calculator) { c.firstReserve = points }
}

// NewCalculator creates a calculator with A4 geometry, 50pt margins,
// monospace metrics, 12pt type and a 1.2 line height.
func NewCalculator(opts ...Option) *Calculator {
	c := &Calculator{
		pageSize:   geo.A4,
		margins:    geo.Uniform(50),
		metrics:    fonts.Monospace(),
		fontSize:   12,
		lineHeight: 1.2,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LineHeight returns the rendered height of one line in points.
func (c *Calculator) LineHeight() float64 { return c.fontSize * c.lineHeight }

// GutterWidth returns the width reserved for the line-number gutter, zero
// when line numbers are off. Sized for four digits plus a space.
func (c *Calculator) GutterWidth() float64 {
	if !c.showLineNumbers {
		return 0
	}
	return fonts.Width(c.metrics, "0000 ", c.fontSize)
}

// ContentLeft returns the x coordinate where line content starts.
func (c *Calculator) ContentLeft() float64 { return c.margins.Left + c.GutterWidth() }

// MaxLineWidth returns the horizontal space available to line content.
func (c *Calculator) MaxLineWidth() float64 {
	w := c.pageSize.ContentWidth(c.margins) - c.GutterWidth()
	if w < 0 {
		panic("inkkit: negative content width; margins exceed page size")
	}
	return w
}

// TokenWidth returns the rendered width of a token. Line terminators take no
// space; tabs render as four spaces.
func (c *Calculator) TokenWidth(tok scanner.Token) float64 {
	var units float64
	for _, r := range tok.Value {
		switch r {
		case '\n', '\r':
		case '\t':
			units += 4 * c.metrics.Advance(' ')
		default:
			units += c.metrics.Advance(r)
		}
	}
	w := units * c.fontSize / 1000.0
	if w < 0 {
		panic("inkkit: negative rendered width")
	}
	return w
}

// Layout paginates tokens. An empty stream yields exactly one page with no
// content lines.
func (c *Calculator) Layout(tokens []scanner.Token) []Page {
	lines := c.wrapAll(tokens)
	pages := c.paginate(lines)
	if len(tokens) > 0 && len(pages) == 0 {
		panic("inkkit: zero pages for non-empty input")
	}
	return pages
}

// wrapAll groups tokens by source line, preserving order, and wraps each
// group.
func (c *Calculator) wrapAll(tokens []scanner.Token) []Line {
	maxWidth := c.MaxLineWidth()
	var out []Line
	for start := 0; start < len(tokens); {
		end := start
		line := tokens[start].Line
		for end < len(tokens) && tokens[end].Line == line {
			end++
		}
		out = append(out, c.wrapLine(tokens[start:end], line, maxWidth)...)
		start = end
	}
	return out
}

// wrapLine splits one source line into segments at token boundaries. A token
// is never split: a single token wider than the available width is placed
// alone on its own, overflowing, line.
func (c *Calculator) wrapLine(tokens []scanner.Token, sourceLine int, maxWidth float64) []Line {
	var segs []Line
	cur := Line{SourceLine: sourceLine}
	flush := func() {
		segs = append(segs, cur)
		cur = Line{SourceLine: sourceLine, Wrapped: true}
	}
	for _, tok := range tokens {
		w := c.TokenWidth(tok)
		if len(cur.Tokens) > 0 && cur.Width+w > maxWidth {
			flush()
		}
		cur.Tokens = append(cur.Tokens, tok)
		cur.Width += w
		if w > maxWidth {
			// Oversized token occupies the whole line.
			flush()
		}
	}
	if len(cur.Tokens) > 0 || len(segs) == 0 {
		segs = append(segs, cur)
	}
	return segs
}

// paginate packs lines into pages top to bottom.
func (c *Calculator) paginate(lines []Line) []Page {
	lineHeight := c.LineHeight()
	usable := c.pageSize.ContentHeight(c.margins)
	if usable <= 0 {
		panic("inkkit: negative content height; margins exceed page size")
	}

	pages := []Page{{Number: 1}}
	used := c.firstReserve
	for _, line := range lines {
		if used+lineHeight > usable && len(pages[len(pages)-1].Lines) > 0 {
			pages = append(pages, Page{Number: len(pages) + 1})
			used = 0
		}
		p := &pages[len(pages)-1]
		p.Lines = append(p.Lines, line)
		if !line.Wrapped {
			p.LineCount++
		}
		used += lineHeight
	}
	return pages
}
