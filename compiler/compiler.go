// Package compiler is the top-level entry point: source text in, ordered
// page drawing programs out. It chains the scanner, the layout calculator,
// the theme resolver and, in stroke mode, the stroke synthesizer, and emits
// the fixed primitive vocabulary an external vector backend consumes.
package compiler

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/crypto/blake2b"

	"github.com/wudi/inkkit/fonts"
	"github.com/wudi/inkkit/geo"
	"github.com/wudi/inkkit/glyphs"
	"github.com/wudi/inkkit/ink"
	"github.com/wudi/inkkit/layout"
	"github.com/wudi/inkkit/observability"
	"github.com/wudi/inkkit/recovery"
	"github.com/wudi/inkkit/scanner"
	"github.com/wudi/inkkit/strokes"
	"github.com/wudi/inkkit/themes"
)

// ErrEmptyInput reports an empty source with Options.DisallowEmpty set.
var ErrEmptyInput = errors.New("empty source")

// embedMarker prefixes the machine-parseable metadata text run so a
// downstream reader can find it without the original call parameters.
const embedMarker = "%%ink-meta "

// Options are the per-call render options. The zero value is unusable; start
// from DefaultOptions.
type Options struct {
	PageSize   geo.Size
	Margins    geo.Margins
	FontSize   float64
	LineHeight float64

	ShowLineNumbers bool
	ShowMetadata    bool
	EmbedMetadata   bool
	DebugMode       bool

	// StrokeMode replaces text runs with synthesized pen strokes.
	StrokeMode bool

	// DisallowEmpty turns an empty source into a caller-input error.
	DisallowEmpty bool
}

// DefaultOptions returns A4 geometry with 50pt margins, 12pt type and a 1.2
// line height.
func DefaultOptions() Options {
	return Options{
		PageSize:   geo.A4,
		Margins:    geo.Uniform(50),
		FontSize:   12,
		LineHeight: 1.2,
	}
}

// Request is one compile invocation.
type Request struct {
	Source   string
	Language string
	Theme    string
	Metadata *ink.Metadata
	Options  Options
}

// Engine compiles requests. It holds only immutable configuration after New
// and is safe for concurrent Compile calls.
type Engine struct {
	resolver *themes.Resolver
	library  *glyphs.Library
	metrics  fonts.Metrics
	log      observability.Logger
	tracer   observability.Tracer
	rec      recovery.Strategy
}

type Option func(*Engine)

// WithThemeProvider installs the provider consulted for non-built-in themes.
func WithThemeProvider(p themes.Provider) Option {
	return func(e *Engine) { e.resolver = themes.NewResolver(p) }
}

func WithMetrics(m fonts.Metrics) Option {
	return func(e *Engine) { e.metrics = m }
}

func WithLogger(log observability.Logger) Option {
	return func(e *Engine) { e.log = log }
}

func WithTracer(t observability.Tracer) Option {
	return func(e *Engine) { e.tracer = t }
}

// WithRecovery installs the strategy consulted on content degradations.
// The default absorbs them silently; a strict strategy turns them into
// compile errors.
func WithRecovery(r recovery.Strategy) Option {
	return func(e *Engine) { e.rec = r }
}

func New(opts ...Option) *Engine {
	e := &Engine{
		resolver: themes.NewResolver(nil),
		library:  glyphs.NewLibrary(),
		metrics:  fonts.Monospace(),
		log:      observability.NopLogger{},
		tracer:   observability.NopTracer(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Compile runs the full pipeline. Caller-input errors (unknown theme, empty
// source when disallowed) return an error and no pages; content anomalies
// degrade per the recovery strategy; structural invariant violations panic.
func (e *Engine) Compile(ctx context.Context, req Request) (*ink.Document, error) {
	started := time.Now()
	_, span := e.tracer.StartSpan(ctx, "inkkit.compile")
	defer span.Finish()

	if req.Source == "" && req.Options.DisallowEmpty {
		span.SetError(ErrEmptyInput)
		return nil, ErrEmptyInput
	}

	colors, err := e.resolver.Resolve(req.Theme)
	if err != nil {
		span.SetError(err)
		return nil, err
	}

	tokens, err := scanner.ScanWithConfig(req.Source, req.Language, scanner.Config{Recovery: e.rec})
	if err != nil {
		span.SetError(err)
		return nil, err
	}
	if !scanner.Covers(req.Source, tokens) {
		panic("inkkit: token stream does not cover source")
	}

	calc := layout.NewCalculator(
		layout.WithPageSize(req.Options.PageSize),
		layout.WithMargins(req.Options.Margins),
		layout.WithMetrics(e.metrics),
		layout.WithFontSize(req.Options.FontSize),
		layout.WithLineHeight(req.Options.LineHeight),
		layout.WithLineNumbers(req.Options.ShowLineNumbers),
		layout.WithFirstPageReserve(e.firstPageReserve(req, calcLineHeight(req.Options))),
	)
	pages := calc.Layout(tokens)

	doc := &ink.Document{Pages: make([]ink.PageProgram, 0, len(pages))}
	for _, page := range pages {
		prog, err := e.compilePage(page, req, calc, colors)
		if err != nil {
			span.SetError(err)
			return nil, err
		}
		doc.Pages = append(doc.Pages, prog)
	}

	e.log.Debug("compiled document",
		observability.String("language", req.Language),
		observability.Int(observability.MetricTokenCount, len(tokens)),
		observability.Int(observability.MetricPageCount, len(doc.Pages)),
		observability.Float64(observability.MetricCompileTime, time.Since(started).Seconds()),
	)
	span.SetTag(observability.MetricPageCount, len(doc.Pages))
	return doc, nil
}

func calcLineHeight(o Options) float64 { return o.FontSize * o.LineHeight }

// firstPageReserve computes the extra page-1 height for the metadata header,
// the embedded metadata run and the debug grid legend.
func (e *Engine) firstPageReserve(req Request, lineHeight float64) float64 {
	var reserve float64
	if req.Options.ShowMetadata && req.Metadata != nil {
		reserve += 2 * lineHeight
	}
	if req.Options.EmbedMetadata {
		reserve += lineHeight
	}
	if req.Options.DebugMode {
		reserve += lineHeight
	}
	return reserve
}

func (e *Engine) compilePage(page layout.Page, req Request, calc *layout.Calculator, colors themes.Colors) (ink.PageProgram, error) {
	o := req.Options
	lineHeight := calc.LineHeight()
	prog := ink.PageProgram{
		PageNumber: page.Number,
		Width:      o.PageSize.Width,
		Height:     o.PageSize.Height,
	}

	prog.Primitives = append(prog.Primitives, ink.Primitive{
		Kind:  ink.PrimBackground,
		Color: colors.Background,
		W:     o.PageSize.Width,
		H:     o.PageSize.Height,
	})

	if o.DebugMode {
		prog.Primitives = append(prog.Primitives,
			debugGrid(o.PageSize, lineHeight, colors.Comment),
			ink.Primitive{
				Kind:  ink.PrimRect,
				Color: colors.Comment,
				X:     o.Margins.Left,
				Y:     o.Margins.Top,
				W:     o.PageSize.ContentWidth(o.Margins),
				H:     o.PageSize.ContentHeight(o.Margins),
			},
		)
	}

	var reserve float64
	if page.Number == 1 {
		reserve = e.firstPageReserve(req, lineHeight)
		prog.Primitives = append(prog.Primitives, e.firstPageHeader(req, calc, colors)...)
	}

	if o.ShowMetadata && req.Metadata != nil {
		md := *req.Metadata
		md.LineCount = page.LineCount
		if o.EmbedMetadata {
			md.Fingerprint = Fingerprint(req.Source)
		}
		prog.Metadata = &md
	}

	synth := e.synthesizer(o)
	for i, line := range page.Lines {
		y := o.Margins.Top + reserve + float64(i+1)*lineHeight
		prims, err := e.compileLine(line, y, req, calc, colors, synth)
		if err != nil {
			return ink.PageProgram{}, err
		}
		prog.Primitives = append(prog.Primitives, prims...)
	}
	return prog, nil
}

// firstPageHeader emits the human-readable metadata header and the
// machine-parseable embedded metadata run at the top of page 1.
func (e *Engine) firstPageHeader(req Request, calc *layout.Calculator, colors themes.Colors) []ink.Primitive {
	o := req.Options
	var prims []ink.Primitive
	y := o.Margins.Top

	if o.EmbedMetadata {
		md := ink.Metadata{}
		if req.Metadata != nil {
			md = *req.Metadata
		}
		md.Fingerprint = Fingerprint(req.Source)
		payload, err := json.Marshal(md)
		if err != nil {
			panic(fmt.Sprintf("inkkit: metadata not serializable: %v", err))
		}
		y += calc.LineHeight()
		prims = append(prims, ink.Primitive{
			Kind:  ink.PrimText,
			Color: colors.Comment,
			X:     o.Margins.Left,
			Y:     y,
			Size:  o.FontSize / 2,
			Text:  embedMarker + string(payload),
		})
	}

	if o.ShowMetadata && req.Metadata != nil {
		md := req.Metadata
		title := md.Filename
		if md.Language != "" {
			title += "  [" + md.Language + "]"
		}
		y += calc.LineHeight()
		prims = append(prims, ink.Primitive{
			Kind:  ink.PrimText,
			Color: colors.Foreground,
			X:     o.Margins.Left,
			Y:     y,
			Size:  o.FontSize,
			Text:  title,
		})
		sub := md.Author
		for _, tag := range md.Tags {
			if sub != "" {
				sub += "  "
			}
			sub += "#" + tag
		}
		if sub != "" {
			y += calc.LineHeight()
			prims = append(prims, ink.Primitive{
				Kind:  ink.PrimText,
				Color: colors.Comment,
				X:     o.Margins.Left,
				Y:     y,
				Size:  o.FontSize * 0.85,
				Text:  sub,
			})
		}
	}
	return prims
}

func (e *Engine) synthesizer(o Options) *strokes.Synthesizer {
	if !o.StrokeMode {
		return nil
	}
	return strokes.New(e.library, o.FontSize,
		strokes.WithRecovery(e.rec),
	)
}

// compileLine walks a laid-out line left to right, advancing the cursor by
// each token's rendered width. All primitives on the line share one
// baseline.
func (e *Engine) compileLine(line layout.Line, y float64, req Request, calc *layout.Calculator, colors themes.Colors, synth *strokes.Synthesizer) ([]ink.Primitive, error) {
	o := req.Options
	var prims []ink.Primitive

	if o.ShowLineNumbers && !line.Wrapped {
		base := 1
		if req.Metadata != nil && req.Metadata.LineStart > 0 {
			base = req.Metadata.LineStart
		}
		prims = append(prims, ink.Primitive{
			Kind:  ink.PrimText,
			Color: colors.Comment,
			X:     o.Margins.Left,
			Y:     y,
			Size:  o.FontSize,
			Text:  strconv.Itoa(base + line.SourceLine - 1),
		})
	}

	x := calc.ContentLeft()
	var prevWord scanner.Token
	for _, tok := range line.Tokens {
		w := calc.TokenWidth(tok)
		if tok.Type != scanner.TokenWhitespace {
			color := tokenColor(tok, prevWord, colors)
			if synth != nil {
				group, err := synth.SynthesizeString(tok.Value, x, y)
				if err != nil {
					return nil, err
				}
				for i := range group {
					group[i].Color = color
				}
				if len(group) > 0 {
					prims = append(prims, ink.Primitive{
						Kind:    ink.PrimStrokeGroup,
						Color:   color,
						X:       x,
						Y:       y,
						Strokes: group,
					})
				}
			} else {
				prims = append(prims, ink.Primitive{
					Kind:  ink.PrimText,
					Color: color,
					X:     x,
					Y:     y,
					Size:  o.FontSize,
					Text:  tok.Value,
				})
			}
			prevWord = tok
		}
		x += w
	}
	return prims, nil
}

var (
	funcKeywords  = map[string]bool{"def": true, "func": true, "function": true}
	classKeywords = map[string]bool{"class": true, "type": true}
)

// tokenColor maps a token to its theme color. Identifiers directly after a
// function or class introducer take the function and class colors.
func tokenColor(tok, prev scanner.Token, colors themes.Colors) ink.Color {
	switch tok.Type {
	case scanner.TokenKeyword:
		return colors.Keyword
	case scanner.TokenBuiltin:
		return colors.FunctionName
	case scanner.TokenString:
		return colors.String
	case scanner.TokenComment:
		return colors.Comment
	case scanner.TokenNumber:
		return colors.Number
	case scanner.TokenOperator:
		return colors.Operator
	case scanner.TokenIdentifier:
		if prev.Type == scanner.TokenKeyword {
			if funcKeywords[prev.Value] {
				return colors.FunctionName
			}
			if classKeywords[prev.Value] {
				return colors.ClassName
			}
		}
		return colors.Identifier
	default:
		return colors.Foreground
	}
}

// debugGrid builds the full-page alignment overlay: one stroke group of
// horizontal and vertical rules at line-height spacing.
func debugGrid(size geo.Size, spacing float64, color ink.Color) ink.Primitive {
	var lines []ink.Stroke
	for yy := spacing; yy < size.Height; yy += spacing {
		lines = append(lines, gridLine(0, yy, size.Width, yy, color))
	}
	for xx := spacing; xx < size.Width; xx += spacing {
		lines = append(lines, gridLine(xx, 0, xx, size.Height, color))
	}
	return ink.Primitive{
		Kind:    ink.PrimStrokeGroup,
		Color:   color,
		W:       size.Width,
		H:       size.Height,
		Strokes: lines,
	}
}

func gridLine(x0, y0, x1, y1 float64, color ink.Color) ink.Stroke {
	return ink.Stroke{
		Points: []ink.Point{
			{X: x0, Y: y0, Pressure: 0.2},
			{X: x1, Y: y1, Pressure: 0.2},
		},
		Pen:   ink.PenMechanical,
		Color: color,
	}
}

// Fingerprint returns the hex BLAKE2b-256 digest of the source, embedded in
// metadata so a reader can match a drawing program to its source text.
func Fingerprint(source string) string {
	sum := blake2b.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}
