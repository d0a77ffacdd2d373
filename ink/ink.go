// Package ink defines the shared value types exchanged between the scanner,
// layout, stroke synthesis and page compilation stages: colors, strokes and
// the renderer-agnostic drawing-program vocabulary handed to an external
// vector backend.
package ink

import (
	"fmt"
	"strings"
)

// Color is a display color in #RRGGBB form.
type Color string

// ParseColor validates s and returns it as a Color. Accepted shape is a '#'
// followed by exactly six hex digits.
func ParseColor(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return "", fmt.Errorf("color %q: want #RRGGBB", s)
	}
	for i := 1; i < 7; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return "", fmt.Errorf("color %q: invalid hex digit %q", s, c)
		}
	}
	return Color(strings.ToLower(s)), nil
}

// RGB returns the 8-bit channel values.
func (c Color) RGB() (r, g, b uint8) {
	return hexByte(c[1], c[2]), hexByte(c[3], c[4]), hexByte(c[5], c[6])
}

func hexByte(hi, lo byte) uint8 { return nibble(hi)<<4 | nibble(lo) }

func nibble(c byte) uint8 {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10
	default:
		return 0
	}
}

// PenKind selects the semantic pen a stroke is drawn with. The external
// backend maps pens to device brush parameters.
type PenKind string

const (
	PenBallpoint  PenKind = "ballpoint"
	PenFineliner  PenKind = "fineliner"
	PenMechanical PenKind = "mechanical"
)

// Point is one pen sample. Pressure is in [0, 1].
type Point struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Pressure float64 `json:"p"`
}

// Stroke is one continuous pen movement. A stroke always has at least one
// point.
type Stroke struct {
	Points []Point `json:"points"`
	Pen    PenKind `json:"pen"`
	Color  Color   `json:"color"`
}

// PrimitiveKind enumerates the fixed drawing-program vocabulary.
type PrimitiveKind string

const (
	PrimBackground  PrimitiveKind = "background"
	PrimRect        PrimitiveKind = "rect"
	PrimStrokeGroup PrimitiveKind = "strokes"
	PrimText        PrimitiveKind = "text"
)

// Primitive is one drawing instruction. Only the fields relevant to Kind are
// populated: background uses Color alone; rect uses X/Y/W/H; strokes carries
// Strokes; text carries Text, Size and the baseline position X/Y.
type Primitive struct {
	Kind    PrimitiveKind `json:"kind"`
	Color   Color         `json:"color,omitempty"`
	X       float64       `json:"x,omitempty"`
	Y       float64       `json:"y,omitempty"`
	W       float64       `json:"w,omitempty"`
	H       float64       `json:"h,omitempty"`
	Text    string        `json:"text,omitempty"`
	Size    float64       `json:"size,omitempty"`
	Strokes []Stroke      `json:"strokes,omitempty"`
}

// Metadata describes the source a document was compiled from. LineStart and
// LineEnd offset displayed gutter numbers when the compiled text is an
// excerpt of a larger file.
type Metadata struct {
	Filename    string   `json:"filename,omitempty"`
	Language    string   `json:"language,omitempty"`
	Author      string   `json:"author,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	LineStart   int      `json:"line_start,omitempty"`
	LineEnd     int      `json:"line_end,omitempty"`
	LineCount   int      `json:"line_count,omitempty"`
	Fingerprint string   `json:"fingerprint,omitempty"`
}

// PageProgram is the compiled drawing program for one page.
type PageProgram struct {
	PageNumber int        `json:"page_number"`
	Width      float64    `json:"width"`
	Height     float64    `json:"height"`
	Primitives []Primitive `json:"primitives"`
	Metadata   *Metadata  `json:"metadata,omitempty"`
}

// Document is the ordered page list produced by one compile call.
type Document struct {
	Pages []PageProgram `json:"pages"`
}
