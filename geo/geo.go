// Package geo holds page geometry: sizes, margins, paper presets and the
// affine transforms used to position glyph-local stroke paths on a page.
package geo

import (
	"errors"
	"math"
)

// Size is a page size in points.
type Size struct {
	Width  float64
	Height float64
}

// Standard paper presets. Tablet is the 1404x1872 e-ink portrait geometry.
var (
	A4     = Size{Width: 595.28, Height: 841.89}
	A5     = Size{Width: 419.53, Height: 595.28}
	Letter = Size{Width: 612, Height: 792}
	Tablet = Size{Width: 1404, Height: 1872}
)

// Margins defines page margins in points.
type Margins struct {
	Top, Right, Bottom, Left float64
}

// Uniform returns equal margins on all four sides.
func Uniform(m float64) Margins {
	return Margins{Top: m, Right: m, Bottom: m, Left: m}
}

// ContentWidth returns the horizontal space left inside the margins.
func (s Size) ContentWidth(m Margins) float64 { return s.Width - m.Left - m.Right }

// ContentHeight returns the vertical space left inside the margins.
func (s Size) ContentHeight(m Margins) float64 { return s.Height - m.Top - m.Bottom }

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether the point (x, y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Matrix is a 2D affine transform in the order a b c d e f.
type Matrix [6]float64

func Identity() Matrix { return Matrix{1, 0, 0, 1, 0, 0} }

func Translate(tx, ty float64) Matrix { return Matrix{1, 0, 0, 1, tx, ty} }

func Scale(sx, sy float64) Matrix { return Matrix{sx, 0, 0, sy, 0, 0} }

func Rotate(angle float64) Matrix {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return Matrix{c, s, -s, c, 0, 0}
}

// Multiply returns m followed by o.
func (m Matrix) Multiply(o Matrix) Matrix {
	return Matrix{
		m[0]*o[0] + m[1]*o[2],
		m[0]*o[1] + m[1]*o[3],
		m[2]*o[0] + m[3]*o[2],
		m[2]*o[1] + m[3]*o[3],
		m[4]*o[0] + m[5]*o[2] + o[4],
		m[4]*o[1] + m[5]*o[3] + o[5],
	}
}

// Apply transforms the point (x, y).
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// Inverse returns the inverse transform, or an error for a singular matrix.
func (m Matrix) Inverse() (Matrix, error) {
	det := m[0]*m[3] - m[1]*m[2]
	if math.Abs(det) < 1e-10 {
		return Matrix{}, errors.New("matrix singular")
	}
	return Matrix{
		m[3] / det, -m[1] / det,
		-m[2] / det, m[0] / det,
		(m[2]*m[5] - m[3]*m[4]) / det,
		(m[1]*m[4] - m[0]*m[5]) / det,
	}, nil
}
