// Package colorspace implements the linear-light color arithmetic used by
// the shading engine, plus conversion to the 8-bit display color the
// teacher's renderer works with.
package colorspace

import "math"

// Color is a linear RGB radiance value. Components are not clamped to
// [0,1] until final output — intermediate shading sums can exceed white.
type Color struct {
	R, G, B float64
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

func New(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Sub(o Color) Color {
	return Color{max0(c.R - o.R), max0(c.G - o.G), max0(c.B - o.B)}
}

func max0(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Illuminate multiplies c by a surface pigment color, as in shining light
// of color c onto a surface of color p.
func (c Color) Illuminate(p Color) Color {
	return Color{c.R * p.R, c.G * p.G, c.B * p.B}
}

// Intensity is the value the ADC bailout test compares against; the
// original library uses the max component rather than a luminance
// formula, so an adc_bailout of 1/255 means "no channel could possibly
// move the final 8-bit output".
func (c Color) Intensity() float64 {
	m := c.R
	if c.G > m {
		m = c.G
	}
	if c.B > m {
		m = c.B
	}
	return m
}

// Clamp restricts each channel to [0, 1].
func (c Color) Clamp() Color {
	return Color{clamp01(c.R), clamp01(c.G), clamp01(c.B)}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// ToRGB8 converts to the 8-bit display representation, gamma-uncorrected
// (the teacher's renderer consumes linear bytes directly).
func (c Color) ToRGB8() (r, g, b uint8) {
	cl := c.Clamp()
	return uint8(math.Round(cl.R * 255)), uint8(math.Round(cl.G * 255)), uint8(math.Round(cl.B * 255))
}

// Tcolor is a color with an associated transmittance (T): the fraction of
// light passing straight through the surface rather than being reflected
// or absorbed. T==0 is fully opaque.
type Tcolor struct {
	C Color
	T float64
}

func NewTcolor(c Color, t float64) Tcolor {
	return Tcolor{C: c, T: t}
}

// Filter attenuates light by this Tcolor's transmittance and tint,
// modeling light passing through a colored transparent surface.
func Filter(light Color, surface Tcolor) Color {
	return light.Scale(surface.T).Illuminate(surface.C)
}

const Epsilon = 1e-10
