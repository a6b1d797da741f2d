package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/mirstar13/dimension-prt/colorspace"
)

// Canvas is the writable image surface the render driver targets: a
// row-major grid of colorspace.Tcolor, grounded on the teacher's
// TerminalRenderer.ColorBuffer [][]Color (renderer_terminal.go), here
// flattened to one slice since every pixel is written by exactly one
// worker and never resized mid-render.
type Canvas struct {
	Width, Height int
	pixels        []colorspace.Tcolor
}

// NewCanvas allocates a width x height canvas, initialized to black.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		Width:  width,
		Height: height,
		pixels: make([]colorspace.Tcolor, width*height),
	}
}

// SetPixel implements the canvas contract spec.md §6 requires of the
// external collaborator: a single write by the owning worker.
func (c *Canvas) SetPixel(x, y int, tc colorspace.Tcolor) {
	c.pixels[y*c.Width+x] = tc
}

// At returns the color at (x, y).
func (c *Canvas) At(x, y int) colorspace.Tcolor {
	return c.pixels[y*c.Width+x]
}

// ToImage flattens the linear-light canvas to an 8-bit image.RGBA,
// dropping transmittance (opaque composite onto black) since a standard
// image format has no alpha-over-arbitrary-background semantics.
func (c *Canvas) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			tc := c.At(x, y)
			r, g, b := tc.C.ToRGB8()
			img.Set(x, y, color.RGBA{R: r, G: g, B: b, A: 255})
		}
	}
	return img
}

// SavePNG writes the canvas to path as a PNG, via disintegration/imaging
// (the same image-processing library the wider example pack standardizes
// on for encode/resize operations — the acceleration core never produces
// pixels directly to a GPU surface, only to this in-memory buffer).
func (c *Canvas) SavePNG(path string) error {
	return imaging.Save(c.renderRGBA(), path)
}

func (c *Canvas) renderRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			tc := c.At(x, y)
			r, g, b := tc.C.ToRGB8()
			i := img.PixOffset(x, y)
			img.Pix[i+0] = r
			img.Pix[i+1] = g
			img.Pix[i+2] = b
			img.Pix[i+3] = 255
		}
	}
	return img
}
