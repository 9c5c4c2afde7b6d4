package mandel

import (
	"fmt"
	"image"
	"image/color"
)

// PixelBuffer is an RGB image, 3 bytes per pixel, row-major.
// It is laid out like image.RGBA and implements image.Image.
type PixelBuffer struct {
	Rect   image.Rectangle
	Pix    []uint8
	Stride int
}

// NewPixelBuffer returns a black buffer with bounds r.
func NewPixelBuffer(r image.Rectangle) *PixelBuffer {
	return &PixelBuffer{
		Rect:   r,
		Pix:    make([]uint8, 3*r.Dx()*r.Dy()),
		Stride: 3 * r.Dx(),
	}
}

func (b *PixelBuffer) ColorModel() color.Model { return color.RGBAModel }

func (b *PixelBuffer) Bounds() image.Rectangle { return b.Rect }

func (b *PixelBuffer) At(x, y int) color.Color {
	return b.RGBAAt(x, y)
}

// RGBAAt returns the opaque color of pixel (x, y), or the zero color outside the bounds.
func (b *PixelBuffer) RGBAAt(x, y int) color.RGBA {
	if !image.Pt(x, y).In(b.Rect) {
		return color.RGBA{}
	}
	i := b.PixOffset(x, y)
	return color.RGBA{R: b.Pix[i], G: b.Pix[i+1], B: b.Pix[i+2], A: 0xff}
}

// PixOffset returns the index of the first byte of pixel (x, y) in Pix.
func (b *PixelBuffer) PixOffset(x, y int) int {
	return (y-b.Rect.Min.Y)*b.Stride + (x-b.Rect.Min.X)*3
}

// Merge copies src into b at src's position, row by row.
// src must lie within b and be fully populated.
func (b *PixelBuffer) Merge(src *PixelBuffer) error {
	r := src.Rect
	if r.Empty() || !r.In(b.Rect) {
		return fmt.Errorf("%w: chunk %v outside image %v", ErrAssemblyMismatch, r, b.Rect)
	}
	if src.Stride != 3*r.Dx() || len(src.Pix) != src.Stride*r.Dy() {
		return fmt.Errorf("%w: chunk %v has %d bytes with stride %d", ErrAssemblyMismatch, r, len(src.Pix), src.Stride)
	}

	for y := r.Min.Y; y < r.Max.Y; y++ {
		srcRow := src.Pix[(y-r.Min.Y)*src.Stride:][:src.Stride]
		i := b.PixOffset(r.Min.X, y)
		copy(b.Pix[i:i+src.Stride], srcRow)
	}
	return nil
}
