package mandel

import (
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPixelBufferMerge(t *testing.T) {
	dst := NewPixelBuffer(image.Rect(0, 0, 5, 4))

	src := NewPixelBuffer(image.Rect(3, 1, 5, 3))
	for i := range src.Pix {
		src.Pix[i] = uint8(i + 1)
	}
	if err := dst.Merge(src); err != nil {
		t.Fatalf("Merge: %v", err)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 5; x++ {
			got := dst.RGBAAt(x, y)
			want := color.RGBA{A: 0xff}
			if image.Pt(x, y).In(src.Rect) {
				want = src.RGBAAt(x, y)
			}
			if got != want {
				t.Errorf("pixel (%d, %d) = %v, want %v", x, y, got, want)
			}
		}
	}
	if got := dst.RGBAAt(4, 2); got != (color.RGBA{R: 10, G: 11, B: 12, A: 0xff}) {
		t.Errorf("last merged pixel = %v", got)
	}
}

func TestPixelBufferMergeMismatch(t *testing.T) {
	dst := NewPixelBuffer(image.Rect(0, 0, 4, 4))

	bad := []*PixelBuffer{
		NewPixelBuffer(image.Rect(2, 2, 6, 3)),
		NewPixelBuffer(image.Rect(-1, 0, 1, 1)),
		NewPixelBuffer(image.Rect(1, 1, 1, 1)),
		{Rect: image.Rect(0, 0, 2, 2), Pix: make([]uint8, 12), Stride: 8},
	}
	for _, src := range bad {
		if err := dst.Merge(src); !errors.Is(err, ErrAssemblyMismatch) {
			t.Errorf("Merge(%v) error = %v, want %v", src.Rect, err, ErrAssemblyMismatch)
		}
	}
}

func TestPixelBufferImage(t *testing.T) {
	var img image.Image = NewPixelBuffer(image.Rect(0, 0, 2, 2))
	if img.ColorModel() != color.RGBAModel {
		t.Error("unexpected color model")
	}
	if c := img.At(5, 5); c != (color.RGBA{}) {
		t.Errorf("At outside bounds = %v, want zero color", c)
	}
}
