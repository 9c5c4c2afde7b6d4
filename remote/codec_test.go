package remote

import (
	"bytes"
	"testing"

	mandel "github.com/marben/chunked_mandel"
)

func TestPixelsCompression(t *testing.T) {
	r := mandel.Preview(mandel.HomeCenter, mandel.HomePlaneWidth)
	r.Width, r.Height, r.MaxIterations = 160, 100, 200
	img, err := mandel.NewEngine().Render(r)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	payload, err := compressPixels(img)
	if err != nil {
		t.Fatalf("compressPixels: %v", err)
	}
	if len(payload) >= len(img.Pix) {
		t.Errorf("compressed %d bytes into %d", len(img.Pix), len(payload))
	}

	got, err := decompressPixels(payload, 160, 100)
	if err != nil {
		t.Fatalf("decompressPixels: %v", err)
	}
	if got.Rect != img.Rect || got.Stride != img.Stride || !bytes.Equal(got.Pix, img.Pix) {
		t.Error("decompressed image differs")
	}

	if _, err := decompressPixels(payload, 100, 100); err == nil {
		t.Error("decompressPixels accepted wrong dimensions")
	}
	if _, err := decompressPixels([]byte("not zstd"), 160, 100); err == nil {
		t.Error("decompressPixels accepted garbage")
	}
	if _, err := decompressPixels(payload, 0, 100); err == nil {
		t.Error("decompressPixels accepted zero width")
	}
}
