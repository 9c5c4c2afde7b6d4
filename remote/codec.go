package remote

import (
	"fmt"
	"image"
	"sync"

	"github.com/klauspost/compress/zstd"
	mandel "github.com/marben/chunked_mandel"
)

// Encoder and decoder are only used through EncodeAll/DecodeAll,
// which are safe for concurrent use.
var (
	encoder = sync.OnceValues(func() (*zstd.Encoder, error) {
		return zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedFastest))
	})
	decoder = sync.OnceValues(func() (*zstd.Decoder, error) {
		return zstd.NewReader(nil, zstd.WithDecoderMaxMemory(3*mandel.MaxPixels))
	})
)

func compressPixels(img *mandel.PixelBuffer) ([]byte, error) {
	enc, err := encoder()
	if err != nil {
		return nil, fmt.Errorf("zstd.NewWriter: %w", err)
	}
	return enc.EncodeAll(img.Pix, make([]byte, 0, len(img.Pix)/8)), nil
}

// decompressPixels rebuilds a w × h image from payload.
func decompressPixels(payload []byte, w, h int) (*mandel.PixelBuffer, error) {
	if w <= 0 || h <= 0 || w > mandel.MaxPixels/h {
		return nil, fmt.Errorf("bad image dimensions %dx%d", w, h)
	}
	dec, err := decoder()
	if err != nil {
		return nil, fmt.Errorf("zstd.NewReader: %w", err)
	}

	size := 3 * w * h
	pix, err := dec.DecodeAll(payload, make([]byte, 0, size))
	if err != nil {
		return nil, fmt.Errorf("decode pixels: %w", err)
	}
	if len(pix) != size {
		return nil, fmt.Errorf("decoded %d bytes of pixels, want %d for %dx%d", len(pix), size, w, h)
	}

	return &mandel.PixelBuffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    pix,
		Stride: 3 * w,
	}, nil
}
