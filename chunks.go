package mandel

import "image"

// Chunks splits a w × h image into chunks of chunkW × chunkH pixels,
// column by column, each column top to bottom.
// Chunks at the right and bottom edges are smaller if the image is not divisible.
func Chunks(w, h, chunkW, chunkH int) []image.Rectangle {
	if chunkW <= 0 || chunkH <= 0 {
		panic("chunk dimensions must be positive")
	}
	if w <= 0 || h <= 0 {
		return nil
	}

	cols := (w + chunkW - 1) / chunkW
	rows := (h + chunkH - 1) / chunkH
	chunks := make([]image.Rectangle, 0, cols*rows)

	for ox := 0; ox < w; ox += chunkW {
		cw := min(chunkW, w-ox)
		for oy := 0; oy < h; oy += chunkH {
			ch := min(chunkH, h-oy)
			chunks = append(chunks, image.Rect(ox, oy, ox+cw, oy+ch))
		}
	}

	return chunks
}
