package mandel

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// ExportFileName names a saved image after the view it shows, e.g.
// "mandelbrot_(-7.500e-1, 0.000e0)_5.000e0.png".
func ExportFileName(center complex128, planeWidth float64, ext string) string {
	return fmt.Sprintf("mandelbrot_(%s, %s)_%s.%s",
		sci(real(center)), sci(imag(center)), sci(planeWidth), strings.TrimPrefix(ext, "."))
}

// sci formats v with 3 decimals in scientific notation with a bare exponent.
func sci(v float64) string {
	s := strconv.FormatFloat(v, 'e', 3, 64)
	mant, exp, found := strings.Cut(s, "e")
	if !found {
		return s // NaN, Inf
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mant + "e" + strconv.Itoa(e)
}

// SavePNG writes img into dir under the export name of r and returns its path.
func SavePNG(dir string, r ViewRequest, img image.Image) (string, error) {
	path := filepath.Join(dir, ExportFileName(r.Center, r.PlaneWidth, "png"))
	if err := WritePNG(path, img); err != nil {
		return "", err
	}
	return path, nil
}

// WritePNG encodes img as a PNG file at path.
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return f.Close()
}
