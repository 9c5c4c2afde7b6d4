package mandel

import (
	"fmt"
	"math"
	"strings"
)

// ViewRequest describes a single render: which part of the complex plane to
// show and how to rasterize it.
type ViewRequest struct {
	Center      complex128 // point shown by the center pixel
	Width       int        // image width in pixels
	Height      int        // image height in pixels
	PlaneWidth  float64    // span of the real axis covered by Width pixels
	ChunkWidth  int
	ChunkHeight int

	MaxIterations int // at most math.MaxUint16, escape counts are uint16
}

// MaxPixels bounds the size of a single render.
const MaxPixels = 1 << 28

// Validate reports why r can't be rendered, if it can't.
func (r ViewRequest) Validate() error {
	switch {
	case r.Width <= 0 || r.Height <= 0:
		return fmt.Errorf("%w: image dimensions %dx%d", ErrInvalidRequest, r.Width, r.Height)
	case !(r.PlaneWidth > 0) || math.IsInf(r.PlaneWidth, 0):
		return fmt.Errorf("%w: plane width %v", ErrInvalidRequest, r.PlaneWidth)
	case math.IsNaN(real(r.Center)) || math.IsNaN(imag(r.Center)) || math.IsInf(real(r.Center), 0) || math.IsInf(imag(r.Center), 0):
		return fmt.Errorf("%w: center %v", ErrInvalidRequest, r.Center)
	case r.ChunkWidth <= 0 || r.ChunkHeight <= 0:
		return fmt.Errorf("%w: chunk dimensions %dx%d", ErrInvalidRequest, r.ChunkWidth, r.ChunkHeight)
	case r.MaxIterations <= 0 || r.MaxIterations > math.MaxUint16:
		return fmt.Errorf("%w: max iterations %d not in [1, %d]", ErrInvalidRequest, r.MaxIterations, math.MaxUint16)
	}
	if r.Width > MaxPixels/r.Height {
		return fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrAllocation, r.Width, r.Height, MaxPixels)
	}
	return nil
}

// PointAt maps the absolute pixel (px, py), counted from the top-left corner
// of the image, to the complex plane. Pixels are square.
func (r ViewRequest) PointAt(px, py int) complex128 {
	scale := r.PlaneWidth / float64(r.Width)
	// explicit conversions keep the compiler from fusing multiply-adds
	cornerRe := real(r.Center) - float64(float64(r.Width)/2*scale)
	cornerIm := imag(r.Center) - float64(float64(r.Height)/2*scale)
	return complex(
		cornerRe+float64(float64(px)*scale),
		cornerIm+float64(float64(py)*scale),
	)
}

// Initial view of the explorer: the whole set.
const (
	HomeCenter     = complex(-0.75, 0)
	HomePlaneWidth = 5.0
)

// Preview returns the request used for interactive frames.
func Preview(center complex128, planeWidth float64) ViewRequest {
	return ViewRequest{
		Center:        center,
		Width:         1600,
		Height:        1000,
		PlaneWidth:    planeWidth,
		ChunkWidth:    32,
		ChunkHeight:   32,
		MaxIterations: 1024,
	}
}

// Export returns the request used for saving high resolution images.
func Export(center complex128, planeWidth float64) ViewRequest {
	return ViewRequest{
		Center:        center,
		Width:         5760,
		Height:        3240,
		PlaneWidth:    planeWidth,
		ChunkWidth:    32,
		ChunkHeight:   32,
		MaxIterations: 4096,
	}
}

// Region within the Mandelbrot set
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

func (r Region) Center() complex128 {
	return complex((r.Xmin+r.Xmax)/2, (r.Ymin+r.Ymax)/2)
}

// PlaneWidth is the horizontal span of the region.
func (r Region) PlaneWidth() float64 {
	return r.Xmax - r.Xmin
}

// Classic regions / landmarks in the Mandelbrot set
var (
	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220}
)

var landmarks = map[string]Region{
	"seahorse":        SeahorseValley,
	"elephant":        ElephantValley,
	"spiral-minibrot": SpiralMinibrot,
	"triple-spiral":   TripleSpiral,
	"dragon":          ValleyOfTheDragon,
	"mini-spiral":     MinibrotInMiniSpiral,
}

// LandmarkByName looks up one of the classic regions by its short name.
func LandmarkByName(name string) (Region, bool) {
	r, ok := landmarks[strings.ToLower(name)]
	return r, ok
}

// LandmarkNames lists the names accepted by LandmarkByName.
func LandmarkNames() []string {
	return []string{"seahorse", "elephant", "spiral-minibrot", "triple-spiral", "dragon", "mini-spiral"}
}
