// Package viewargs holds the command line arguments describing a view,
// shared by the commands that render or request exports.
package viewargs

import (
	"fmt"
	"strings"

	mandel "github.com/marben/chunked_mandel"
)

// View is embedded into go-arg argument structs, which supply the defaults
// of the export preset. An unset center or width shows the whole set.
type View struct {
	Region     string   `arg:"--region" help:"named landmark to center on, overrides --re/--im/--width"`
	Re         *float64 `arg:"--re" help:"real part of the center [default: -0.75]"`
	Im         *float64 `arg:"--im" help:"imaginary part of the center [default: 0]"`
	PlaneWidth *float64 `arg:"--width" help:"span of the real axis shown [default: 5]"`
	PixWidth   int      `arg:"--px-width" default:"5760" help:"image width in pixels"`
	PixHeight  int      `arg:"--px-height" default:"3240" help:"image height in pixels"`
	Iterations int      `arg:"-i,--iter" default:"4096" help:"iteration budget per pixel, at most 65535"`
	Chunk      int      `arg:"--chunk" default:"32" help:"edge of the square chunks rendered in parallel"`
}

// Request converts the arguments into a validated request.
func (v View) Request() (mandel.ViewRequest, error) {
	r := mandel.Export(mandel.HomeCenter, mandel.HomePlaneWidth)

	if v.Region != "" {
		region, ok := mandel.LandmarkByName(v.Region)
		if !ok {
			return r, fmt.Errorf("unknown region %q, known regions: %s", v.Region, strings.Join(mandel.LandmarkNames(), ", "))
		}
		r.Center, r.PlaneWidth = region.Center(), region.PlaneWidth()
	} else {
		re, im := real(r.Center), imag(r.Center)
		if v.Re != nil {
			re = *v.Re
		}
		if v.Im != nil {
			im = *v.Im
		}
		r.Center = complex(re, im)
		if v.PlaneWidth != nil {
			r.PlaneWidth = *v.PlaneWidth
		}
	}

	r.Width, r.Height = v.PixWidth, v.PixHeight
	r.MaxIterations = v.Iterations
	r.ChunkWidth, r.ChunkHeight = v.Chunk, v.Chunk

	if err := r.Validate(); err != nil {
		return r, err
	}
	return r, nil
}
