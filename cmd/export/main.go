// export renders a high resolution view of the Mandelbrot set on the local
// CPUs and saves it as a PNG file named after the view.

package main

import (
	"fmt"
	"image"
	"log"
	"strings"
	"sync/atomic"
	"time"

	"github.com/alexflint/go-arg"
	mandel "github.com/marben/chunked_mandel"
	"github.com/marben/chunked_mandel/internal/viewargs"
	"github.com/nfnt/resize"
	"github.com/pkg/profile"
)

type args struct {
	viewargs.View
	Out     string `arg:"-o,--out" default:"." help:"directory to save the image into"`
	Workers int    `arg:"-w,--workers" help:"chunks rendered in parallel [default: GOMAXPROCS]"`
	Thumb   uint   `arg:"--thumb" help:"also save a copy scaled down to this width"`
	Profile string `arg:"--profile" help:"write a cpu, mem or trace profile of the render into --out"`
}

func (args) Description() string {
	return "Renders and saves a high resolution image of the Mandelbrot set."
}

func main() {
	var a args
	p := arg.MustParse(&a)
	switch a.Profile {
	case "", "cpu", "mem", "trace":
	default:
		p.Fail("--profile must be one of cpu, mem, trace")
	}

	if err := run(a); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(a args) error {
	req, err := a.Request()
	if err != nil {
		return err
	}

	switch a.Profile {
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(a.Out), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(a.Out), profile.NoShutdownHook).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(a.Out), profile.NoShutdownHook).Stop()
	}

	total := len(mandel.Chunks(req.Width, req.Height, req.ChunkWidth, req.ChunkHeight))
	var done atomic.Int64
	engine := mandel.NewEngine(
		mandel.WithWorkers(a.Workers),
		mandel.WithChunkHook(func(image.Rectangle) {
			// report every 10%
			if n := done.Add(1); n*10/int64(total) != (n-1)*10/int64(total) {
				log.Printf("finished: %d%%", n*100/int64(total))
			}
		}),
	)

	log.Printf("Generating %dx%d image at %v, width %g, %d iterations",
		req.Width, req.Height, req.Center, req.PlaneWidth, req.MaxIterations)
	start := time.Now()
	img, err := engine.Render(req)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	log.Printf("generation took: %v", time.Since(start))

	path, err := mandel.SavePNG(a.Out, req, img)
	if err != nil {
		return err
	}
	log.Printf("High res image saved to %q", path)

	if a.Thumb > 0 {
		thumbPath := strings.TrimSuffix(path, ".png") + "_thumb.png"
		thumb := resize.Resize(a.Thumb, 0, img, resize.Lanczos3)
		if err := mandel.WritePNG(thumbPath, thumb); err != nil {
			return err
		}
		log.Printf("Thumbnail saved to %q", thumbPath)
	}
	return nil
}
