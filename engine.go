package mandel

import (
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Engine renders views of the Mandelbrot set on the local CPUs.
// An Engine holds no state between renders and can be shared freely.
type Engine struct {
	workers       int
	onChunkRender func(chunk image.Rectangle)
}

type Option func(*Engine)

// WithWorkers bounds the number of chunks evaluated at once.
// Values below 1 mean runtime.GOMAXPROCS(0).
func WithWorkers(n int) Option {
	return func(e *Engine) {
		e.workers = n
	}
}

// WithChunkHook registers f to be called after each chunk is evaluated.
// f is called from multiple goroutines.
func WithChunkHook(f func(chunk image.Rectangle)) Option {
	return func(e *Engine) {
		e.onChunkRender = f
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{}
	for _, o := range opts {
		o(e)
	}
	if e.workers < 1 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e
}

var _ Renderer = (*Engine)(nil)

type coloredChunk struct {
	chunk image.Rectangle
	img   *PixelBuffer
}

// Render computes the image described by r.
// The image is split into chunks that are evaluated and colored in parallel,
// then merged into one buffer.
func (e *Engine) Render(r ViewRequest) (*PixelBuffer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	img := NewPixelBuffer(image.Rect(0, 0, r.Width, r.Height))
	chunks := Chunks(r.Width, r.Height, r.ChunkWidth, r.ChunkHeight)
	maxIter := uint16(r.MaxIterations)

	// finished chunks are handed over to the assembler below,
	// so at most ~2*workers chunk grids are alive at once
	finished := make(chan coloredChunk, e.workers)
	go func() {
		var g errgroup.Group
		g.SetLimit(e.workers)
		for _, chunk := range chunks {
			g.Go(func() error {
				grid := EvaluateChunk(r, chunk)
				if e.onChunkRender != nil {
					e.onChunkRender(chunk)
				}
				finished <- coloredChunk{chunk: chunk, img: Colorize(grid, maxIter)}
				return nil
			})
		}
		g.Wait() // tasks never fail
		close(finished)
	}()

	if err := assemble(img, len(chunks), finished); err != nil {
		return nil, err
	}
	return img, nil
}

// assemble merges n colored chunks into img. It drains finished even after a
// failure so no worker is left blocked.
func assemble(img *PixelBuffer, n int, finished <-chan coloredChunk) error {
	var err error
	merged, pixels := 0, 0
	for c := range finished {
		if err != nil {
			continue
		}
		if c.img.Rect != c.chunk {
			err = fmt.Errorf("%w: grid %v computed for chunk %v", ErrAssemblyMismatch, c.img.Rect, c.chunk)
			continue
		}
		if err = img.Merge(c.img); err != nil {
			continue
		}
		merged++
		pixels += c.chunk.Dx() * c.chunk.Dy()
	}
	if err != nil {
		return err
	}

	if merged != n || pixels != img.Rect.Dx()*img.Rect.Dy() {
		return fmt.Errorf("%w: %d of %d chunks covering %d of %d pixels",
			ErrAssemblyMismatch, merged, n, pixels, img.Rect.Dx()*img.Rect.Dy())
	}
	return nil
}
