package mandel

import (
	"errors"
)

// Renderer turns a view of the complex plane into pixels.
// It is implemented by the local Engine and by remote clients.
type Renderer interface {
	Render(r ViewRequest) (*PixelBuffer, error)
}

var (
	// ErrInvalidRequest is returned for requests violating ViewRequest invariants.
	// Nothing is computed for such requests.
	ErrInvalidRequest = errors.New("invalid view request")

	// ErrAllocation is returned when the buffers of a request can't be allocated.
	ErrAllocation = errors.New("render too large to allocate")

	// ErrAssemblyMismatch signals a chunk grid that doesn't fit its chunk.
	// It is a bug in the engine, never a property of the request.
	ErrAssemblyMismatch = errors.New("chunk assembly mismatch")
)
