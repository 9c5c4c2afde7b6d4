// Package remote serves mandel.Renderer over websockets and HTTP.
//
// A websocket connection carries any number of renders, one at a time.
// The client sends a text message holding a JSON viewRequest. The server
// answers with a JSON header; unless the header reports an error it is
// followed by one binary message holding the zstd-compressed RGB pixels,
// row-major, 3 bytes per pixel.
package remote

import (
	"errors"

	mandel "github.com/marben/chunked_mandel"
)

type viewRequest struct {
	Re            float64 `json:"re"`
	Im            float64 `json:"im"`
	PlaneWidth    float64 `json:"planeWidth"`
	Width         int     `json:"width"`
	Height        int     `json:"height"`
	ChunkWidth    int     `json:"chunkWidth"`
	ChunkHeight   int     `json:"chunkHeight"`
	MaxIterations int     `json:"maxIterations"`
}

func toWire(r mandel.ViewRequest) viewRequest {
	return viewRequest{
		Re:            real(r.Center),
		Im:            imag(r.Center),
		PlaneWidth:    r.PlaneWidth,
		Width:         r.Width,
		Height:        r.Height,
		ChunkWidth:    r.ChunkWidth,
		ChunkHeight:   r.ChunkHeight,
		MaxIterations: r.MaxIterations,
	}
}

func (v viewRequest) view() mandel.ViewRequest {
	return mandel.ViewRequest{
		Center:        complex(v.Re, v.Im),
		PlaneWidth:    v.PlaneWidth,
		Width:         v.Width,
		Height:        v.Height,
		ChunkWidth:    v.ChunkWidth,
		ChunkHeight:   v.ChunkHeight,
		MaxIterations: v.MaxIterations,
	}
}

// error codes of header.Code
const (
	codeInvalidRequest = "invalid_request"
	codeAllocation     = "allocation"
	codeInternal       = "internal"
)

type header struct {
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`
	Size   int `json:"size,omitempty"` // bytes of the binary message that follows

	Code  string `json:"code,omitempty"`
	Error string `json:"error,omitempty"`
}

func errorHeader(err error) header {
	code := codeInternal
	switch {
	case errors.Is(err, mandel.ErrInvalidRequest):
		code = codeInvalidRequest
	case errors.Is(err, mandel.ErrAllocation):
		code = codeAllocation
	}
	return header{Code: code, Error: err.Error()}
}

// RemoteError is a render failure reported by the server.
// It unwraps to the matching mandel error, if there is one.
type RemoteError struct {
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	return "remote render: " + e.Message
}

func (e *RemoteError) Unwrap() error {
	switch e.Code {
	case codeInvalidRequest:
		return mandel.ErrInvalidRequest
	case codeAllocation:
		return mandel.ErrAllocation
	}
	return nil
}
