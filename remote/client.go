package remote

import (
	"context"
	"fmt"
	"sync"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/chunked_mandel"
)

// Client renders on a remote server. Renders on one Client are serialized.
type Client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

var _ mandel.Renderer = (*Client)(nil)

// Dial connects to the websocket endpoint at url, e.g. "ws://localhost:8080/ws".
func Dial(ctx context.Context, url string) (*Client, error) {
	conn, _, err := websocket.Dial(ctx, url, nil)
	if err != nil {
		return nil, fmt.Errorf("websocket.Dial %q: %w", url, err)
	}
	return &Client{conn: conn}, nil
}

// Render implements mandel.Renderer.
func (c *Client) Render(r mandel.ViewRequest) (*mandel.PixelBuffer, error) {
	return c.RenderContext(context.Background(), r)
}

// RenderContext renders r on the server. Invalid requests are rejected
// without contacting the server. Once ctx is done mid-render, or the server
// answers with an image of other dimensions, the connection is closed and c
// can't be used anymore.
func (c *Client) RenderContext(ctx context.Context, r mandel.ViewRequest) (*mandel.PixelBuffer, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if err := wsjson.Write(ctx, c.conn, toWire(r)); err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}

	var hdr header
	if err := wsjson.Read(ctx, c.conn, &hdr); err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	if hdr.Error != "" || hdr.Code != "" {
		return nil, &RemoteError{Code: hdr.Code, Message: hdr.Error}
	}
	if hdr.Size <= 0 {
		return nil, fmt.Errorf("bad payload size %d", hdr.Size)
	}
	if hdr.Width != r.Width || hdr.Height != r.Height {
		// the pixels that follow would desync the connection
		c.conn.CloseNow()
		return nil, fmt.Errorf("server answered %dx%d for a %dx%d request", hdr.Width, hdr.Height, r.Width, r.Height)
	}

	c.conn.SetReadLimit(int64(max(hdr.Size, 32768)))
	typ, payload, err := c.conn.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read pixels: %w", err)
	}
	if typ != websocket.MessageBinary || len(payload) != hdr.Size {
		return nil, fmt.Errorf("got %s message of %d bytes, want %d binary bytes", typ, len(payload), hdr.Size)
	}

	return decompressPixels(payload, hdr.Width, hdr.Height)
}

// Close closes the connection.
func (c *Client) Close() error {
	return c.conn.Close(websocket.StatusNormalClosure, "")
}
