package remote

import (
	"context"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	mandel "github.com/marben/chunked_mandel"
)

type server struct {
	renderer       mandel.Renderer
	originPatterns []string
}

type HandlerOption func(*server)

// WithOriginPatterns lists the browser origins allowed to open websockets,
// in the format of websocket.AcceptOptions.OriginPatterns.
func WithOriginPatterns(patterns ...string) HandlerOption {
	return func(s *server) {
		s.originPatterns = patterns
	}
}

// NewHandler serves renders of r:
//
//	/ws          websocket endpoint speaking the protocol of this package
//	/render.png  one-shot PNG render configured by query parameters
func NewHandler(r mandel.Renderer, opts ...HandlerOption) http.Handler {
	s := &server{renderer: r}
	for _, o := range opts {
		o(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWebsocket)
	mux.HandleFunc("GET /render.png", s.servePNG)
	return mux
}

// serveWebsocket answers render requests until the client goes away.
func (s *server) serveWebsocket(w http.ResponseWriter, r *http.Request) {
	c, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: s.originPatterns,
	})
	if err != nil {
		log.Println(err)
		return
	}
	defer c.CloseNow()

	log.Printf("got connection from: %s", r.RemoteAddr)
	ctx := r.Context()
	for {
		var req viewRequest
		if err := wsjson.Read(ctx, c, &req); err != nil {
			switch websocket.CloseStatus(err) {
			case websocket.StatusNormalClosure, websocket.StatusGoingAway:
				log.Printf("%s disconnected", r.RemoteAddr)
			default:
				log.Printf("read request from %s: %v", r.RemoteAddr, err)
			}
			return
		}

		if err := s.respond(ctx, c, req.view()); err != nil {
			log.Printf("respond to %s: %v", r.RemoteAddr, err)
			return
		}
	}
}

func (s *server) respond(ctx context.Context, c *websocket.Conn, v mandel.ViewRequest) error {
	start := time.Now()
	img, err := s.renderer.Render(v)
	if err != nil {
		log.Printf("render %+v failed: %v", v, err)
		return wsjson.Write(ctx, c, errorHeader(err))
	}

	payload, err := compressPixels(img)
	if err != nil {
		return err
	}
	hdr := header{Width: img.Rect.Dx(), Height: img.Rect.Dy(), Size: len(payload)}
	if err := wsjson.Write(ctx, c, hdr); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	if err := c.Write(ctx, websocket.MessageBinary, payload); err != nil {
		return fmt.Errorf("write pixels: %w", err)
	}

	log.Printf("rendered %dx%d (%d iterations) in %s, sent %d bytes",
		v.Width, v.Height, v.MaxIterations, time.Since(start), len(payload))
	return nil
}

func (s *server) servePNG(w http.ResponseWriter, r *http.Request) {
	v, err := viewFromQuery(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	img, err := s.renderer.Render(v)
	switch {
	case errors.Is(err, mandel.ErrInvalidRequest):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case errors.Is(err, mandel.ErrAllocation):
		http.Error(w, err.Error(), http.StatusRequestEntityTooLarge)
		return
	case err != nil:
		log.Printf("render %+v failed: %v", v, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	if err := png.Encode(w, img); err != nil {
		log.Printf("encode png for %s: %v", r.RemoteAddr, err)
	}
}

// viewFromQuery builds a request from the preview preset, overridden by the
// parameters region, re, im, width, w, h, iter and chunk.
func viewFromQuery(q url.Values) (mandel.ViewRequest, error) {
	v := mandel.Preview(mandel.HomeCenter, mandel.HomePlaneWidth)

	if name := q.Get("region"); name != "" {
		region, ok := mandel.LandmarkByName(name)
		if !ok {
			return v, fmt.Errorf("unknown region %q", name)
		}
		v.Center, v.PlaneWidth = region.Center(), region.PlaneWidth()
	}

	re, im := real(v.Center), imag(v.Center)
	var err error
	parseFloat := func(key string, dst *float64) {
		if s := q.Get(key); s != "" && err == nil {
			if *dst, err = strconv.ParseFloat(s, 64); err != nil {
				err = fmt.Errorf("parameter %q: %w", key, err)
			}
		}
	}
	parseInt := func(key string, dst ...*int) {
		if s := q.Get(key); s != "" && err == nil {
			n, perr := strconv.Atoi(s)
			if perr != nil {
				err = fmt.Errorf("parameter %q: %w", key, perr)
				return
			}
			for _, d := range dst {
				*d = n
			}
		}
	}

	parseFloat("re", &re)
	parseFloat("im", &im)
	parseFloat("width", &v.PlaneWidth)
	parseInt("w", &v.Width)
	parseInt("h", &v.Height)
	parseInt("iter", &v.MaxIterations)
	parseInt("chunk", &v.ChunkWidth, &v.ChunkHeight)
	if err != nil {
		return v, err
	}

	v.Center = complex(re, im)
	return v, nil
}
