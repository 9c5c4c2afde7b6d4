// cliclient is a CLI client for the Mandelbrot render server.
// It connects to the server, requests a rendered view, and saves it as a PNG file.

package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/alexflint/go-arg"
	mandel "github.com/marben/chunked_mandel"
	"github.com/marben/chunked_mandel/internal/viewargs"
	"github.com/marben/chunked_mandel/remote"
)

type args struct {
	viewargs.View
	Server  string        `arg:"-s,--server" default:"ws://localhost:8080/ws" help:"websocket endpoint of the render server"`
	Out     string        `arg:"-o,--out" default:"." help:"directory to save the image into"`
	Timeout time.Duration `arg:"--timeout" default:"10m" help:"give up on the render after this long"`
}

// main is the entry point for the CLI client.
// It runs the client logic and logs any fatal errors.
func main() {
	var a args
	arg.MustParse(&a)
	log.Printf("Starting CLI client...")
	if err := run(a); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run connects to the Mandelbrot server, requests the rendered image, and saves it as a PNG file.
// Returns an error if any step fails.
func run(a args) error {
	req, err := a.Request()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.Timeout)
	defer cancel()

	// Step 1: Connect to Mandelbrot server
	log.Printf("Connecting to Mandelbrot server on %s...", a.Server)
	client, err := remote.Dial(ctx, a.Server)
	if err != nil {
		return fmt.Errorf("failed to connect to server: %w", err)
	}
	defer client.Close()

	// Step 2: Request the rendered image from the server
	log.Printf("Requesting %dx%d image at %v, width %g, %d iterations...",
		req.Width, req.Height, req.Center, req.PlaneWidth, req.MaxIterations)
	start := time.Now()
	img, err := client.RenderContext(ctx, req)
	if err != nil {
		return fmt.Errorf("client.Render: %w", err)
	}
	log.Printf("Received image after %s", time.Since(start))

	// Step 3: Save the rendered image to a PNG file
	path, err := mandel.SavePNG(a.Out, req, img)
	if err != nil {
		return err
	}

	log.Printf("Rendered image saved to %q", path)
	return nil
}
