package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alexflint/go-arg"
	mandel "github.com/marben/chunked_mandel"
)

type args struct {
	Port    int      `arg:"-p,--port" default:"8080" help:"port to serve websocket and PNG renders on"`
	Workers int      `arg:"-w,--workers" help:"chunks rendered in parallel per request [default: GOMAXPROCS]"`
	Origins []string `arg:"--origin,separate" help:"browser origin allowed to open websockets, may be repeated"`
	Verbose bool     `arg:"-v,--verbose" help:"log every rendered chunk"`
}

func (args) Description() string {
	return "Serves Mandelbrot renders over websocket (/ws) and HTTP (/render.png)."
}

// main is the entry point for the Mandelbrot server.
func main() {
	var a args
	arg.MustParse(&a)
	if err := run(a); err != nil {
		log.Fatalf("run: %+v", err)
	}
}

func run(a args) error {
	opts := []mandel.Option{mandel.WithWorkers(a.Workers)}
	if a.Verbose {
		opts = append(opts, mandel.WithChunkHook(func(chunk image.Rectangle) {
			log.Printf("rendered chunk: %s", chunk)
		}))
	}
	engine := mandel.NewEngine(opts...)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := webServer(engine, a.Port, a.Origins)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("httpServer: %w", err)
	case <-ctx.Done():
	}

	log.Printf("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
