package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	mandel "github.com/marben/chunked_mandel"
	"github.com/marben/chunked_mandel/remote"
)

// webServer creates server rendering on r.
// Websocket clients connect to /ws, one-shot PNG renders are served on /render.png
func webServer(r mandel.Renderer, port int, origins []string) *http.Server {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           remote.NewHandler(r, remote.WithOriginPatterns(origins...)),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.Printf("listening on http://localhost:%d", port)
	log.Printf("websocket endpoint ws://localhost:%d/ws", port)
	return srv
}
