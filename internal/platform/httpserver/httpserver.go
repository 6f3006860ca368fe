package httpserver

import (
	"net/http"
	"time"
)

// New builds the advance service's HTTP server. Write timeout stays generous:
// evidence ingest replies immediately, but the metrics endpoint can emit a
// large scrape body.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
