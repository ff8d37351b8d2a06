package server

import (
	"context"
	"net/http"

	"github.com/pharmahub/backend/internal/config"
)

// Server serves the registration API. Slow clients are bounded by the header
// read timeout before any handler runs.
type Server struct {
	httpServer *http.Server
}

func NewServer(cfg *config.Config, handler http.Handler) *Server {
	hs := cfg.HttpServer
	return &Server{
		httpServer: &http.Server{
			Addr:              ":" + hs.Port,
			Handler:           handler,
			ReadHeaderTimeout: hs.ReadHeaderTimeout,
			ReadTimeout:       hs.Timeout,
			WriteTimeout:      hs.Timeout,
			IdleTimeout:       hs.IdleTimeout,
			MaxHeaderBytes:    hs.MaxHeaderBytes,
		},
	}
}

// Addr is the listen address, ":<port>".
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Run blocks until the server stops. After Stop it returns http.ErrServerClosed.
func (s *Server) Run() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
