package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ignite/caseflow/internal/config"
)

// Server wraps the HTTP server and its routed handlers.
type Server struct {
	addr    string
	handler http.Handler
	server  *http.Server
}

// NewServer creates the API server, listening on the host and port from
// the server configuration.
func NewServer(cfg config.ServerConfig, h *Handlers, health *HealthChecker) *Server {
	return &Server{
		addr:    fmt.Sprintf("%s:%d", cfg.GetHost(), cfg.Port),
		handler: SetupRoutes(h, health),
	}
}

// Addr returns the address the server will listen on.
func (s *Server) Addr() string {
	return s.addr
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	s.server = &http.Server{
		Addr:    s.addr,
		Handler: s.handler,
		// Write timeout leaves headroom for a worst-case pair of DNS
		// lookups inside the validation endpoint.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Handler exposes the routed handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}
