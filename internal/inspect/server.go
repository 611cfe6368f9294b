package inspect

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/muurk/micromodal/internal/logging"
	"github.com/muurk/micromodal/internal/version"
)

const shutdownTimeout = 5 * time.Second

// Server serves a hub over HTTP.
type Server struct {
	addr string
	hub  *Hub
	srv  *http.Server
	ln   net.Listener
}

// NewServer creates a server for hub on addr.
func NewServer(addr string, hub *Hub) *Server {
	s := &Server{addr: addr, hub: hub}
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the routes: /events (websocket) and /healthz.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/events", s.hub.ServeWS)
	mux.HandleFunc("/healthz", s.handleHealth)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	body := struct {
		Status  string `json:"status"`
		Version string `json:"version"`
		Stats
	}{Status: "ok", Version: version.Version, Stats: s.hub.Stats()}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(body)
}

// Listen binds the listen address. Serve calls it when needed; calling it
// first lets callers learn the port of ":0" before serving.
func (s *Server) Listen() error {
	if s.ln != nil {
		return nil
	}
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.addr, err)
	}
	s.ln = ln
	return nil
}

// Addr returns the bound address, or nil before Listen.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Port returns the bound TCP port, or 0 before Listen.
func (s *Server) Port() int {
	if tcp, ok := s.Addr().(*net.TCPAddr); ok {
		return tcp.Port
	}
	return 0
}

// Serve serves until ctx ends, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	if err := s.Listen(); err != nil {
		return err
	}
	logging.Info("Inspector listening", zap.String("addr", s.ln.Addr().String()))

	errChan := make(chan error, 1)
	go func() {
		errChan <- s.srv.Serve(s.ln)
	}()

	select {
	case err := <-errChan:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("inspector server failed: %w", err)
	case <-ctx.Done():
	}

	logging.Info("Shutting down inspector")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	// Hijacked websocket connections are not tracked by Shutdown.
	s.hub.Close()
	if err := s.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("inspector shutdown failed: %w", err)
	}
	return nil
}
