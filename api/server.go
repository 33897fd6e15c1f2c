package api

import (
	"context"
	"log/slog"
	"net/http"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// Server is the local REST server the editor UI talks to. It owns the
// upload store and serves the processing endpoints on localhost.
type Server struct {
	httpServer *http.Server
	mux        *http.ServeMux
	store      *Store
	logger     *slog.Logger

	addr        string
	maxUploadMB int64
}

// NewServer wires the routes over the given store. maxUploadMB bounds the
// multipart upload size.
func NewServer(addr string, store *Store, maxUploadMB int64, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		mux:         http.NewServeMux(),
		store:       store,
		logger:      logger,
		addr:        addr,
		maxUploadMB: maxUploadMB,
	}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.mux.HandleFunc("/health", s.handleHealth)
	s.mux.HandleFunc("/upload", s.handleUpload)
	s.mux.HandleFunc("/adjust", s.handleAdjust)
	s.mux.HandleFunc("/crop", s.handleCrop)
	s.mux.HandleFunc("/compress", s.handleCompress)
	s.mux.HandleFunc("/download/", s.handleDownload)
	s.mux.HandleFunc("/reset/", s.handleReset)
}

// Handler returns the HTTP handler for the server.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Start starts the server. This is blocking.
func (s *Server) Start() error {
	s.httpServer = &http.Server{
		Addr:    s.addr,
		Handler: s.mux,
	}
	s.logger.Info("api server listening", slog.String("addr", s.addr))
	return s.httpServer.ListenAndServe()
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
