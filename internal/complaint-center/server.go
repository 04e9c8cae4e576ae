// Package complaintcenter provides the complaint center service.
package complaintcenter

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/kart-io/logger"

	"github.com/kart-io/complaint-center/pkg/middleware"
)

// Server wraps the HTTP server and its lifecycle.
type Server struct {
	engine  *gin.Engine
	srv     *http.Server
	opts    *ServerOptions
	cleanup func()
}

// NewServer builds the gin engine with the standard middleware chain.
func NewServer(opts *ServerOptions) *Server {
	gin.SetMode(opts.Mode)

	engine := gin.New()
	engine.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	return &Server{
		engine: engine,
		opts:   opts,
	}
}

// Engine returns the underlying gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// OnShutdown registers a cleanup function invoked after the listener stops.
func (s *Server) OnShutdown(fn func()) {
	s.cleanup = fn
}

// Run starts the HTTP server and blocks until SIGINT or SIGTERM, then shuts
// down gracefully within the configured timeout.
func (s *Server) Run() error {
	s.srv = &http.Server{
		Addr:    s.opts.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Infow("HTTP server listening", "addr", s.opts.Addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		logger.Infow("Shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.opts.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return err
	}
	if s.cleanup != nil {
		s.cleanup()
	}

	logger.Info("Server stopped")
	return nil
}
