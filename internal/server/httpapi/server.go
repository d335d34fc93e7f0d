package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"fitprogress/internal/logging"
)

// Server runs the REST API over net/http with graceful shutdown tied to the
// context passed to Run.
type Server struct {
	address string
	logger  logging.Logger
	router  *gin.Engine
}

// NewServer constructs a Server listening on address.
func NewServer(address string, logger logging.Logger, router *gin.Engine) *Server {
	return &Server{address: address, logger: logger, router: router}
}

// Run serves until ctx is cancelled, then shuts down draining in-flight
// requests for up to ten seconds.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.router,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err.Error())
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
