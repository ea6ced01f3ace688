package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cokeke26/fenats/internal/config"
	"github.com/cokeke26/fenats/internal/shared/middleware"
)

// Server owns the http.Server lifecycle. Routing lives in the gin engine.
type Server struct {
	cfg    *config.Config
	server *http.Server
}

func New(cfg *config.Config, handler http.Handler) *Server {
	writeTimeout := cfg.Server.WriteTimeout
	if writeTimeout > 0 && writeTimeout < middleware.ImportTimeout {
		// An import that outlives the write deadline loses its summary response.
		slog.Warn("SERVER_WRITE_TIMEOUT menor que el tiempo de importación, se amplía",
			"configured", writeTimeout,
			"import_timeout", middleware.ImportTimeout,
		)
		writeTimeout = middleware.ImportTimeout
	}

	return &Server{
		cfg: cfg,
		server: &http.Server{
			Addr:           fmt.Sprintf(":%d", cfg.App.Port),
			Handler:        handler,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   writeTimeout,
			IdleTimeout:    cfg.Server.IdleTimeout,
			MaxHeaderBytes: 1 << 20,
		},
	}
}

// Start blocks until the server stops. It returns http.ErrServerClosed after Shutdown.
func (s *Server) Start() error {
	slog.Info("servidor iniciando",
		"addr", s.server.Addr,
		"env", s.cfg.App.Env,
		"write_timeout", s.server.WriteTimeout,
		"max_upload", s.cfg.Import.MaxFileSize,
	)

	return s.server.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}
