package main

import (
	"log/slog"
	"os"

	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/logging"
	"github.com/nfrund/folio/internal/server"
)

func main() {
	cfg := config.New()
	logger := logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())

	s, err := server.NewFromConfig(cfg, logger)
	if err != nil {
		slog.Error("Failed to initialize server", "error", err)
		os.Exit(1)
	}

	if err := s.Run(); err != nil {
		slog.Error("Server stopped with error", "error", err)
		os.Exit(1)
	}
}
