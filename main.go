// Command cube-scan serves the cube face analysis API.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cube-scan/internal/config"
	"cube-scan/internal/server"
	"cube-scan/pkg/logger"
)

func main() {
	cfg := config.Load()
	if err := logger.Init(cfg.Log); err != nil {
		panic("logger init: " + err.Error())
	}

	srv := server.New(cfg)

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig
		slog.Info("shutting down")
		if err := srv.Shutdown(); err != nil {
			slog.Error("shutdown failed", "err", err)
		}
	}()

	slog.Info("server starting",
		"port", cfg.Port,
		"service_type", cfg.ServiceType,
		"confidence_threshold", cfg.ConfidenceThreshold,
	)
	if err := srv.Listen(); err != nil {
		slog.Error("server stopped", "err", err)
		os.Exit(1)
	}
}
