// Package main - Entry point for the sales-economics API server
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"go.uber.org/zap"

	"sales-economics/api"
	"sales-economics/core/catalog"
	"sales-economics/internal/config"
	"sales-economics/internal/logging"
)

const version = "0.1.0"

func main() {
	cfgPath := flag.String("config", "", "config file path")
	addr := flag.String("addr", "", "listen address (overrides config)")
	flag.Parse()

	cfg := config.Get()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		config.Set(loaded)
		cfg = loaded
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
		os.Exit(1)
	}

	cat := catalog.Default()
	if cfg.Catalog.Path != "" {
		loaded, err := catalog.Load(cfg.Catalog.Path)
		if err != nil {
			logging.Error("Failed to load pricing catalog", zap.Error(err))
			os.Exit(1)
		}
		cat = loaded
	}

	listenAddr := cfg.Server.Address
	if *addr != "" {
		listenAddr = *addr
	}

	server := &http.Server{
		Addr:         listenAddr,
		Handler:      api.NewServer(version, cat),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeoutSeconds) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeoutSeconds) * time.Second,
	}

	logging.Info("Starting sales-economics server",
		zap.String("addr", listenAddr),
		zap.String("version", version))

	if err := server.ListenAndServe(); err != nil {
		logging.Error("Server exited", zap.Error(err))
		os.Exit(1)
	}
}
