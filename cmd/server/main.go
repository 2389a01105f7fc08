package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"resume-composer/internal/api/routes"
	"resume-composer/internal/config"
	"resume-composer/internal/generator"
	"resume-composer/internal/grpc/server"
	"resume-composer/internal/llm"
	"resume-composer/internal/logging"
	"resume-composer/internal/mux"
)

func main() {
	configPath := flag.String("config", "configs/config.yaml", "path to the YAML configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logging
	if err := logging.InitializeLogging(cfg); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.CloseLogging()

	logger := logging.GetGlobalLogger()
	logger.Info("Starting Resume Composer", map[string]interface{}{
		"llm_provider":     cfg.LLM.Provider,
		"fallback_enabled": cfg.Generation.FallbackEnabled,
	})

	// Initialize LLM manager
	llmManager := llm.NewManager(cfg)
	if err := llmManager.Start(); err != nil {
		logger.Fatal("Failed to start LLM manager", map[string]interface{}{"error": err.Error()})
	}

	gen := generator.New(llmManager, generator.WithFallback(cfg.Generation.FallbackEnabled))

	// HTTP routes
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	routes.SetupRoutes(e, cfg, gen, llmManager)

	// HTTP and gRPC share one port
	m := mux.NewMultiplexer(cfg, server.NewServer(cfg, gen, llmManager), e)
	if err := m.Start(cfg.Address()); err != nil {
		logger.Fatal("Server failed to start", map[string]interface{}{"error": err.Error()})
	}
	logger.Info("Server started", map[string]interface{}{"address": cfg.Address()})

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down server...")

	if err := m.Stop(); err != nil {
		logger.Error("Error stopping server", map[string]interface{}{"error": err.Error()})
	}

	logger.Info("Stopping LLM manager...")
	if err := llmManager.Stop(); err != nil {
		logger.Error("Error stopping LLM manager", map[string]interface{}{"error": err.Error()})
	}

	logger.Info("Server shutdown complete")
}
