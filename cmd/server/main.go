package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"pdao/config"
	"pdao/governance"
	"pdao/internal/messaging/producer"
	"pdao/server"
	"pdao/storage/store"
)

// Dashboard API configuration file path
const serverConfigPath = "./config/server.defaults.yml"

func main() {
	logger := log.New(os.Stdout, "[API] ", log.LstdFlags|log.Lshortfile)
	logger.Println("Starting PennyDAO Dashboard API...")

	godotenv.Load()

	// 1. Load server configuration
	var cfg *config.ServerConfig
	if _, err := os.Stat(serverConfigPath); err == nil {
		loaded, err := config.LoadServerConfig(serverConfigPath)
		if err != nil {
			logger.Fatalf("Failed to load server configuration: %v", err)
		}
		cfg = loaded
	} else {
		logger.Printf("Config file '%s' not found, using defaults", serverConfigPath)
		cfg = &config.ServerConfig{HttpListenAddr: "0.0.0.0:8080"}
		cfg.Bot.SetDefaults()
		cfg.HttpServer.SetDefaults()
	}

	// 2. Initialize dependencies
	mintStore := store.NewFileStore(cfg.Bot.LogFile, logger)

	gov := governance.NewService(logger)
	gov.SeedDemo()

	var notifier producer.Producer
	if len(cfg.Bot.Notifier.Brokers) > 0 {
		logger.Println("Initializing Kafka mint event producer...")
		kafkaProducer, err := producer.NewKafkaProducer(cfg.Bot.Notifier, logger)
		if err != nil {
			logger.Fatalf("Failed to initialize mint event producer: %v", err)
		}
		notifier = kafkaProducer
	} else {
		notifier = producer.NewMockProducer(logger)
	}
	defer notifier.Close()

	// 3. Build the HTTP server
	srv := server.New(cfg, logger, mintStore, gov, notifier)

	httpServer := &http.Server{
		Addr:           cfg.HttpListenAddr,
		Handler:        srv.Router(),
		ReadTimeout:    cfg.HttpServer.ReadTimeout,
		WriteTimeout:   cfg.HttpServer.WriteTimeout,
		IdleTimeout:    cfg.HttpServer.IdleTimeout,
		MaxHeaderBytes: cfg.HttpServer.MaxHeaderBytes,
	}

	go func() {
		logger.Printf("HTTP server listening on %s", cfg.HttpListenAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server startup failed: %v", err)
		}
		logger.Println("HTTP server stopped listening.")
	}()

	// 4. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Printf("Received shutdown signal: %s, starting graceful shutdown...", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Printf("HTTP server shutdown failed: %v", err)
	} else {
		logger.Println("HTTP server shutdown.")
	}

	logger.Println("Dashboard API shutdown.")
}
