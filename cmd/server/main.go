package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/cache"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/downloader"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/llm"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/logger"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/pipeline"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/server"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/summarizer"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/transcriber"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/watcher"
	"github.com/nguyentantai21042004/ytb-summarizer/pkg/executor"
)

const shutdownTimeout = 10 * time.Second

func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(cfg.Logging.Level)
	log.Info(ctx, "========================================")
	log.Info(ctx, "YouTube Video Summarizer")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s", runtime.GOOS, runtime.GOARCH)
	log.Info(ctx, "CPU Cores: %d", runtime.NumCPU())
	log.Info(ctx, "LLM Provider: %s (model: %s)", cfg.LLM.Provider, cfg.LLM.Model)
	log.Info(ctx, "Transcriber Backend: %s", cfg.Transcriber.Backend)
	log.Info(ctx, "Configuration loaded successfully")

	// Verify required directories exist
	if err := ensureDirectories(cfg); err != nil {
		log.Error(ctx, "Failed to create directories: %v", err)
		os.Exit(1)
	}

	// Initialize dependencies
	exec := executor.New()

	c, err := cache.New(cfg.Redis)
	if err != nil {
		log.Error(ctx, "Failed to connect to Redis: %v", err)
		os.Exit(1)
	}
	defer c.Close()

	client, err := llm.New(cfg.LLM, log)
	if err != nil {
		log.Error(ctx, "Failed to create LLM client: %v", err)
		os.Exit(1)
	}

	trans, err := transcriber.New(cfg.Transcriber, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to create transcriber: %v", err)
		os.Exit(1)
	}

	dl, err := downloader.New(cfg.Downloader, trans, exec, log)
	if err != nil {
		log.Error(ctx, "Failed to create downloader: %v", err)
		os.Exit(1)
	}

	sum := summarizer.New(cfg.Summarizer, client, log)
	pipe := pipeline.New(c, dl, sum, log)
	srv := server.New(cfg.Server, pipe, exec, log)

	// Watch the config file so the log level can be changed at runtime
	w, err := watcher.New(*configPath, func(ctx context.Context, path string) error {
		reloaded, err := config.Load(path)
		if err != nil {
			return err
		}
		log.SetLevel(reloaded.Logging.Level)
		log.Info(ctx, "Log level set to %s", reloaded.Logging.Level)
		return nil
	}, log)
	if err != nil {
		log.Error(ctx, "Failed to create config watcher: %v", err)
		os.Exit(1)
	}
	defer w.Stop()

	// Create context with cancellation
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Setup graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		if err := w.Start(ctx); err != nil && err != context.Canceled {
			log.Error(ctx, "Config watcher error: %v", err)
		}
	}()
	go func() {
		if err := srv.Start(ctx); err != nil {
			errChan <- err
		}
	}()

	log.Info(ctx, "========================================")
	log.Info(ctx, "Summarizer is ready!")
	log.Info(ctx, "Listening: %s", cfg.Server.Addr)
	log.Info(ctx, "Max Concurrent Chunks: %d", cfg.Summarizer.MaxConcurrent)
	log.Info(ctx, "Press Ctrl+C to stop")
	log.Info(ctx, "========================================")

	// Wait for shutdown signal or error
	select {
	case <-sigChan:
		log.Info(ctx, "Shutdown signal received")
	case err := <-errChan:
		log.Error(ctx, "Server error: %v", err)
	}

	// Graceful shutdown
	log.Info(ctx, "Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()
	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error(ctx, "Server shutdown: %v", err)
	}

	log.Info(ctx, "Summarizer stopped")
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{
		cfg.Downloader.TranscriptDir,
		cfg.Downloader.AudioDir,
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
