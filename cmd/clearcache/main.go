package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/nguyentantai21042004/ytb-summarizer/internal/cache"
	"github.com/nguyentantai21042004/ytb-summarizer/internal/config"
)

// clearcache flushes every cached transcript and summary from Redis.
func main() {
	configPath := flag.String("config", "config.yaml", "path to configuration file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	c, err := cache.New(cfg.Redis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to Redis: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	if err := c.Flush(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to flush cache: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Cache cleared.")
}
