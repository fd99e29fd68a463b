package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/onereply/onereply/pkg/config"
	"github.com/onereply/onereply/pkg/store"
)

func statusCmd() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := connectRedis(ctx, cfg.RedisURL)
	if err != nil {
		fmt.Printf("Store: unreachable (%v)\n", err)
		os.Exit(1)
	}
	defer client.Close()

	archived, err := client.SCard(ctx, store.ArchivedSetKey).Result()
	if err != nil {
		fmt.Printf("Store: connected, but SCARD failed: %v\n", err)
		os.Exit(1)
	}

	queued, err := client.LLen(ctx, cfg.QueueKey).Result()
	if err != nil {
		queued = -1
	}

	fmt.Println("Store: connected")
	fmt.Printf("Archived numbers: %d\n", archived)
	if queued >= 0 {
		fmt.Printf("Queued jobs (%s): %d\n", cfg.QueueKey, queued)
	}
	fmt.Printf("Gateway: %s\n", cfg.Server)
	fmt.Printf("Workers: %d\n", cfg.Workers)
	var sources []string
	if cfg.HasDB() {
		sources = append(sources, fmt.Sprintf("sql (%s)", cfg.DBHost))
	}
	if cfg.DirectoryURL != "" {
		sources = append(sources, fmt.Sprintf("http (%s)", cfg.DirectoryURL))
	}
	if len(sources) == 0 {
		sources = append(sources, "none")
	}
	fmt.Printf("Directory: %s\n", strings.Join(sources, ", "))
}
