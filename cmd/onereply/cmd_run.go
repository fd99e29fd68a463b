package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/onereply/onereply/pkg/bus"
	"github.com/onereply/onereply/pkg/config"
	"github.com/onereply/onereply/pkg/directory"
	"github.com/onereply/onereply/pkg/logger"
	"github.com/onereply/onereply/pkg/notifier"
	"github.com/onereply/onereply/pkg/queue"
	"github.com/onereply/onereply/pkg/reconciler"
	"github.com/onereply/onereply/pkg/responder"
	"github.com/onereply/onereply/pkg/store"
)

func runCmd() {
	for _, arg := range os.Args[2:] {
		if arg == "--debug" || arg == "-d" {
			logger.SetLevel(logger.DEBUG)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	client, err := connectRedis(ctx, cfg.RedisURL)
	if err != nil {
		fmt.Printf("Error connecting to Redis: %v\n", err)
		os.Exit(1)
	}
	defer client.Close()

	var sources []directory.Source
	if cfg.HasDB() {
		sqlSource, err := directory.OpenSQLSource(cfg.DSN())
		if err != nil {
			fmt.Printf("Error opening directory database: %v\n", err)
			os.Exit(1)
		}
		defer sqlSource.Close()
		sources = append(sources, sqlSource)
	}
	if cfg.DirectoryURL != "" {
		sources = append(sources, directory.NewHTTPSource(cfg.DirectoryURL))
	}

	jobBus := bus.NewJobBus()
	defer jobBus.Close()

	resp := responder.New(
		jobBus,
		store.NewRedisStore(client),
		directory.NewLookup(sources...),
		notifier.NewGatewayClient(cfg.Server, cfg.APIKey),
		cfg.SecondMessageLink,
		cfg.Workers,
	)

	sweep, err := reconciler.New(client, cfg.ReconcileCron)
	if err != nil {
		fmt.Printf("Error setting up reconciler: %v\n", err)
		os.Exit(1)
	}

	consumer := queue.NewConsumer(client, cfg.QueueKey, jobBus)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		consumer.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		resp.Run(ctx)
	}()
	go func() {
		defer wg.Done()
		sweep.Run(ctx)
	}()

	logger.InfoCF("main", "onereply started", map[string]interface{}{
		"workers": cfg.Workers,
		"queue":   cfg.QueueKey,
	})

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	logger.InfoC("main", "Shutting down...")
	cancel()
	wg.Wait()
}

func connectRedis(ctx context.Context, redisURL string) (*redis.Client, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("ping failed: %w", err)
	}
	return client, nil
}
