package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"skintel.app/core/common/id"
	"skintel.app/core/common/logger"
	"skintel.app/core/core/config"
	"skintel.app/core/core/db"
	"skintel.app/core/internal/engine"
	"skintel.app/core/internal/queue"
	"skintel.app/core/internal/service"
	"skintel.app/core/internal/store"
	"skintel.app/core/internal/worker"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load(config.ServiceTypeWorker)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}

	fmt.Printf("%s\n", banner)
	logger.Setup(cfg)

	slog.InfoContext(ctx, "skintel worker starting",
		"env", cfg.Env,
		"consumer_group", cfg.Stream.RedisGroup,
		"consumer_name", cfg.Stream.RedisConsumer)

	// Use a different snowflake node than the server
	if err := id.Init(cfg.IDNode + 1); err != nil {
		slog.ErrorContext(ctx, "failed to initialize id generator", "error", err)
		os.Exit(1)
	}

	database, err := db.New(ctx, cfg.DB)
	if err != nil {
		slog.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer database.Close()
	slog.InfoContext(ctx, "database connected")

	redisOpts, err := redis.ParseURL(cfg.Stream.RedisURL)
	if err != nil {
		slog.ErrorContext(ctx, "failed to parse redis url", "error", err)
		os.Exit(1)
	}

	redisClient := redis.NewClient(redisOpts)
	if err := redisClient.Ping(ctx).Err(); err != nil {
		slog.ErrorContext(ctx, "failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()
	slog.InfoContext(ctx, "redis connected", "stream", cfg.Stream.RedisStream)

	consumer, err := queue.NewRedisConsumer(redisClient, queue.ConsumerConfig{
		Stream:       cfg.Stream.RedisStream,
		Group:        cfg.Stream.RedisGroup,
		Consumer:     cfg.Stream.RedisConsumer,
		DLQStream:    cfg.Stream.RedisDLQStream,
		BatchSize:    1, // Process one task at a time
		Block:        5 * time.Second,
		MaxAttempts:  cfg.Stream.MaxAttempts,
		RequeueDelay: time.Second,
	})
	if err != nil {
		slog.ErrorContext(ctx, "failed to create consumer", "error", err)
		os.Exit(1)
	}

	taskProducer := queue.NewRedisProducer(redisClient, cfg.Stream.RedisStream, slog.Default())
	defer taskProducer.Close()

	stores := store.NewStores(database.Queries())
	services := service.NewServices(stores, service.NewTxRunner(database), taskProducer, engine.DefaultRegistry(), slog.Default())

	processor := worker.NewTaskProcessor(services.Routines(), services.Narratives())

	w := worker.New(consumer, processor, worker.Config{
		MaxAttempts: cfg.Stream.MaxAttempts,
	})

	reclaimer := worker.NewReclaimer(redisClient, worker.ReclaimerConfig{
		Stream:    cfg.Stream.RedisStream,
		Group:     cfg.Stream.RedisGroup,
		Consumer:  cfg.Stream.RedisConsumer + "-reclaimer",
		MinIdle:   5 * time.Minute,
		Interval:  1 * time.Minute,
		BatchSize: 10,
	}, w.ProcessMessage)

	errCh := make(chan error, 2)
	go func() {
		errCh <- w.Run(ctx)
	}()
	go func() {
		reclaimer.Run(ctx)
		errCh <- nil
	}()

	slog.InfoContext(ctx, "worker initialized and running")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.InfoContext(ctx, "shutting down worker...")

	shutdownCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	// Stop reclaimer first (quick)
	reclaimer.Stop()

	// Stop worker (may be processing)
	w.Stop()

	select {
	case <-shutdownCtx.Done():
		slog.WarnContext(ctx, "shutdown timeout exceeded")
	case err := <-errCh:
		if err != nil {
			slog.ErrorContext(ctx, "worker error during shutdown", "error", err)
		}
	}

	slog.InfoContext(ctx, "worker shutdown complete")
}

const banner = `
███████╗██╗  ██╗██╗███╗   ██╗████████╗███████╗██╗
██╔════╝██║ ██╔╝██║████╗  ██║╚══██╔══╝██╔════╝██║
███████╗█████╔╝ ██║██╔██╗ ██║   ██║   █████╗  ██║
╚════██║██╔═██╗ ██║██║╚██╗██║   ██║   ██╔══╝  ██║
███████║██║  ██╗██║██║ ╚████║   ██║   ███████╗███████╗
╚══════╝╚═╝  ╚═╝╚═╝╚═╝  ╚═══╝   ╚═╝   ╚══════╝╚══════╝

                                        worker
`
