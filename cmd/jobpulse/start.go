package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jobpulse/internal/model"
	"jobpulse/internal/pipeline"
	"jobpulse/internal/ratelimit"
	"jobpulse/internal/scheduler"
	"jobpulse/internal/store"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the ingestion daemon",
	Long:  "Start the scheduler daemon; runs a cycle immediately and then on every interval, blocks until SIGINT/SIGTERM.",
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("config loaded",
		"interval", cfg.CycleInterval.String(),
		"sources", len(cfg.Sources),
		"max_posts", cfg.MaxPostsPerCycle,
		"retention", cfg.DedupRetention.String(),
		"store", cfg.Store.Type,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var seenStore model.SeenStore
	switch cfg.Store.Type {
	case "redis":
		redisStore, err := store.NewRedisStore(ctx, cfg.Store.RedisURL, cfg.DedupRetention)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisStore.Close()
		seenStore = redisStore
	default:
		sqlStore, err := store.NewSQLiteStore(cfg.Store.Path)
		if err != nil {
			logger.Error("failed to open store", "error", err)
			os.Exit(1)
		}
		defer sqlStore.Close()
		seenStore = sqlStore
	}

	publisher, err := setupPublisher(cfg, logger)
	if err != nil {
		logger.Error("failed to set up publisher", "error", err)
		os.Exit(1)
	}

	adapters := buildAdapters(cfg, logger)
	if len(adapters) == 0 {
		logger.Error("no sources to poll")
		os.Exit(1)
	}

	coordinator := pipeline.New(pipeline.Params{
		Adapters:      adapters,
		Classifier:    setupClassifier(cfg),
		Store:         seenStore,
		Publisher:     publisher,
		Pacer:         ratelimit.NewPacer(cfg.Pacing.InterSourceDelay, cfg.Pacing.Jitter),
		MaxPosts:      cfg.MaxPostsPerCycle,
		Retention:     cfg.DedupRetention,
		FetchTimeout:  cfg.FetchTimeout,
		RequireRemote: cfg.RequireRemote,
		PublishLevels: cfg.PublishLevelSet(),
		Logger:        logger,
	})

	sched := scheduler.New(coordinator, cfg.CycleInterval, logger)
	if err := sched.Run(ctx); err != nil {
		logger.Error("scheduler error", "error", err)
		os.Exit(1)
	}

	logger.Info("goodbye")
	return nil
}
