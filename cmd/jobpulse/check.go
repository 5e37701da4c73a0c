package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"jobpulse/internal/pipeline"
	"jobpulse/internal/publish"
	"jobpulse/internal/ratelimit"
	"jobpulse/internal/store"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Run one cycle, print matches, exit",
	Long:  "One-shot cycle: fetches all enabled sources, prints the vacancies that would be posted, exits. Does not write to the store or post to the channel.",
	RunE:  runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := setupLogger(debug)

	cfg, err := loadConfig(cfgPath)
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger.Info("check mode: nothing will be posted or marked as seen")

	adapters := buildAdapters(cfg, logger)
	if len(adapters) == 0 {
		logger.Error("no sources to poll")
		os.Exit(1)
	}

	coordinator := pipeline.New(pipeline.Params{
		Adapters:      adapters,
		Classifier:    setupClassifier(cfg),
		Store:         store.NewNopStore(),
		Publisher:     publish.NewLogPublisher(logger),
		Pacer:         ratelimit.NewPacer(cfg.Pacing.InterSourceDelay, cfg.Pacing.Jitter),
		MaxPosts:      cfg.MaxPostsPerCycle,
		Retention:     cfg.DedupRetention,
		FetchTimeout:  cfg.FetchTimeout,
		RequireRemote: cfg.RequireRemote,
		PublishLevels: cfg.PublishLevelSet(),
		Logger:        logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := coordinator.RunCycle(ctx)
	if err != nil {
		logger.Error("cycle failed", "error", err)
		os.Exit(1)
	}

	logger.Info("check complete",
		"fetched", report.Fetched,
		"relevant", report.Relevant,
		"novel", report.Novel,
		"would_post", report.Published,
		"errors", len(report.Errors),
	)
	return nil
}
