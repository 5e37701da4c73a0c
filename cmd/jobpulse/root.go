package main

import (
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"jobpulse/internal/classify"
	"jobpulse/internal/config"
	"jobpulse/internal/model"
	"jobpulse/internal/publish"
	"jobpulse/internal/retry"
	"jobpulse/internal/source"
)

var (
	cfgPath string
	debug   bool
)

var rootCmd = &cobra.Command{
	Use:   "jobpulse",
	Short: "Job vacancy watcher for a Telegram channel",
	Long:  "JobPulse polls public job boards, classifies vacancies by seniority and posts new ones to a Telegram channel.",
	// Default to `start` so that `jobpulse` with no args runs the daemon.
	RunE: runStart,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgPath, "config", "c", "", "path to config file (default: JOBPULSE_CONFIG env var or ./config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
}

// loadConfig resolves the config path and parses it.
// Priority: explicit path arg > JOBPULSE_CONFIG env var > "./config.yaml"
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		if env := os.Getenv("JOBPULSE_CONFIG"); env != "" {
			path = env
		} else {
			path = "config.yaml"
		}
	}
	return config.Load(path)
}

func setupLogger(dbg bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if dbg {
		logLevel = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel}))
}

func setupClassifier(cfg *config.Config) *classify.Classifier {
	sig := classify.DefaultSignals()
	if len(cfg.Signals.Junior) > 0 {
		sig.Junior = cfg.Signals.Junior
	}
	if len(cfg.Signals.Middle) > 0 {
		sig.Middle = cfg.Signals.Middle
	}
	if len(cfg.Signals.Senior) > 0 {
		sig.Senior = cfg.Signals.Senior
	}
	if len(cfg.Signals.ITRoles) > 0 {
		sig.ITRoles = cfg.Signals.ITRoles
	}
	if len(cfg.Signals.Remote) > 0 {
		sig.Remote = cfg.Signals.Remote
	}
	return classify.New(sig)
}

func setupPublisher(cfg *config.Config, logger *slog.Logger) (model.Publisher, error) {
	if cfg.Telegram.Token == "" || cfg.Telegram.Channel == "" {
		logger.Warn("telegram token or channel not configured, logging posts instead")
		return publish.NewLogPublisher(logger), nil
	}
	return publish.NewTelegramPublisher(cfg.Telegram.Token, cfg.Telegram.Channel, cfg.Pacing.PostDelay, logger)
}

func createAdapter(src config.SourceConfig, httpClient *http.Client, logger *slog.Logger) (model.SourceAdapter, bool) {
	switch src.Name {
	case "remoteok":
		return source.NewRemoteOKAdapter(httpClient), true
	case "remotive":
		return source.NewRemotiveAdapter(httpClient), true
	case "jobicy":
		return source.NewJobicyAdapter(httpClient), true
	case "adzuna":
		if src.AppID == "" || src.AppKey == "" {
			logger.Warn("adzuna requires app_id and app_key, skipping")
			return nil, false
		}
		return source.NewAdzunaAdapter(src.AppID, src.AppKey, httpClient), true
	case "headhunter":
		return source.NewHeadHunterAdapter(httpClient), true
	case "superjob":
		if src.APIKey == "" {
			logger.Warn("superjob requires api_key, skipping")
			return nil, false
		}
		return source.NewSuperJobAdapter(src.APIKey, httpClient), true
	default:
		logger.Warn("unsupported source, skipping", "source", src.Name)
		return nil, false
	}
}

func buildAdapters(cfg *config.Config, logger *slog.Logger) []model.SourceAdapter {
	httpClient := &http.Client{Timeout: 30 * time.Second}

	var adapters []model.SourceAdapter
	for _, src := range cfg.Sources {
		if !src.Enabled {
			continue
		}

		adapter, ok := createAdapter(src, httpClient, logger)
		if !ok {
			continue
		}

		adapters = append(adapters, retry.Wrap(adapter, cfg.Retry.MaxRetries, cfg.Retry.BaseDelay, logger))
		logger.Info("registered source", "name", src.Name)
	}
	return adapters
}
