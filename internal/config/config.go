package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"jobpulse/internal/model"
)

// Config is the root configuration for the JobPulse pipeline.
type Config struct {
	CycleInterval    time.Duration
	MaxPostsPerCycle int
	DedupRetention   time.Duration
	FetchTimeout     time.Duration
	RequireRemote    bool
	PublishLevels    []model.Level
	Pacing           PacingConfig
	Store            StoreConfig
	Telegram         TelegramConfig
	Retry            RetryConfig
	Signals          SignalsConfig
	Sources          []SourceConfig
}

// PacingConfig controls the gaps between outgoing requests.
type PacingConfig struct {
	InterSourceDelay time.Duration // minimum gap between source API calls
	Jitter           time.Duration // random extra gap added on top
	PostDelay        time.Duration // minimum gap between channel posts
}

// StoreConfig selects and configures the dedup store backend.
type StoreConfig struct {
	Type     string `yaml:"type"`      // "sqlite" or "redis"
	Path     string `yaml:"path"`      // sqlite database file
	RedisURL string `yaml:"redis_url"` // redis://host:port/db, required if type is "redis"
}

// TelegramConfig holds channel publishing credentials.
type TelegramConfig struct {
	Token   string `yaml:"token"`   // bot token, expanded from env by Load
	Channel string `yaml:"channel"` // @username or numeric chat id
}

// RetryConfig controls per-source fetch retries.
type RetryConfig struct {
	MaxRetries int
	BaseDelay  time.Duration
}

// SignalsConfig overrides the built-in classifier keyword sets.
// Empty lists keep the defaults.
type SignalsConfig struct {
	Junior  []string `yaml:"junior"`
	Middle  []string `yaml:"middle"`
	Senior  []string `yaml:"senior"`
	ITRoles []string `yaml:"it_roles"`
	Remote  []string `yaml:"remote"`
}

// SourceConfig describes one job board to poll.
type SourceConfig struct {
	Name    string `yaml:"name"`
	Enabled bool   `yaml:"enabled"`
	AppID   string `yaml:"app_id"`  // adzuna
	AppKey  string `yaml:"app_key"` // adzuna
	APIKey  string `yaml:"api_key"` // superjob
}

// knownSources lists the source names the adapter registry understands.
var knownSources = map[string]bool{
	"remoteok":   true,
	"remotive":   true,
	"jobicy":     true,
	"adzuna":     true,
	"headhunter": true,
	"superjob":   true,
}

// rawConfig is used for YAML unmarshaling (snake_case fields and durations as strings).
type rawConfig struct {
	CycleInterval    string          `yaml:"cycle_interval"`
	MaxPostsPerCycle *int            `yaml:"max_posts_per_cycle"`
	DedupRetention   string          `yaml:"dedup_retention"`
	FetchTimeout     string          `yaml:"fetch_timeout"`
	RequireRemote    *bool           `yaml:"require_remote"`
	PublishLevels    []string        `yaml:"publish_levels"`
	Pacing           rawPacingConfig `yaml:"pacing"`
	Store            StoreConfig     `yaml:"store"`
	Telegram         TelegramConfig  `yaml:"telegram"`
	Retry            rawRetryConfig  `yaml:"retry"`
	Signals          SignalsConfig   `yaml:"signals"`
	Sources          []SourceConfig  `yaml:"sources"`
}

type rawPacingConfig struct {
	InterSourceDelay string `yaml:"inter_source_delay"`
	Jitter           string `yaml:"jitter"`
	PostDelay        string `yaml:"post_delay"`
}

type rawRetryConfig struct {
	MaxRetries *int   `yaml:"max_retries"`
	BaseDelay  string `yaml:"base_delay"`
}

// Load reads and parses the YAML config file at path, validates it, and returns Config.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Expand environment variables
	expanded := os.ExpandEnv(string(data))

	var raw rawConfig
	if err := yaml.Unmarshal([]byte(expanded), &raw); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	interval := 30 * time.Minute
	if raw.CycleInterval != "" {
		interval, err = time.ParseDuration(raw.CycleInterval)
		if err != nil {
			return nil, fmt.Errorf("parse cycle_interval %q: %w", raw.CycleInterval, err)
		}
	}

	retention := 7 * 24 * time.Hour
	if raw.DedupRetention != "" {
		retention, err = time.ParseDuration(raw.DedupRetention)
		if err != nil {
			return nil, fmt.Errorf("parse dedup_retention %q: %w", raw.DedupRetention, err)
		}
	}

	fetchTimeout := 2 * time.Minute
	if raw.FetchTimeout != "" {
		fetchTimeout, err = time.ParseDuration(raw.FetchTimeout)
		if err != nil {
			return nil, fmt.Errorf("parse fetch_timeout %q: %w", raw.FetchTimeout, err)
		}
	}

	maxPosts := 15
	if raw.MaxPostsPerCycle != nil {
		maxPosts = *raw.MaxPostsPerCycle
	}

	requireRemote := true
	if raw.RequireRemote != nil {
		requireRemote = *raw.RequireRemote
	}

	levels, err := parseLevels(raw.PublishLevels)
	if err != nil {
		return nil, err
	}

	pacing, err := parsePacing(raw.Pacing)
	if err != nil {
		return nil, err
	}

	retry := RetryConfig{MaxRetries: 3, BaseDelay: 2 * time.Second}
	if raw.Retry.MaxRetries != nil {
		retry.MaxRetries = *raw.Retry.MaxRetries
	}
	if raw.Retry.BaseDelay != "" {
		retry.BaseDelay, err = time.ParseDuration(raw.Retry.BaseDelay)
		if err != nil {
			return nil, fmt.Errorf("parse retry.base_delay %q: %w", raw.Retry.BaseDelay, err)
		}
	}

	store := raw.Store
	if store.Type == "" {
		store.Type = "sqlite"
	}
	if store.Type == "sqlite" && store.Path == "" {
		store.Path = "jobpulse.db"
	}

	cfg := &Config{
		CycleInterval:    interval,
		MaxPostsPerCycle: maxPosts,
		DedupRetention:   retention,
		FetchTimeout:     fetchTimeout,
		RequireRemote:    requireRemote,
		PublishLevels:    levels,
		Pacing:           pacing,
		Store:            store,
		Telegram:         raw.Telegram,
		Retry:            retry,
		Signals:          raw.Signals,
		Sources:          raw.Sources,
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// PublishLevelSet returns PublishLevels as a lookup set.
func (c *Config) PublishLevelSet() map[model.Level]bool {
	set := make(map[model.Level]bool, len(c.PublishLevels))
	for _, l := range c.PublishLevels {
		set[l] = true
	}
	return set
}

func parseLevels(names []string) ([]model.Level, error) {
	if len(names) == 0 {
		// By default senior listings are classified but not posted.
		return []model.Level{model.LevelJunior, model.LevelMiddle, model.LevelUnknown}, nil
	}
	byName := map[string]model.Level{
		"junior":  model.LevelJunior,
		"middle":  model.LevelMiddle,
		"senior":  model.LevelSenior,
		"unknown": model.LevelUnknown,
	}
	var levels []model.Level
	for _, name := range names {
		l, ok := byName[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("unknown publish level %q", name)
		}
		levels = append(levels, l)
	}
	return levels, nil
}

func parsePacing(raw rawPacingConfig) (PacingConfig, error) {
	pacing := PacingConfig{
		InterSourceDelay: 5 * time.Second,
		Jitter:           2 * time.Second,
		PostDelay:        3 * time.Second,
	}
	var err error
	if raw.InterSourceDelay != "" {
		pacing.InterSourceDelay, err = time.ParseDuration(raw.InterSourceDelay)
		if err != nil {
			return pacing, fmt.Errorf("parse pacing.inter_source_delay %q: %w", raw.InterSourceDelay, err)
		}
	}
	if raw.Jitter != "" {
		pacing.Jitter, err = time.ParseDuration(raw.Jitter)
		if err != nil {
			return pacing, fmt.Errorf("parse pacing.jitter %q: %w", raw.Jitter, err)
		}
	}
	if raw.PostDelay != "" {
		pacing.PostDelay, err = time.ParseDuration(raw.PostDelay)
		if err != nil {
			return pacing, fmt.Errorf("parse pacing.post_delay %q: %w", raw.PostDelay, err)
		}
	}
	return pacing, nil
}

func validate(cfg *Config) error {
	if cfg.CycleInterval <= 0 {
		return fmt.Errorf("cycle_interval must be positive, got %v", cfg.CycleInterval)
	}
	if cfg.MaxPostsPerCycle <= 0 {
		return fmt.Errorf("max_posts_per_cycle must be positive, got %d", cfg.MaxPostsPerCycle)
	}
	if cfg.DedupRetention <= 0 {
		return fmt.Errorf("dedup_retention must be positive, got %v", cfg.DedupRetention)
	}

	enabled := 0
	for _, s := range cfg.Sources {
		if !knownSources[s.Name] {
			return fmt.Errorf("unknown source %q", s.Name)
		}
		if s.Enabled {
			enabled++
		}
	}
	if enabled == 0 {
		return fmt.Errorf("at least one source must be enabled")
	}

	switch cfg.Store.Type {
	case "sqlite":
		if cfg.Store.Path == "" {
			return fmt.Errorf("store.path is required when type is \"sqlite\"")
		}
	case "redis":
		if cfg.Store.RedisURL == "" {
			return fmt.Errorf("store.redis_url is required when type is \"redis\"")
		}
	default:
		return fmt.Errorf("store.type must be \"sqlite\" or \"redis\", got %q", cfg.Store.Type)
	}

	return nil
}
