package cli

import (
	"fmt"

	"github.com/glorpus-work/gogalaxy/internal/logger"
	"github.com/glorpus-work/gogalaxy/pkg/auth"
	"github.com/glorpus-work/gogalaxy/pkg/config"
	"github.com/glorpus-work/gogalaxy/pkg/fetch"
	"github.com/glorpus-work/gogalaxy/pkg/galaxy"
	"github.com/glorpus-work/gogalaxy/pkg/hook"
)

// These variables will be set by the main package
var (
	ConfigPath   *string
	Verbose      *bool
	NoColor      *bool
	OutputFormat *string
)

// newFetcher builds the transport for a configuration. Tests replace it.
var newFetcher = func(cfg *config.Config) (fetch.Fetcher, error) {
	token, err := auth.LoadToken(cfg.Settings.TokenFile)
	if err != nil {
		return nil, err
	}

	var f fetch.Fetcher = fetch.NewHTTPFetcher(fetch.Options{
		Timeout:    cfg.Settings.HTTPTimeout,
		MaxRetries: cfg.Settings.MaxRetries,
		UserAgent:  cfg.Settings.UserAgent,
		Auth:       auth.BearerAuth{Source: token},
		Logger:     logger.GetLogger(),
	})
	if cfg.Settings.CacheResponses {
		f = fetch.NewCache(f)
	}
	return f, nil
}

// session bundles everything a network command needs.
type session struct {
	cfg      *config.Config
	client   *galaxy.Client
	selector *hook.Selector
}

// loadConfig loads the configuration and applies the global flags to it.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(getConfigPath())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Override config with CLI flags if provided
	if OutputFormat != nil && *OutputFormat != "" {
		cfg.Settings.OutputFormat = *OutputFormat
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}

	setupLogging(cfg)
	return cfg, nil
}

// openSession loads the configuration, the transport and the selection script.
func openSession() (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	f, err := newFetcher(cfg)
	if err != nil {
		return nil, err
	}

	selector, err := hook.Load(cfg.Selection.SelectScript)
	if err != nil {
		return nil, err
	}

	client := galaxy.NewClient(f,
		galaxy.WithLogger(logger.GetLogger()),
		galaxy.WithConcurrency(cfg.Settings.MaxConcurrent),
	)

	logger.Debug("Session ready", logger.Fields{
		"cache":          cfg.Settings.CacheResponses,
		"max_concurrent": cfg.Settings.MaxConcurrent,
		"script":         selector != nil,
	})

	return &session{cfg: cfg, client: client, selector: selector}, nil
}
