// Package config provides configuration management for gogalaxy. It loads,
// validates and saves the YAML configuration file holding transport settings
// and the download selection applied to product listings.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/glorpus-work/gogalaxy/internal/logger"
	"github.com/glorpus-work/gogalaxy/pkg/errors"
	"github.com/glorpus-work/gogalaxy/pkg/fsutil"
	"github.com/glorpus-work/gogalaxy/pkg/galaxy"
	"github.com/glorpus-work/gogalaxy/pkg/platform"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Settings  Settings  `yaml:"settings"`
	Selection Selection `yaml:"selection"`
}

// Settings represents general application settings.
type Settings struct {
	// Output settings
	LogLevel     string `yaml:"log_level"`     // debug, info, warn, error
	LogFormat    string `yaml:"log_format"`    // text, json, color
	OutputFormat string `yaml:"output_format"` // text, json

	// Network settings
	HTTPTimeout    time.Duration `yaml:"http_timeout"`
	MaxRetries     int           `yaml:"max_retries"`
	MaxConcurrent  int           `yaml:"max_concurrent"`
	UserAgent      string        `yaml:"user_agent"`
	CacheResponses bool          `yaml:"cache_responses"`

	// TokenFile points at the galaxy token JSON. Empty means anonymous access.
	TokenFile string `yaml:"token_file,omitempty"`
}

// Selection decides which files product listings are reduced to.
type Selection struct {
	Platforms string `yaml:"platforms"`
	Languages string `yaml:"languages"`

	// Depot filters for generation 2 manifests.
	GalaxyLanguage string `yaml:"galaxy_language"`
	GalaxyArch     string `yaml:"galaxy_arch"`

	Installers       bool `yaml:"installers"`
	Extras           bool `yaml:"extras"`
	Patches          bool `yaml:"patches"`
	LanguagePacks    bool `yaml:"language_packs"`
	DLC              bool `yaml:"dlc"`
	DuplicateHandler bool `yaml:"duplicate_handler"`

	// SelectScript is an optional tengo snippet run on every listed file.
	SelectScript string `yaml:"select_script,omitempty"`
}

// Default configuration values.
const (
	DefaultHTTPTimeout   = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultMaxConcurrent = galaxy.DefaultConcurrency
	DefaultUserAgent     = "gogalaxy/1.0"

	// YAMLIndent is the number of spaces to use for YAML indentation.
	YAMLIndent = 2
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Settings: Settings{
			LogLevel:       "info",
			LogFormat:      string(logger.FormatText),
			OutputFormat:   "text",
			HTTPTimeout:    DefaultHTTPTimeout,
			MaxRetries:     DefaultMaxRetries,
			MaxConcurrent:  DefaultMaxConcurrent,
			UserAgent:      DefaultUserAgent,
			CacheResponses: true,
		},
		Selection: Selection{
			Platforms:        strings.Join(platform.Codes(platform.CurrentPlatform(), platform.Platforms), ","),
			Languages:        "en",
			GalaxyLanguage:   "en",
			GalaxyArch:       platform.CurrentArch(),
			Installers:       true,
			Extras:           true,
			Patches:          true,
			LanguagePacks:    true,
			DLC:              true,
			DuplicateHandler: true,
		},
	}
}

// LoadConfig loads configuration from a file. A missing file yields the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	file, err := os.Open(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, errors.Wrapf(err, "failed to open config file: %s", path)
	}
	defer func() { _ = file.Close() }()

	return LoadConfigFromReader(file)
}

// LoadConfigFromReader loads configuration from an io.Reader. Keys absent
// from the document keep their default values.
func LoadConfigFromReader(reader io.Reader) (*Config, error) {
	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config data")
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, errors.Wrap(errors.ErrConfigParse, err.Error())
	}

	config.applyDefaults()

	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(errors.ErrConfigValidation, err.Error())
	}

	return config, nil
}

// SaveConfig writes the configuration atomically.
func (c *Config) SaveConfig(path string) error {
	if path == "" {
		return errors.ErrEmptyConfigPath
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return errors.Wrap(errors.ErrInvalidConfigPath, err.Error())
	}

	if err := os.MkdirAll(filepath.Dir(absPath), fsutil.DirModeDefault); err != nil {
		return errors.Wrap(errors.ErrConfigDirectory, err.Error())
	}

	return fsutil.WriteAtomic(absPath, fsutil.FileModeDefault, func(w io.Writer) error {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(YAMLIndent)
		if err := encoder.Encode(c); err != nil {
			return errors.Wrap(errors.ErrConfigEncode, err.Error())
		}
		return encoder.Close()
	})
}

// ToYAML converts the config to YAML bytes.
func (c *Config) ToYAML() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(errors.ErrConfigMarshal, err.Error())
	}
	return data, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c == nil {
		return errors.ErrConfigValidation
	}
	if err := validateSettings(c.Settings); err != nil {
		return err
	}
	return validateSelection(c.Selection)
}

func validateSettings(s Settings) error {
	if s.HTTPTimeout < 0 {
		return errors.ErrHTTPTimeoutNegative
	}
	if s.MaxRetries < 0 {
		return errors.ErrMaxRetriesNegative
	}
	if s.MaxConcurrent < 1 {
		return errors.ErrMaxConcurrentInvalid
	}
	switch s.OutputFormat {
	case "text", "json":
	default:
		return errors.InvalidValue(errors.ErrInvalidOutputFormat, s.OutputFormat)
	}
	if !logger.ValidFormat(s.LogFormat) {
		return errors.InvalidValue(errors.ErrInvalidOutputFormat, s.LogFormat)
	}
	if _, ok := logger.ParseLevel(s.LogLevel); !ok {
		return errors.InvalidValue(errors.ErrInvalidLogLevel, s.LogLevel)
	}
	return nil
}

func validateSelection(s Selection) error {
	if _, err := platform.ParsePlatforms(s.Platforms); err != nil {
		return err
	}
	if _, err := platform.ParseLanguages(s.Languages); err != nil {
		return err
	}
	switch s.GalaxyArch {
	case platform.Arch32, platform.Arch64, platform.AnyArch:
	default:
		return fmt.Errorf("invalid galaxy_arch %q, must be one of: 32, 64, *", s.GalaxyArch)
	}
	return nil
}

// FileOptions converts the selection into options for the galaxy client.
func (s Selection) FileOptions() (galaxy.FileOptions, error) {
	platforms, err := platform.ParsePlatforms(s.Platforms)
	if err != nil {
		return galaxy.FileOptions{}, err
	}
	languages, err := platform.ParseLanguages(s.Languages)
	if err != nil {
		return galaxy.FileOptions{}, err
	}
	return galaxy.FileOptions{
		Platforms:        platforms,
		Languages:        languages,
		Installers:       s.Installers,
		Extras:           s.Extras,
		Patches:          s.Patches,
		LanguagePacks:    s.LanguagePacks,
		DLC:              s.DLC,
		DuplicateHandler: s.DuplicateHandler,
	}, nil
}

// GetDefaultConfigPath returns the default configuration file path.
func GetDefaultConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(configDir, "gogalaxy", "config.yaml"), nil
}

// applyDefaults fills values that were explicitly blanked in the file.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()

	if c.Settings.LogLevel == "" {
		c.Settings.LogLevel = defaults.Settings.LogLevel
	}
	if c.Settings.LogFormat == "" {
		c.Settings.LogFormat = defaults.Settings.LogFormat
	}
	if c.Settings.OutputFormat == "" {
		c.Settings.OutputFormat = defaults.Settings.OutputFormat
	}
	if c.Settings.HTTPTimeout == 0 {
		c.Settings.HTTPTimeout = defaults.Settings.HTTPTimeout
	}
	if c.Settings.MaxConcurrent == 0 {
		c.Settings.MaxConcurrent = defaults.Settings.MaxConcurrent
	}
	if c.Settings.UserAgent == "" {
		c.Settings.UserAgent = defaults.Settings.UserAgent
	}
	if c.Selection.Platforms == "" {
		c.Selection.Platforms = defaults.Selection.Platforms
	}
	if c.Selection.Languages == "" {
		c.Selection.Languages = defaults.Selection.Languages
	}
	if c.Selection.GalaxyLanguage == "" {
		c.Selection.GalaxyLanguage = defaults.Selection.GalaxyLanguage
	}
	if c.Selection.GalaxyArch == "" {
		c.Selection.GalaxyArch = defaults.Selection.GalaxyArch
	}
}
