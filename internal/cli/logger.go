package cli

import (
	"github.com/glorpus-work/gogalaxy/internal/logger"
	"github.com/glorpus-work/gogalaxy/pkg/config"
)

// setupLogging initializes the global logger from the configuration and the
// --verbose and --no-color flags.
func setupLogging(cfg *config.Config) {
	level := cfg.Settings.LogLevel
	if Verbose != nil && *Verbose {
		level = "debug"
	}

	format := logger.OutputFormat(cfg.Settings.LogFormat)
	if NoColor != nil && *NoColor {
		logger.DisableColor(true)
		if format == logger.FormatColor {
			format = logger.FormatText
		}
	}

	logger.InitLogger(level, format)
}
