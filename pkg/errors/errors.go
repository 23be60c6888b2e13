package errors

import "fmt"

// Common error types.
var (
	// Config errors.
	ErrEmptyConfigPath   = fmt.Errorf("config file path cannot be empty")
	ErrInvalidConfigPath = fmt.Errorf("invalid config file path")
	ErrConfigParse       = fmt.Errorf("failed to parse config")
	ErrConfigValidation  = fmt.Errorf("invalid configuration")
	ErrConfigEncode      = fmt.Errorf("failed to encode config")
	ErrConfigDirectory   = fmt.Errorf("failed to create config directory")
	ErrConfigFileCreate  = fmt.Errorf("failed to create config file")
	ErrConfigFileRename  = fmt.Errorf("failed to rename temporary config file")
	ErrConfigFileExists  = fmt.Errorf("configuration file already exists (use --force to overwrite)")
	ErrConfigMarshal     = fmt.Errorf("failed to marshal config to YAML")
	ErrUnknownConfigKey  = fmt.Errorf("unknown configuration key")

	// Settings validation errors.
	ErrHTTPTimeoutNegative  = fmt.Errorf("http_timeout cannot be negative")
	ErrMaxRetriesNegative   = fmt.Errorf("max_retries cannot be negative")
	ErrMaxConcurrentInvalid = fmt.Errorf("max_concurrent must be at least 1")
	ErrInvalidOutputFormat  = fmt.Errorf("invalid output format")
	ErrInvalidLogLevel      = fmt.Errorf("invalid log level")

	// Selection errors.
	ErrInvalidPlatform = fmt.Errorf("invalid platform selection")
	ErrInvalidLanguage = fmt.Errorf("invalid language selection")

	// Auth errors.
	ErrTokenFile = fmt.Errorf("failed to read token file")

	// Build errors.
	ErrBuildNotFound            = fmt.Errorf("no matching build found")
	ErrInvalidVersionConstraint = fmt.Errorf("invalid version constraint")

	// Hook errors.
	ErrHookCompile   = fmt.Errorf("failed to compile selection script")
	ErrHookExecution = fmt.Errorf("error executing selection script")
	ErrHookScript    = fmt.Errorf("selection script error")
)

// Wrap wraps an error with additional context.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// Wrapf wraps an error with additional formatted context.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

// InvalidValue returns err annotated with the offending value.
func InvalidValue(err error, value string) error {
	return fmt.Errorf("%w: %q", err, value)
}
