package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

var (
	outputFormats = []string{"text", "json", "yaml"}
	logFormats    = []string{"console", "json"}
	logLevels     = []string{"debug", "info", "warn", "warning", "error"}
)

// ValidateConfig validates the configuration
func ValidateConfig(config *Config) []ValidationError {
	var errors []ValidationError

	if !oneOf(config.Output, outputFormats) {
		errors = append(errors, ValidationError{
			Path:    "output",
			Message: fmt.Sprintf("unsupported output format %q (want %s)", config.Output, strings.Join(outputFormats, ", ")),
		})
	}

	if !oneOf(config.LogFormat, logFormats) {
		errors = append(errors, ValidationError{
			Path:    "log_format",
			Message: fmt.Sprintf("unsupported log format %q (want %s)", config.LogFormat, strings.Join(logFormats, ", ")),
		})
	}

	if !oneOf(config.LogLevel, logLevels) {
		errors = append(errors, ValidationError{
			Path:    "log_level",
			Message: fmt.Sprintf("unknown log level %q", config.LogLevel),
		})
	}

	if config.ChunkSize <= 0 {
		errors = append(errors, ValidationError{
			Path:    "chunk_size",
			Message: "must be a positive number of bytes",
		})
	}

	return errors
}

func oneOf(value string, allowed []string) bool {
	for _, a := range allowed {
		if strings.EqualFold(value, a) {
			return true
		}
	}
	return false
}
