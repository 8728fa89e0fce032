package config

import "github.com/rshade/matcompare/internal/logging"

// ToLoggingConfig converts the logging section into a logging.Config for
// command-line use: a configured file wins, otherwise stderr.
func (lc *LoggingConfig) ToLoggingConfig() logging.Config {
	output := logging.OutputStderr
	if lc.File != "" {
		output = logging.OutputFile
	}

	return logging.Config{
		Level:  lc.Level,
		Format: lc.Format,
		Output: output,
		File:   lc.File,
	}
}

// ToInteractiveLoggingConfig is ToLoggingConfig for the full-screen TUI,
// which must never write to the terminal: without a file, logs are dropped.
func (lc *LoggingConfig) ToInteractiveLoggingConfig() logging.Config {
	cfg := lc.ToLoggingConfig()
	if cfg.Output != logging.OutputFile {
		cfg.Output = logging.OutputDiscard
	}
	return cfg
}

// GetLoggingConfig returns a copy of the global Logging section. Flag and
// environment overrides are applied by the caller.
func GetLoggingConfig() LoggingConfig {
	return GetGlobalConfig().Logging
}
