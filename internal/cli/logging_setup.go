package cli

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/rshade/matcompare/internal/config"
	"github.com/rshade/matcompare/internal/logging"
)

// setupLogging configures logging based on config file, environment, and CLI flags.
// Interactive sessions never log to the terminal.
func setupLogging(cmd *cobra.Command, opts *rootOptions, interactive bool) logging.LogPathResult {
	loggingCfg := config.GetLoggingConfig()

	debug := opts.v.GetBool(keyDebug)
	if debug {
		loggingCfg.Level = "debug"
		if !interactive {
			loggingCfg.Format = logging.FormatConsole
			loggingCfg.File = ""
		}
	}

	if envLevel := opts.v.GetString(keyLogLevel); envLevel != "" && !debug {
		loggingCfg.Level = envLevel
	}
	if envFormat := opts.v.GetString(keyLogFormat); envFormat != "" {
		loggingCfg.Format = envFormat
	}

	// Ensure log directory exists after all overrides have been applied.
	if loggingCfg.File != "" {
		if err := config.EnsureLogDir(loggingCfg.File); err != nil {
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: could not create log directory: %v\n", err)
		}
	}

	var result logging.LogPathResult
	if interactive {
		result = logging.NewLoggerWithPath(loggingCfg.ToInteractiveLoggingConfig())
		if result.FallbackUsed {
			result.Logger = zerolog.Nop()
		}
	} else {
		result = logging.NewLoggerWithPath(loggingCfg.ToLoggingConfig())
	}
	baseLogger = result.Logger
	logger = logging.ComponentLogger(baseLogger, "cli")

	if result.UsingFile && debug {
		logging.PrintLogPathMessage(cmd.ErrOrStderr(), result.FilePath)
	} else if result.FallbackUsed {
		logging.PrintFallbackWarning(cmd.ErrOrStderr(), result.FallbackReason)
	}

	ctx := cmd.Context()
	traceID := logging.GetOrGenerateTraceID(ctx)
	ctx = logging.ContextWithTraceID(ctx, traceID)
	ctx = logger.WithContext(ctx)
	cmd.SetContext(ctx)

	logger.Info().Ctx(ctx).
		Str("command", cmd.Name()).
		Str("backend_url", opts.backendURL).
		Msg("command started")

	return result
}

// cleanupLogging closes the log file handle, if any.
func cleanupLogging(logResult *logging.LogPathResult) error {
	if logResult != nil {
		return logResult.Close()
	}
	return nil
}
