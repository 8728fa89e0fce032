package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rshade/matcompare/internal/backend"
	"github.com/rshade/matcompare/internal/config"
	"github.com/rshade/matcompare/internal/logging"
)

// envPrefix is prepended to every environment override, e.g.
// MATCOMPARE_BACKEND_URL.
const envPrefix = "MATCOMPARE"

// Viper keys. Each one is also an environment variable after prefixing.
const (
	keyBackendURL = "backend_url"
	keyTimeout    = "timeout"
	keyDebug      = "debug"
	keyLogLevel   = "log_level"
	keyLogFormat  = "log_format"
)

// logger is the package-level logger for CLI operations.
var logger zerolog.Logger //nolint:gochecknoglobals // Required for zerolog context integration

// baseLogger is logger without the component tag, for handing to other packages.
var baseLogger zerolog.Logger //nolint:gochecknoglobals // Set once per invocation by setupLogging

// rootOptions carries settings resolved once per invocation and shared by
// every subcommand.
type rootOptions struct {
	v          *viper.Viper
	configFile string

	backendURL string
	timeout    time.Duration
}

// NewRootCmd creates the root Cobra command for the matcompare CLI.
// Without a subcommand it launches the interactive search and compare UI.
func NewRootCmd(ver string) *cobra.Command {
	var logResult *logging.LogPathResult

	opts := &rootOptions{v: newViper()}

	cmd := &cobra.Command{
		Use:     "matcompare",
		Short:   "Search and compare materials",
		Long:    "matcompare: search a materials database and compare two materials side by side",
		Version: ver,
		Example: rootCmdExample,
		Args:    cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.resolve(cmd); err != nil {
				return err
			}

			result := setupLogging(cmd, opts, !cmd.HasParent())
			logResult = &result
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return cleanupLogging(logResult)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInteractive(cmd, opts)
		},
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.Bool("debug", false, "enable debug logging")
	flags.StringVar(&opts.configFile, "config", "", "config file (default is ~/.matcompare/config.yaml)")
	flags.String("backend-url", "", "materials backend base URL (env MATCOMPARE_BACKEND_URL)")
	flags.String("timeout", "", "per-request timeout, e.g. 10s; 0 disables (env MATCOMPARE_TIMEOUT)")

	_ = opts.v.BindPFlag(keyBackendURL, flags.Lookup("backend-url"))
	_ = opts.v.BindPFlag(keyTimeout, flags.Lookup("timeout"))
	_ = opts.v.BindPFlag(keyDebug, flags.Lookup("debug"))

	cmd.AddCommand(
		newSearchCmd(opts),
		newPopularCmd(opts),
		newCompareCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(ver),
	)

	return cmd
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// resolve loads the config file and layers environment and flags over it.
// Precedence: flag > MATCOMPARE_* env > config file > defaults.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	if o.configFile != "" {
		cfg, err := config.NewFromFile(o.configFile)
		if err != nil {
			return err
		}
		config.SetGlobalConfig(cfg)
	}

	cfg := config.GetGlobalConfig()
	if err := cfg.LoadError(); err != nil {
		cmd.PrintErrf("Warning: ignoring config file: %v\n", err)
	}

	o.v.SetDefault(keyBackendURL, cfg.Backend.URL)
	o.v.SetDefault(keyTimeout, cfg.Backend.Timeout)

	url, err := backend.NormalizeBaseURL(o.v.GetString(keyBackendURL))
	if err != nil {
		return fmt.Errorf("backend url: %w", err)
	}
	timeout, err := config.ParseTimeout(o.v.GetString(keyTimeout))
	if err != nil {
		return fmt.Errorf("timeout: %w", err)
	}

	o.backendURL = url
	o.timeout = timeout
	return nil
}

// client builds the backend client for this invocation.
func (o *rootOptions) client() (*backend.Client, error) {
	return backend.NewClient(o.backendURL,
		backend.WithTimeout(o.timeout),
		backend.WithLogger(baseLogger),
	)
}

const rootCmdExample = `  # Launch the interactive search and compare UI
  matcompare

  # Search once and print a table
  matcompare search Fe2O3

  # Same search as JSON
  matcompare search Fe2O3 --output json

  # List the backend's popular materials
  matcompare popular

  # Compare the first matches of two queries
  matcompare compare Si GaAs

  # Point at a different backend
  MATCOMPARE_BACKEND_URL=https://materials.example.com matcompare search Si

  # Initialize configuration
  matcompare config init`

// newConfigCmd creates the config command group with configuration subcommands.
func newConfigCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), newConfigShowCmd(opts), NewConfigValidateCmd())
	return cmd
}
