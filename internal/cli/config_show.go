package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/matcompare/internal/config"
)

// newConfigShowCmd prints the effective configuration, with flag and
// environment overrides applied to the backend section.
func newConfigShowCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			effective := *config.GetGlobalConfig()
			effective.Backend.URL = opts.backendURL
			effective.Backend.Timeout = opts.timeout.String()
			if opts.timeout == 0 {
				effective.Backend.Timeout = "0"
			}

			data, err := yaml.Marshal(&effective)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			if path := effective.ConfigPath(); path != "" {
				cmd.Printf("# %s\n", path)
			}
			cmd.Print(string(data))
			return nil
		},
	}
}
