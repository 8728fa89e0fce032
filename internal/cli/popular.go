package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPopularCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "popular",
		Short: "List the backend's popular materials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := outputFormat(output)
			if err != nil {
				return err
			}

			client, err := opts.client()
			if err != nil {
				return err
			}

			list, err := client.Popular(cmd.Context())
			if err != nil {
				return fmt.Errorf("fetching popular materials: %w", err)
			}
			return renderMaterials(cmd.OutOrStdout(), format, list)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	return cmd
}
