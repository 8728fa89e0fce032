package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/matcompare/internal/session"
)

func newSearchCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search materials by formula or element",
		Long: `Runs one search against the backend and prints up to five matches.

The query is matched by formula (Si, Fe2O3) or element (Fe) and must be at
least two characters long.`,
		Example: `  matcompare search Si
  matcompare search Fe2O3 --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, opts, strings.Join(args, " "), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	return cmd
}

func runSearch(cmd *cobra.Command, opts *rootOptions, query, output string) error {
	format, err := outputFormat(output)
	if err != nil {
		return err
	}
	if err = session.CheckQuery(query); err != nil {
		return fmt.Errorf("search %q: %w", query, err)
	}

	client, err := opts.client()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	results, err := client.Search(ctx, query)
	if err != nil {
		logger.Error().Ctx(ctx).Err(err).Str("query", query).Msg("search failed")
		return fmt.Errorf("search %q: %w", query, err)
	}
	logger.Debug().Ctx(ctx).Str("query", query).Int("count", len(results)).Msg("search complete")

	return renderMaterials(cmd.OutOrStdout(), format, results)
}
