package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rshade/matcompare/internal/config"
	"github.com/rshade/matcompare/internal/materials"
	"github.com/rshade/matcompare/internal/session"
	"github.com/rshade/matcompare/internal/tui"
)

func newCompareCmd(opts *rootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "compare <query-a> <query-b>",
		Short: "Compare the first matches of two queries",
		Long: `Searches for both queries concurrently, takes the first match of each and
prints their properties side by side.`,
		Example: `  matcompare compare Si GaAs
  matcompare compare Fe2O3 Al2O3 --output json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd, opts, args[0], args[1], output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output format: table or json")
	return cmd
}

func runCompare(cmd *cobra.Command, opts *rootOptions, queryA, queryB, output string) error {
	format, err := outputFormat(output)
	if err != nil {
		return err
	}
	for _, q := range []string{queryA, queryB} {
		if err = session.CheckQuery(q); err != nil {
			return fmt.Errorf("search %q: %w", q, err)
		}
	}

	client, err := opts.client()
	if err != nil {
		return err
	}

	var found [2]materials.Material
	g, gctx := errgroup.WithContext(cmd.Context())
	for i, q := range []string{queryA, queryB} {
		i, q := i, q
		g.Go(func() error {
			m, resolveErr := firstMatch(gctx, client, q)
			if resolveErr != nil {
				return resolveErr
			}
			found[i] = m
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return err
	}

	sel := session.NewSelection(found[0])
	if sel, err = addOrFail(sel, found[1]); err != nil {
		return err
	}
	a, b, _ := sel.Pair()

	logger.Debug().Ctx(cmd.Context()).Str("a", a.ID).Str("b", b.ID).Msg("comparing materials")

	w := cmd.OutOrStdout()
	if format == config.OutputJSON {
		return renderJSON(w, []materials.Material{a, b})
	}
	if tui.DetectOutputMode(false, false) == tui.OutputModePlain {
		renderComparisonTable(w, a, b)
		return nil
	}
	_, err = fmt.Fprintln(w, tui.RenderComparison(a, b, tui.TerminalWidth()))
	return err
}

func firstMatch(ctx context.Context, client tui.Catalog, query string) (materials.Material, error) {
	results, err := client.Search(ctx, query)
	if err != nil {
		return materials.Material{}, fmt.Errorf("search %q: %w", query, err)
	}
	if len(results) == 0 {
		return materials.Material{}, fmt.Errorf("%w %q", ErrNoMatch, query)
	}
	return results[0], nil
}

func addOrFail(sel session.Selection, m materials.Material) (session.Selection, error) {
	next, ok := sel.Add(m)
	if !ok {
		return sel, fmt.Errorf("%w: %s", ErrSameMaterial, m.Label())
	}
	return next, nil
}
