package cli

import "github.com/spf13/cobra"

func newVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the matcompare version",
		Args:  cobra.NoArgs,
		// Skip config and logging setup.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			cmd.Printf("matcompare version %s\n", ver)
		},
	}
}
