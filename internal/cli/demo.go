package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/popdb-go/pkg/popdb"
)

// NewDemoCommand creates the demo command: insert the dataset, query two
// postal codes and print the difference of their populations.
func NewDemoCommand(root *RootOptions) *cobra.Command {
	var from, to string

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Print population(--to) - population(--from)",
		Long: `Create a database, insert the dataset, query two postal codes and print
the difference of their populations as an unsigned 32-bit integer.`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, cleanup, err := root.openLibrary()
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := popdb.RunDemo(cmd.Context(), lib, from, to)
			if err != nil {
				return fmt.Errorf("demo: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Diff)
			return err
		},
	}

	cmd.Flags().StringVar(&from, "from", popdb.DemoFrom, "first postal code")
	cmd.Flags().StringVar(&to, "to", popdb.DemoTo, "second postal code")
	return cmd
}
