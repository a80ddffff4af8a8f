package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/popdb-go/internal/styles"
	"github.com/hsiuhsiu/popdb-go/pkg/popdb"
)

// NewVersionCommand creates the version command. It reports the wrapper
// version, the selected backend and the version the backend reports.
func NewVersionCommand(root *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, cleanup, err := root.openLibrary()
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, styles.KeyValue("popdb", popdb.WrapperVersion()))
			fmt.Fprintln(out, styles.KeyValue("backend", lib.Backend()))
			library := lib.Version()
			if library == "" {
				library = styles.Dim("unknown")
			}
			fmt.Fprintln(out, styles.KeyValue("library", library))
			return nil
		},
	}
}
