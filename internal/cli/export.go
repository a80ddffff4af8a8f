package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/popdb-go/pkg/popdb"
)

// NewExportCommand creates the export command, which copies the dataset as
// answered by the selected backend into a SQLite file.
func NewExportCommand(root *RootOptions) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the dataset to a SQLite file",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if out == "" {
				return usageError("export", errors.New("--out is required"))
			}
			lib, cleanup, err := root.openLibrary()
			if err != nil {
				return err
			}
			defer cleanup()

			rows, err := popdb.ExportSQLite(cmd.Context(), lib, out)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%d rows written to %s\n", rows, out)
			return err
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "SQLite file to write (required)")
	return cmd
}
