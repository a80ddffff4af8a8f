package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/hsiuhsiu/popdb-go/pkg/popdb"
)

// QueryResult is one row of the query command's JSON output.
type QueryResult struct {
	Zip        string `json:"zip"`
	Population uint32 `json:"population"`
}

// NewQueryCommand creates the query command.
func NewQueryCommand(root *RootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query ZIP...",
		Short: "Insert the dataset and look up postal codes",
		Args:  usageArgs(cobra.MinimumNArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, cleanup, err := root.openLibrary()
			if err != nil {
				return err
			}
			defer cleanup()

			ctx := cmd.Context()
			results := make([]QueryResult, 0, len(args))
			err = popdb.WithDatabase(ctx, lib, func(db *popdb.Database) error {
				if err := db.Insert(ctx); err != nil {
					return err
				}
				for _, zip := range args {
					pop, err := db.Query(ctx, zip)
					if err != nil {
						return err
					}
					results = append(results, QueryResult{Zip: zip, Population: pop})
				}
				return nil
			})
			if err != nil {
				return fmt.Errorf("query: %w", err)
			}

			if asJSON {
				return printJSON(cmd.OutOrStdout(), results)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, r := range results {
				fmt.Fprintf(tw, "%s\t%d\n", r.Zip, r.Population)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON")
	return cmd
}
