package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	var nameColumnsByRow int
	cmd := &cobra.Command{
		Use:   "inspect INPUT",
		Short: "Print the sheets of a file with their shapes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := registry.GetBook(args[0], baseOpts)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "SHEET\tROWS\tCOLUMNS\tNAMES")
			for s := range book.Sheets() {
				if nameColumnsByRow >= 0 && s.NumberOfRows() > nameColumnsByRow {
					if err := s.NameColumnsByRow(nameColumnsByRow); err != nil {
						return err
					}
				}
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", s.Name(), s.NumberOfRows(), s.NumberOfColumns(), strings.Join(s.Colnames(), ","))
			}
			return w.Flush()
		},
	}
	cmd.Flags().IntVar(&nameColumnsByRow, "name-columns-by-row", -1, "Row holding the column names")
	return cmd
}
