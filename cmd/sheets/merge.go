package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/sheets-go/pkg/sheets"
)

func newMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge OUTPUT INPUT...",
		Short: "Merge the sheets of several files into one book",
		Long: `merge writes every sheet of every INPUT into OUTPUT. A file holding a
single sheet contributes it under the file name; clashing sheet names get a
unique suffix.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := sheets.NewBook(filepath.Base(args[0]))
			for _, in := range args[1:] {
				book, err := registry.GetBook(in, baseOpts)
				if err != nil {
					return fmt.Errorf("failed to read %s: %w", in, err)
				}
				out.Merge(book)
			}
			if err := registry.SaveBook(out, args[0], baseOpts); err != nil {
				return fmt.Errorf("failed to write %s: %w", args[0], err)
			}
			log.WithField("sheets", out.NumberOfSheets()).Info("merged")
			return nil
		},
	}
}

func newSplitCmd() *cobra.Command {
	var fileType string
	cmd := &cobra.Command{
		Use:   "split INPUT OUTDIR",
		Short: "Write each sheet of a file to its own file",
		Long: `split writes one file per sheet of INPUT into OUTDIR, named
"<sheet>_<input file name>".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			book, err := registry.GetBook(args[0], baseOpts)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", args[0], err)
			}
			if err := os.MkdirAll(args[1], 0755); err != nil {
				return err
			}
			for _, part := range book.Split() {
				name := part.Filename()
				if fileType != "" {
					name = strings.TrimSuffix(name, filepath.Ext(name)) + "." + fileType
				}
				path := filepath.Join(args[1], name)
				if err := registry.SaveBook(part, path, baseOpts); err != nil {
					return fmt.Errorf("failed to write %s: %w", path, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), path)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&fileType, "type", "", "Output file type (default: same as INPUT)")
	return cmd
}
