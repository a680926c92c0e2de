// Package main provides the CLI entry point for sheets-go.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ukaji3/sheets-go/internal/config"
	"github.com/ukaji3/sheets-go/internal/logging"
	"github.com/ukaji3/sheets-go/pkg/sheets/source"
)

var (
	envFile   string
	logLevel  string
	delimiter string
	encoding  string

	log       *logrus.Logger
	logOutput io.WriteCloser
	registry  *source.Registry
	baseOpts  source.Options
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sheets",
		Short: "Convert, inspect, merge and split tabular files",
		Long: `sheets reads csv, tsv, xlsx, xls, json, yaml, arrow and parquet files
into books of named sheets, reshapes them and writes them back out.`,
		SilenceUsage:       true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}

	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Environment file to load settings from")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&delimiter, "delimiter", "", "CSV field delimiter")
	rootCmd.PersistentFlags().StringVar(&encoding, "encoding", "", "CSV character encoding (IANA name)")

	rootCmd.AddCommand(newConvertCmd(), newInspectCmd(), newMergeCmd(), newSplitCmd())
	return rootCmd
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if delimiter != "" {
		cfg.CSVDelimiter = delimiter
	}
	if encoding != "" {
		cfg.CSVEncoding = encoding
	}

	log, logOutput, err = logging.New(logging.Options{
		Level:      cfg.LogLevel,
		Format:     cfg.LogFormat,
		File:       cfg.LogFile,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
	})
	if err != nil {
		return fmt.Errorf("invalid log settings: %w", err)
	}

	comma, err := cfg.Delimiter()
	if err != nil {
		return err
	}
	baseOpts = source.DefaultOptions()
	if cfg.CSVDelimiter != "" && cfg.CSVDelimiter != "," {
		baseOpts.Delimiter = comma
	}
	baseOpts.Encoding = cfg.CSVEncoding

	registry = source.InitDefault(source.WithLogger(log))
	log.WithField("command", cmd.Name()).Debug("starting")
	return nil
}

func teardown(*cobra.Command, []string) error {
	err := registry.FreeResources()
	if logOutput != nil {
		logOutput.Close()
	}
	return err
}
