// Package main provides the entry point for the ldif2csv CLI.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Q24/ldif2csv/internal/config"
	"github.com/Q24/ldif2csv/internal/convert"
	"github.com/Q24/ldif2csv/internal/logging"
	"github.com/Q24/ldif2csv/pkg/ldif"
)

var rootCmd = &cobra.Command{
	Use:   "ldif2csv [file]",
	Short: "Convert LDIF directory exports to CSV, JSON or normalized LDIF",
	Long: `Reads an LDIF file (RFC 2849) and converts its records to CSV,
JSON Lines or normalized LDIF.

The input may be plain, gzip (.gz) or zstd (.zst) compressed; "-" or no
argument reads from stdin.

CSV output needs a column list; the column name "dn" selects the record
DN:

  ldif2csv --format csv --columns dn,cn,mail users.ldif`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().StringSlice("ignore", nil, "Attribute types to drop (repeatable)")
	rootCmd.PersistentFlags().IntP("max-entries", "n", 0, "Maximum records to read, 0 = unlimited")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().String("log-format", "text", "Log format: text, json")

	rootCmd.Flags().StringP("format", "f", "csv", "Output format: csv, json, ldif")
	rootCmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")
	rootCmd.Flags().StringSliceP("columns", "c", nil, "CSV columns (attribute names, dn for the DN)")
	rootCmd.Flags().String("value-sep", "|", "Separator joining multi-valued attributes in CSV cells")

	viper.BindPFlag("ignore", rootCmd.PersistentFlags().Lookup("ignore"))
	viper.BindPFlag("max_entries", rootCmd.PersistentFlags().Lookup("max-entries"))
	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))
	viper.BindPFlag("format", rootCmd.Flags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	viper.BindPFlag("columns", rootCmd.Flags().Lookup("columns"))
	viper.BindPFlag("value_sep", rootCmd.Flags().Lookup("value-sep"))
}

func initConfig() {
	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
	}
}

func newLogger() logging.Logger {
	return logging.New(logging.Config{
		Level:  config.GetLogLevel(),
		Format: config.GetLogFormat(),
		Output: os.Stderr,
	})
}

func parserOptions() *ldif.Options {
	return &ldif.Options{
		IgnoredAttrTypes: config.GetIgnore(),
		MaxEntries:       config.GetMaxEntries(),
	}
}

func inputPath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "-"
}

// openOutput opens the destination stream. The returned func closes it
// when it is a real file.
func openOutput(path string) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output: %w", err)
	}
	return f, f.Close, nil
}

func newSink(w io.Writer) (convert.Sink, error) {
	switch format := config.GetFormat(); format {
	case "csv":
		return convert.NewCSVSink(w, config.GetColumns(), config.GetValueSep())
	case "json":
		return convert.NewJSONSink(w), nil
	case "ldif":
		return convert.NewLDIFSink(w, "\n"), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want csv, json or ldif)", format)
	}
}

func runConvert(cmd *cobra.Command, args []string) error {
	out, closeOut, err := openOutput(config.GetOutput())
	if err != nil {
		return err
	}

	sink, err := newSink(out)
	if err != nil {
		closeOut()
		return err
	}

	_, err = convert.New(newLogger()).Run(inputPath(args), sink, parserOptions())
	if cerr := closeOut(); err == nil {
		err = cerr
	}
	return err
}

func main() {
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
