package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Q24/ldif2csv/internal/convert"
)

var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Parse an LDIF file and report the record count",
	Long: `Parses the input without producing output. Exits non-zero on the
first structural error (duplicate dn:, invalid DN syntax, bad base64,
misplaced changetype:).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	records, err := convert.New(newLogger()).Run(inputPath(args), convert.DiscardSink{}, parserOptions())
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%d records OK\n", records)
	return nil
}
