package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

var version = "0.3.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ldif2csv %s (%s/%s)\n", version, runtime.GOOS, runtime.GOARCH)
	},
}
