package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"widl/internal/diagfmt"
	"widl/internal/driver"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [flags] file.widl ...",
	Short: "Print every declaration with its wire shape",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runDump,
}

func runDump(cmd *cobra.Command, args []string) error {
	result, err := driver.Compile(cmd.Context(), args, driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
	})
	printDiagnostics(cmd, result)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	diagfmt.Dump(os.Stdout, result.Session)
	return nil
}
