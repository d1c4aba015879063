package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"widl/internal/diagfmt"
	"widl/internal/driver"
	"widl/internal/project"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] [file.widl ...]",
	Short: "Check schemas and compute wire layout",
	Long: `Compile parses the given schema files as one unit, checks their
declarations, and computes wire-format shapes. Without arguments the
schema list comes from the nearest widl.toml.`,
	RunE: runCompile,
}

func init() {
	compileCmd.Flags().StringP("output", "o", "", "write the layout table to this path")
	compileCmd.Flags().String("package", "", "package name recorded in the layout table")
}

func runCompile(cmd *cobra.Command, args []string) error {
	paths := args
	pkg, _ := cmd.Flags().GetString("package")
	output, _ := cmd.Flags().GetString("output")

	if len(paths) == 0 {
		manifest, ok, err := project.LoadFrom(".")
		if err != nil {
			return err
		}
		if !ok {
			return errors.New("no widl.toml found\nplease list schema files explicitly, e.g.:\n  widlc compile schemas/demo.widl")
		}
		paths = manifest.SchemaPaths()
		if pkg == "" {
			pkg = manifest.Config.Package.Name
		}
		if output == "" {
			output = manifest.OutputPath()
		}
	}

	result, err := driver.Compile(cmd.Context(), paths, driver.Options{
		MaxDiagnostics: maxDiagnostics(cmd),
	})
	printDiagnostics(cmd, result)
	if err != nil {
		return fmt.Errorf("compilation failed: %w", err)
	}

	if output != "" {
		payload := driver.BuildExportPayload(pkg, result.Session)
		if err := driver.Export(output, payload); err != nil {
			return fmt.Errorf("failed to write layout table: %w", err)
		}
	}
	return nil
}

func printDiagnostics(cmd *cobra.Command, result *driver.Result) {
	if result == nil || result.Bag == nil || result.Bag.Len() == 0 {
		return
	}
	result.Bag.Sort()
	diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		ShowNotes: true,
	})
}
