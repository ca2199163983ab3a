package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/internal/cli"
	"github.com/ventiq/ventiq-terminal/pkg/files"
)

// DefaultExportFile is written when export gets no file argument
const DefaultExportFile = "ventiq-tutorials.yaml"

// NewExportCommand creates the export command
func NewExportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Export tutorials and screenshots to a single file",
		Long: `Write the tutorial catalog and the screenshot index to one YAML
file. Use "-" to write to standard output.

Examples:
  # Export to ventiq-tutorials.yaml
  ventiq export

  # Export to a specific file
  ventiq export backup/tutorials.yaml

  # Print the bundle
  ventiq export -`,
		Args: cobra.MaximumNArgs(1),
		RunE: runExport,
	}

	return cmd
}

func runExport(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContextFromFlags(cmd)
	if err != nil {
		return err
	}

	target := DefaultExportFile
	if len(args) > 0 {
		target = args[0]
	}

	if target == "-" {
		bundle := files.Bundle{Tutorials: ctx.Catalog.Tutorials(), Screenshots: ctx.Screenshots}
		format := cli.OutputFormatFlag(cmd)
		if !cli.IsStructured(format) {
			format = string(cli.FormatYAML)
		}
		return cli.OutputResults(cmd.OutOrStdout(), format, bundle)
	}

	if err := files.WriteBundle(target, ctx.Catalog, ctx.Screenshots); err != nil {
		return fmt.Errorf("failed to export tutorials: %w", err)
	}

	cli.PrintSuccess("Exported %d tutorial(s) to %s", ctx.Catalog.Len(), target)
	return nil
}
