package commands

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/internal/cli"
	"github.com/ventiq/ventiq-terminal/pkg/catalog"
	"github.com/ventiq/ventiq-terminal/pkg/files"
)

var initForce bool

// NewInitCommand creates the init command
func NewInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a new VentIQ tutorials project",
		Long: `Creates the .ventiq folder in the project root and seeds it with the
built-in tutorials, their screenshot index and default settings. Edit the
YAML files to change what the walkthrough shows.`,
		Args: cobra.NoArgs,
		RunE: runInit,
	}

	cmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing project files")

	return cmd
}

func runInit(cmd *cobra.Command, args []string) error {
	root := cli.ProjectRootFlag(cmd)
	abs, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("failed to determine project directory: %w", err)
	}

	force, _ := cmd.Flags().GetBool("force")

	cli.PrintInfo("Initializing VentIQ project in %s...", abs)

	written, err := files.InitProjectStructure(root, catalog.Builtin(), catalog.BuiltinScreenshots(), force)
	if errors.Is(err, files.ErrProjectExists) {
		ok, cerr := cli.Confirm("Project already initialized. Overwrite it with the built-in tutorials?", false)
		if cerr != nil {
			return cerr
		}
		if !ok {
			cli.PrintInfo("Init cancelled")
			return nil
		}
		written, err = files.InitProjectStructure(root, catalog.Builtin(), catalog.BuiltinScreenshots(), true)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize project structure: %w", err)
	}

	for _, path := range written {
		cli.PrintSuccess("Created %s", path)
	}
	fmt.Fprintln(cmd.OutOrStdout(), "\nRun 'ventiq' to start the interactive tutorials.")
	return nil
}
