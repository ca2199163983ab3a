package commands

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/internal/cli"
	"github.com/ventiq/ventiq-terminal/pkg/debug"
	"github.com/ventiq/ventiq-terminal/pkg/files"
	"github.com/ventiq/ventiq-terminal/pkg/progress"
	"github.com/ventiq/ventiq-terminal/pkg/tui"
)

// NewWalkCommand creates the walk command
func NewWalkCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "walk <tutorial>",
		Short: "Start a tutorial walkthrough",
		Long: `Open the interactive walkthrough directly on a tutorial.

Keys:
  →/l/enter  next step (finish on the last step)
  ←/h        previous step
  esc        close
  z          zoom the screenshot
  c          copy the screenshot path

Examples:
  ventiq walk venta`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunTUI(cmd, args[0])
		},
	}

	return cmd
}

// RunTUI launches the interactive interface, opened on startKey when it is
// not empty
func RunTUI(cmd *cobra.Command, startKey string) error {
	ctx, err := cli.NewCommandContextFromFlags(cmd)
	if err != nil {
		return err
	}

	if startKey != "" {
		if _, err := ctx.FindTutorial(startKey); err != nil {
			return err
		}
	}

	opts := []tui.AppOption{tui.WithStartTutorial(startKey)}

	// Progress is only kept for initialized projects
	if _, err := os.Stat(filepath.Join(ctx.ProjectRoot, files.VentiqDir)); err == nil {
		store, err := progress.Open(files.ProjectPath(ctx.ProjectRoot, progress.FileName))
		if err != nil {
			cli.PrintWarning("Progress will not be saved: %v", err)
		} else {
			defer store.Close()
			opts = append(opts, tui.WithProgress(store))
		}
	}

	// Keep debug output off the alternate screen
	if debug.Enabled() {
		f, err := tea.LogToFile(filepath.Join(os.TempDir(), "ventiq-debug.log"), "ventiq")
		if err == nil {
			defer f.Close()
			debug.SetOutput(f)
		}
	}

	app := tui.NewApp(ctx.Catalog, ctx.Screenshots, ctx.Settings, opts...)
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to start the terminal user interface: %w", err)
	}
	return nil
}
