package commands

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/internal/cli"
)

var screenshotCopy bool

// clipboardWriter is swapped out in tests
var clipboardWriter = clipboard.WriteAll

// ScreenshotResult represents the output structure for screenshot command
type ScreenshotResult struct {
	Key         string `json:"key" yaml:"key"`
	Step        int    `json:"step" yaml:"step"`
	Path        string `json:"path" yaml:"path"`
	Placeholder bool   `json:"placeholder" yaml:"placeholder"`
}

// NewScreenshotCommand creates the screenshot command
func NewScreenshotCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "screenshot <tutorial> <step>",
		Short: "Print the screenshot path of a tutorial step",
		Long: `Resolve the screenshot shown for a tutorial step. Steps without a
mapped screenshot resolve to the placeholder image.

Examples:
  # Path of the second step of the sales tutorial
  ventiq screenshot venta 2

  # Copy it to the clipboard
  ventiq screenshot venta 2 --copy`,
		Args:    cobra.ExactArgs(2),
		Aliases: []string{"shot"},
		RunE:    runScreenshot,
	}

	cmd.Flags().BoolVarP(&screenshotCopy, "copy", "c", false, "Copy the path to the clipboard")

	return cmd
}

func runScreenshot(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContextFromFlags(cmd)
	if err != nil {
		return err
	}

	tutorial, err := ctx.FindTutorial(args[0])
	if err != nil {
		return err
	}

	step, err := cli.ParseStepNumber(args[1])
	if err != nil {
		return err
	}

	resolver := ctx.Resolver()
	path := resolver.Resolve(tutorial.Title, step-1)
	result := ScreenshotResult{
		Key:         tutorial.Key,
		Step:        step,
		Path:        path,
		Placeholder: path == resolver.Placeholder(),
	}

	copyPath, _ := cmd.Flags().GetBool("copy")
	if copyPath {
		if err := clipboardWriter(path); err != nil {
			return fmt.Errorf("failed to copy to clipboard: %w", err)
		}
	}

	outputFormat := cli.OutputFormatFlag(cmd)
	if cli.IsStructured(outputFormat) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)
	if copyPath {
		cli.PrintSuccess("Copied to clipboard")
	}
	return nil
}
