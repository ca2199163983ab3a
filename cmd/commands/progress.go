package commands

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/internal/cli"
	"github.com/ventiq/ventiq-terminal/pkg/files"
	"github.com/ventiq/ventiq-terminal/pkg/progress"
)

var progressReset bool

// ProgressResult represents the output structure for progress command
type ProgressResult struct {
	Completed int                `json:"completed" yaml:"completed"`
	Total     int                `json:"total" yaml:"total"`
	Tutorials []progress.Summary `json:"tutorials" yaml:"tutorials"`
}

// NewProgressCommand creates the progress command
func NewProgressCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "progress",
		Short: "Show completed tutorials",
		Long: `Show which tutorials have been completed in the walkthrough.
Progress is stored in .ventiq/progress.db of initialized projects.

Examples:
  # Show progress
  ventiq progress

  # Forget all completions
  ventiq progress --reset`,
		Args: cobra.NoArgs,
		RunE: runProgress,
	}

	cmd.Flags().BoolVar(&progressReset, "reset", false, "Delete all recorded completions")

	return cmd
}

func runProgress(cmd *cobra.Command, args []string) error {
	cctx, err := cli.NewCommandContextFromFlags(cmd)
	if err != nil {
		return err
	}

	store, err := progress.Open(files.ProjectPath(cctx.ProjectRoot, progress.FileName))
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	reset, _ := cmd.Flags().GetBool("reset")
	if reset {
		ok, err := cli.Confirm("Delete all recorded completions?", false)
		if err != nil {
			return err
		}
		if !ok {
			cli.PrintInfo("Reset cancelled")
			return nil
		}
		n, err := store.Reset(ctx)
		if err != nil {
			return err
		}
		cli.PrintSuccess("Deleted %d completion(s)", n)
		return nil
	}

	summaries, err := store.Summaries(ctx)
	if err != nil {
		return err
	}

	result := ProgressResult{Total: cctx.Catalog.Len(), Tutorials: summaries}
	if result.Tutorials == nil {
		result.Tutorials = []progress.Summary{}
	}
	for _, s := range summaries {
		if _, ok := cctx.Catalog.Get(s.Key); ok {
			result.Completed++
		}
	}

	outputFormat := cli.OutputFormatFlag(cmd)
	if cli.IsStructured(outputFormat) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	out := cmd.OutOrStdout()
	if len(summaries) == 0 {
		fmt.Fprintln(out, "No tutorials completed yet. Run 'ventiq' to start one.")
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("KEY", "TITLE", "TIMES", "LAST COMPLETED")
	for _, s := range summaries {
		table.Row(s.Key, cli.TruncateString(s.Title, 40), strconv.Itoa(s.Count), s.LastCompleted.Local().Format(time.DateTime))
	}
	table.Flush()
	fmt.Fprintf(out, "\n%d of %d tutorial(s) completed\n", result.Completed, result.Total)
	return nil
}
