package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/internal/cli"
	"github.com/ventiq/ventiq-terminal/pkg/walkthrough"
)

var validateStrict bool

// ValidateResult represents the output structure for validate command
type ValidateResult struct {
	Tutorials int                   `json:"tutorials" yaml:"tutorials"`
	Problems  []walkthrough.Problem `json:"problems" yaml:"problems"`
	Count     int                   `json:"count" yaml:"count"`
}

// NewValidateCommand creates the validate command
func NewValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check tutorials against the screenshot index",
		Long: `Compare the tutorial catalog with the screenshot index.

Screenshots are looked up by tutorial title, so a renamed tutorial
silently falls back to the placeholder image. This command reports:
  missing-mapping    - tutorial title has no screenshots
  missing-images     - fewer screenshots than steps
  extra-images       - more screenshots than steps
  orphan-mapping     - screenshots for a title not in the catalog
  category-mismatch  - screenshots resolve to the other category's folder

Examples:
  # Report problems
  ventiq validate

  # Fail when problems are found (for CI)
  ventiq validate --strict`,
		Args: cobra.NoArgs,
		RunE: runValidate,
	}

	cmd.Flags().BoolVar(&validateStrict, "strict", false, "Exit with an error when problems are found")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContextFromFlags(cmd)
	if err != nil {
		return err
	}

	problems := walkthrough.Audit(ctx.Catalog, ctx.Screenshots)
	result := ValidateResult{
		Tutorials: ctx.Catalog.Len(),
		Problems:  problems,
		Count:     len(problems),
	}
	if result.Problems == nil {
		result.Problems = []walkthrough.Problem{}
	}

	outputFormat := cli.OutputFormatFlag(cmd)
	if cli.IsStructured(outputFormat) {
		if err := cli.OutputResults(cmd.OutOrStdout(), outputFormat, result); err != nil {
			return err
		}
	} else {
		out := cmd.OutOrStdout()
		if len(problems) == 0 {
			fmt.Fprintf(out, "Checked %d tutorial(s): no problems found\n", result.Tutorials)
		} else {
			fmt.Fprintf(out, "Checked %d tutorial(s): %d problem(s)\n\n", result.Tutorials, result.Count)
			for _, p := range problems {
				fmt.Fprintln(out, p.String())
			}
		}
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if strict && len(problems) > 0 {
		return fmt.Errorf("validation failed with %d problem(s)", len(problems))
	}
	return nil
}
