package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/internal/cli"
	"github.com/ventiq/ventiq-terminal/pkg/models"
	"github.com/ventiq/ventiq-terminal/pkg/walkthrough"
)

var (
	showStep     int
	showMarkdown bool
)

// ShowResult represents the output structure for show command
type ShowResult struct {
	Key      string                    `json:"key" yaml:"key"`
	Title    string                    `json:"title" yaml:"title"`
	Category string                    `json:"category" yaml:"category"`
	Steps    []walkthrough.RenderState `json:"steps" yaml:"steps"`
}

// NewShowCommand creates the show command
func NewShowCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <tutorial>",
		Short: "Display a tutorial",
		Long: `Display every step of a tutorial with its instructions and
screenshot path, exactly as the walkthrough presents them.

Examples:
  # Show a tutorial
  ventiq show venta

  # Show only the third step
  ventiq show recepcion --step 3

  # Render as formatted markdown
  ventiq show venta --markdown

  # Output as JSON
  ventiq show egresos -o json`,
		Args: cobra.ExactArgs(1),
		RunE: runShow,
	}

	cmd.Flags().IntVarP(&showStep, "step", "s", 0, "Show only this step (1-based)")
	cmd.Flags().BoolVarP(&showMarkdown, "markdown", "m", false, "Render the tutorial as formatted markdown")

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContextFromFlags(cmd)
	if err != nil {
		return err
	}

	tutorial, err := ctx.FindTutorial(args[0])
	if err != nil {
		return err
	}

	step, _ := cmd.Flags().GetInt("step")
	if step != 0 {
		if err := cli.ValidateStep(tutorial, step); err != nil {
			return err
		}
	}

	result := ShowResult{
		Key:      tutorial.Key,
		Title:    tutorial.Title,
		Category: tutorial.Category,
		Steps:    collectStates(ctx.Controller(), tutorial, step),
	}

	outputFormat := cli.OutputFormatFlag(cmd)
	if cli.IsStructured(outputFormat) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	markdown, _ := cmd.Flags().GetBool("markdown")
	if markdown {
		return outputShowMarkdown(cmd.OutOrStdout(), result, ctx.Settings.UI.WrapWidth)
	}
	outputShowText(cmd.OutOrStdout(), result, ctx.Settings.UI.WrapWidth)
	return nil
}

// collectStates walks the tutorial and returns the render state of every
// step, or only of step n when n is not zero
func collectStates(c *walkthrough.Controller, t *models.Tutorial, n int) []walkthrough.RenderState {
	if n != 0 {
		if !c.StepTo(t.Key, n) {
			return nil
		}
		state, _ := c.State()
		return []walkthrough.RenderState{state}
	}

	var states []walkthrough.RenderState
	if !c.Open(t.Key) {
		return nil
	}
	for {
		state, ok := c.State()
		if !ok {
			break
		}
		states = append(states, state)
		if state.IsLast {
			c.Close()
			break
		}
		c.Next()
	}
	return states
}

func outputShowText(out io.Writer, result ShowResult, width int) {
	fmt.Fprintf(out, "%s (%s, %s)\n", result.Title, result.Key, result.Category)
	fmt.Fprintln(out, strings.Repeat("=", 60))

	for _, s := range result.Steps {
		fmt.Fprintf(out, "\n%s: %s\n", s.Counter(), s.StepTitle)
		if s.Body != "" {
			fmt.Fprintln(out, cli.Wrap(s.Body, width, "  "))
		}
		for i, instruction := range s.Instructions {
			fmt.Fprintln(out, cli.Wrap(fmt.Sprintf("%d. %s", i+1, instruction), width, "    "))
		}
		fmt.Fprintf(out, "  Screenshot: %s\n", s.Screenshot)
	}
}

func markdownDocument(result ShowResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", result.Title)
	fmt.Fprintf(&b, "*%s* · `%s`\n", result.Category, result.Key)
	for _, s := range result.Steps {
		fmt.Fprintf(&b, "\n## %d. %s\n\n", s.StepNumber, s.StepTitle)
		if s.Body != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Body)
		}
		for i, instruction := range s.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, instruction)
		}
		fmt.Fprintf(&b, "\n![%s](%s)\n", s.Caption(), s.Screenshot)
	}
	return b.String()
}

func outputShowMarkdown(out io.Writer, result ShowResult, width int) error {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fmt.Errorf("failed to create markdown renderer: %w", err)
	}

	rendered, err := renderer.Render(markdownDocument(result))
	if err != nil {
		return fmt.Errorf("failed to render markdown: %w", err)
	}
	fmt.Fprint(out, rendered)
	return nil
}
