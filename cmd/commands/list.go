package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/internal/cli"
	"github.com/ventiq/ventiq-terminal/pkg/files"
)

// ListResult represents the output structure for list command
type ListResult struct {
	Category string     `json:"category" yaml:"category"`
	Source   string     `json:"source" yaml:"source"`
	Items    []ListItem `json:"items" yaml:"items"`
	Count    int        `json:"count" yaml:"count"`
}

// ListItem represents a single tutorial in the list
type ListItem struct {
	Key      string `json:"key" yaml:"key"`
	Title    string `json:"title" yaml:"title"`
	Category string `json:"category" yaml:"category"`
	Steps    int    `json:"steps" yaml:"steps"`
}

// NewListCommand creates the list command
func NewListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [category]",
		Short: "List tutorials",
		Long: `List the tutorials of the current project, or the built-in
tutorials when the project has no catalog.

Categories:
  seller  - VentIQ Seller point of sale app
  admin   - VentIQ Admin web back office
  all     - Everything (default)

Examples:
  # List all tutorials
  ventiq list

  # List only seller tutorials
  ventiq list seller

  # List admin tutorials as JSON
  ventiq list admin -o json`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"seller", "admin", "all"},
		RunE:      runList,
	}

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	category := cli.CategoryAll
	if len(args) > 0 {
		var err error
		if category, err = cli.NormalizeCategory(args[0]); err != nil {
			return err
		}
	}

	ctx, err := cli.NewCommandContextFromFlags(cmd)
	if err != nil {
		return err
	}

	tutorials := ctx.Catalog.Tutorials()
	if category != cli.CategoryAll {
		tutorials = ctx.Catalog.ByCategory(category)
	}

	result := ListResult{
		Category: category,
		Source:   string(ctx.CatalogSource),
		Items:    make([]ListItem, 0, len(tutorials)),
	}
	for _, t := range tutorials {
		result.Items = append(result.Items, ListItem{
			Key:      t.Key,
			Title:    t.Title,
			Category: t.Category,
			Steps:    len(t.Steps),
		})
	}
	result.Count = len(result.Items)

	outputFormat := cli.OutputFormatFlag(cmd)
	if cli.IsStructured(outputFormat) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}
	return outputListText(cmd, result)
}

func outputListText(cmd *cobra.Command, result ListResult) error {
	out := cmd.OutOrStdout()

	if result.Count == 0 {
		fmt.Fprintln(out, "No tutorials found.")
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("KEY", "TITLE", "CATEGORY", "STEPS")
	for _, item := range result.Items {
		table.Row(item.Key, cli.TruncateString(item.Title, 40), item.Category, strconv.Itoa(item.Steps))
	}
	table.Flush()

	fmt.Fprintf(out, "\n%d tutorial(s)", result.Count)
	if result.Source == string(files.SourceBuiltin) {
		fmt.Fprint(out, " (built-in)")
	}
	fmt.Fprintln(out)
	return nil
}
