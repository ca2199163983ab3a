package commands

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/internal/cli"
	"github.com/ventiq/ventiq-terminal/pkg/search"
)

// SearchResult represents the output structure for search command
type SearchResult struct {
	Query   string          `json:"query" yaml:"query"`
	Results []search.Result `json:"results" yaml:"results"`
	Count   int             `json:"count" yaml:"count"`
}

// NewSearchCommand creates the search command
func NewSearchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Search tutorials",
		Long: `Search tutorial titles and step text. Matching ignores case and
accents.

Query syntax:
  word               - title or any step text contains word
  "a phrase"         - exact phrase
  title:word         - tutorial title only
  step:word          - step titles only
  key:prefix         - tutorial key
  category:seller    - seller or admin
  NOT, AND, OR       - combine terms (AND is implied)

Examples:
  # Tutorials about shifts
  ventiq search turno

  # Admin tutorials mentioning zones
  ventiq search category:admin zona

  # Everything about closing except the seller app
  ventiq search cierre NOT category:seller`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}

	return cmd
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx, err := cli.NewCommandContextFromFlags(cmd)
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results, err := search.NewEngine(ctx.Catalog).Search(query)
	if err != nil {
		return err
	}

	result := SearchResult{Query: query, Results: results, Count: len(results)}

	outputFormat := cli.OutputFormatFlag(cmd)
	if cli.IsStructured(outputFormat) {
		return cli.OutputResults(cmd.OutOrStdout(), outputFormat, result)
	}

	out := cmd.OutOrStdout()
	if result.Count == 0 {
		fmt.Fprintf(out, "No tutorials match %q\n", query)
		return nil
	}

	table := cli.NewTableFormatter(out)
	table.Header("KEY", "TITLE", "CATEGORY", "STEPS")
	for _, r := range results {
		table.Row(r.Key, cli.TruncateString(r.Title, 40), r.Category, formatSteps(r.Steps))
	}
	table.Flush()
	fmt.Fprintf(out, "\n%d tutorial(s)\n", result.Count)
	return nil
}

func formatSteps(steps []int) string {
	if len(steps) == 0 {
		return "-"
	}
	parts := make([]string, len(steps))
	for i, n := range steps {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}
