package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/pkg/files"
	"github.com/ventiq/ventiq-terminal/pkg/models"
	"github.com/ventiq/ventiq-terminal/pkg/walkthrough"
)

// RegisterGlobalFlags adds the flags every command understands
func RegisterGlobalFlags(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringP("output", "o", "text", "Output format (text, json, yaml)")
	flags.StringP("project", "C", ".", "Project root containing the .ventiq directory")
	flags.BoolP("quiet", "q", false, "Suppress informational output")
	flags.Bool("no-color", false, "Disable colored symbols in output")
	flags.BoolP("yes", "y", false, "Answer yes to confirmation prompts")
}

// ApplyGlobalFlags validates the global flags and stores the ones the
// print helpers read
func ApplyGlobalFlags(cmd *cobra.Command) error {
	q, _ := cmd.Flags().GetBool("quiet")
	nc, _ := cmd.Flags().GetBool("no-color")
	sc, _ := cmd.Flags().GetBool("yes")
	SetGlobalFlags(q, nc, sc)

	if format, err := cmd.Flags().GetString("output"); err == nil {
		return ValidateOutputFormat(format)
	}
	return nil
}

// OutputFormatFlag returns the -o value, "text" when the flag is absent
func OutputFormatFlag(cmd *cobra.Command) string {
	format, err := cmd.Flags().GetString("output")
	if err != nil || format == "" {
		return string(FormatText)
	}
	return format
}

// ProjectRootFlag returns the --project value, "." when the flag is absent
func ProjectRootFlag(cmd *cobra.Command) string {
	root, err := cmd.Flags().GetString("project")
	if err != nil || root == "" {
		return "."
	}
	return root
}

// CommandContext holds the data a command works on: settings, the
// tutorial catalog and the screenshot index of one project root
type CommandContext struct {
	ProjectRoot   string
	Settings      *models.Settings
	Catalog       *models.Catalog
	Screenshots   *models.ScreenshotIndex
	CatalogSource files.Source
}

// NewCommandContext loads everything under root. Missing project files
// fall back to the built-in tutorials; broken ones are errors.
func NewCommandContext(root string) (*CommandContext, error) {
	catalog, source, err := files.LoadCatalog(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load tutorials: %w", err)
	}

	index, _, err := files.LoadScreenshotIndex(root)
	if err != nil {
		return nil, fmt.Errorf("failed to load screenshot index: %w", err)
	}

	return &CommandContext{
		ProjectRoot:   root,
		Settings:      files.LoadSettings(root),
		Catalog:       catalog,
		Screenshots:   index,
		CatalogSource: source,
	}, nil
}

// NewCommandContextFromFlags is NewCommandContext for the --project root
func NewCommandContextFromFlags(cmd *cobra.Command) (*CommandContext, error) {
	return NewCommandContext(ProjectRootFlag(cmd))
}

// Resolver builds a screenshot resolver from the context's index and
// asset settings
func (c *CommandContext) Resolver() *walkthrough.ScreenshotResolver {
	return walkthrough.NewScreenshotResolver(c.Screenshots, c.Settings.Assets)
}

// Controller builds a walkthrough controller over the context's catalog
func (c *CommandContext) Controller(opts ...walkthrough.Option) *walkthrough.Controller {
	opts = append([]walkthrough.Option{walkthrough.WithLabels(c.Settings.Labels)}, opts...)
	return walkthrough.NewController(c.Catalog, c.Resolver(), opts...)
}

// FindTutorial looks up a tutorial by key
func (c *CommandContext) FindTutorial(key string) (*models.Tutorial, error) {
	t, ok := c.Catalog.Get(key)
	if !ok {
		return nil, fmt.Errorf("tutorial '%s' not found (available: %s)", key, strings.Join(c.Catalog.Keys(), ", "))
	}
	return t, nil
}
