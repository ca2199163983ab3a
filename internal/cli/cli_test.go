package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ventiq/ventiq-terminal/pkg/files"
	"github.com/ventiq/ventiq-terminal/pkg/models"
)

func TestOutputResults(t *testing.T) {
	data := struct {
		Key   string `json:"key" yaml:"key"`
		Steps int    `json:"steps" yaml:"steps"`
	}{Key: "venta", Steps: 4}

	tests := []struct {
		name     string
		format   string
		contains []string
		wantErr  bool
	}{
		{name: "json", format: "json", contains: []string{`"key": "venta"`, `"steps": 4`}},
		{name: "yaml", format: "yaml", contains: []string{"key: venta", "steps: 4"}},
		{name: "text", format: "text", contains: []string{"venta"}},
		{name: "unsupported", format: "xml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := OutputResults(&buf, tt.format, data)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, buf.String(), want)
			}
		})
	}
}

func TestTableFormatter(t *testing.T) {
	var buf bytes.Buffer
	table := NewTableFormatter(&buf)
	table.Header("KEY", "STEPS")
	table.Row("venta", "4")
	table.Flush()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "KEY"))
	assert.True(t, strings.HasPrefix(lines[1], "---"))
	assert.True(t, strings.HasPrefix(lines[2], "venta"))
}

func TestTruncateString(t *testing.T) {
	tests := []struct {
		input  string
		maxLen int
		want   string
	}{
		{"short", 10, "short"},
		{"Cómo realizar una venta", 10, "Cómo re..."},
		{"abcdef", 3, "abc"},
	}

	for _, tt := range tests {
		if got := TruncateString(tt.input, tt.maxLen); got != tt.want {
			t.Errorf("TruncateString(%q, %d) = %q, want %q", tt.input, tt.maxLen, got, tt.want)
		}
	}
}

func TestWrap(t *testing.T) {
	got := Wrap("uno dos tres cuatro", 10, "  ")
	for _, line := range strings.Split(got, "\n") {
		assert.True(t, strings.HasPrefix(line, "  "), "line %q is not indented", line)
	}
	assert.Contains(t, got, "cuatro")
}

func TestValidateOutputFormat(t *testing.T) {
	for _, f := range []string{"text", "json", "yaml"} {
		assert.NoError(t, ValidateOutputFormat(f))
	}
	assert.Error(t, ValidateOutputFormat("xml"))
}

func TestNormalizeCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"", CategoryAll, false},
		{"all", CategoryAll, false},
		{"Seller", models.CategorySeller, false},
		{"vendedor", models.CategorySeller, false},
		{"admins", models.CategoryAdmin, false},
		{"owner", "", true},
	}

	for _, tt := range tests {
		got, err := NormalizeCategory(tt.input)
		if tt.wantErr {
			assert.Error(t, err, tt.input)
			continue
		}
		assert.NoError(t, err, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestParseStepNumber(t *testing.T) {
	n, err := ParseStepNumber(" 3 ")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	_, err = ParseStepNumber("0")
	assert.Error(t, err)
	_, err = ParseStepNumber("tres")
	assert.Error(t, err)
}

func TestValidateStep(t *testing.T) {
	tutorial := &models.Tutorial{Key: "demo", Steps: []models.Step{{Title: "a"}, {Title: "b"}}}
	assert.NoError(t, ValidateStep(tutorial, 1))
	assert.NoError(t, ValidateStep(tutorial, 2))
	err := ValidateStep(tutorial, 3)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has 2 steps")
}

func TestConfirmFrom(t *testing.T) {
	defer SetGlobalFlags(false, false, false)
	SetGlobalFlags(true, false, false)

	tests := []struct {
		input      string
		defaultYes bool
		want       bool
	}{
		{"y\n", false, true},
		{"yes\n", false, true},
		{"n\n", true, false},
		{"\n", true, true},
		{"", false, false},
	}

	for _, tt := range tests {
		got, err := ConfirmFrom(strings.NewReader(tt.input), "Overwrite?", tt.defaultYes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}

	SetGlobalFlags(true, false, true)
	got, err := ConfirmFrom(strings.NewReader("n\n"), "Overwrite?", false)
	require.NoError(t, err)
	assert.True(t, got, "--yes skips the prompt")
}

func TestGlobalFlags(t *testing.T) {
	defer SetGlobalFlags(false, false, false)

	root := &cobra.Command{Use: "ventiq"}
	RegisterGlobalFlags(root)
	var format, project string
	child := &cobra.Command{
		Use: "child",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := ApplyGlobalFlags(cmd); err != nil {
				return err
			}
			format = OutputFormatFlag(cmd)
			project = ProjectRootFlag(cmd)
			return nil
		},
	}
	root.AddCommand(child)

	root.SetArgs([]string{"child", "-o", "json", "-C", "/tmp/x"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "json", format)
	assert.Equal(t, "/tmp/x", project)

	root.SetArgs([]string{"child", "-o", "xml"})
	assert.Error(t, root.Execute())

	bare := &cobra.Command{Use: "bare"}
	assert.Equal(t, "text", OutputFormatFlag(bare))
	assert.Equal(t, ".", ProjectRootFlag(bare))
}

func TestNewCommandContext(t *testing.T) {
	ctx, err := NewCommandContext(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, files.SourceBuiltin, ctx.CatalogSource)
	assert.Equal(t, 12, ctx.Catalog.Len())
	assert.Equal(t, "Next", ctx.Settings.Labels.Next)

	tutorial, err := ctx.FindTutorial("egresos")
	require.NoError(t, err)
	assert.Equal(t, "Manejo de Egresos", tutorial.Title)

	_, err = ctx.FindTutorial("missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: venta")

	c := ctx.Controller()
	require.True(t, c.StepTo("egresos", 2))
	state, _ := c.State()
	assert.Equal(t, "assets/images/images_tutorial_seller/extraccion_parcial_egreso.jpg", state.Screenshot)
}
