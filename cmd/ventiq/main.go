package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ventiq/ventiq-terminal/cmd/commands"
	"github.com/ventiq/ventiq-terminal/internal/cli"
)

// Version is set during build with -ldflags
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "ventiq",
	Short: "Interactive tutorials for VentIQ Seller and VentIQ Admin",
	Long: `ventiq walks you through the VentIQ Seller app and the VentIQ Admin web
step by step, with a screenshot for every step. Run it without arguments to
pick a tutorial, or use the subcommands to list, inspect and serve them.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return cli.ApplyGlobalFlags(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return commands.RunTUI(cmd, "")
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of ventiq",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "ventiq version %s\n", version)
	},
}

func init() {
	cli.RegisterGlobalFlags(rootCmd)

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(commands.NewInitCommand())
	rootCmd.AddCommand(commands.NewWalkCommand())
	rootCmd.AddCommand(commands.NewListCommand())
	rootCmd.AddCommand(commands.NewShowCommand())
	rootCmd.AddCommand(commands.NewSearchCommand())
	rootCmd.AddCommand(commands.NewScreenshotCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewExportCommand())
	rootCmd.AddCommand(commands.NewProgressCommand())
	rootCmd.AddCommand(commands.NewServeCommand())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
