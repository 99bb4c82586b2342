package commands

import (
	"coverreport/internal/cli"
	"coverreport/internal/config"
	"coverreport/internal/coverage"
	"coverreport/internal/execution"
	"coverreport/internal/ui"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// Commands holds all CLI commands
type Commands struct {
	Report *ReportCommand
}

// NewCommands creates all commands with dependencies
func NewCommands(cfg *config.Config) *Commands {
	runner := execution.NewRunner()
	runner.SetStream(color.Output)
	parser := coverage.NewParser()
	pipeline := execution.NewPipeline(cfg, runner, parser)
	formatter := ui.NewFormatter(cfg)
	viewer := ui.NewCoverageViewer()

	report := NewReportCommand(cfg, pipeline, formatter, viewer)
	report.EnableProgress()

	return &Commands{
		Report: report,
	}
}

// Register wires the report command into the root command. The tool takes no positional arguments.
func (c *Commands) Register(rootCmd *cobra.Command, flags *cli.Flags, cfg *config.Config) {
	rootCmd.Args = cobra.NoArgs
	rootCmd.RunE = c.Report.Execute
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		// Update config with flags after parsing
		cfg.Apply(flags.ToConfigFlags())
		return nil
	}

	rootCmd.Flags().StringVarP(&flags.ImportPath, "import-path", "i", config.DefaultImportPath, "Import path of the project, looked up under <root>/src")
	rootCmd.Flags().StringVar(&flags.EnvVar, "env-var", config.DefaultEnvVar, "Environment variable holding the workspace roots")
	rootCmd.Flags().StringVarP(&flags.Separator, "separator", "s", "", "Separator between workspace roots (default: platform list separator)")
	rootCmd.Flags().StringVarP(&flags.Profile, "profile", "p", config.DefaultProfileFile, "Name of the transient coverage profile")
	rootCmd.Flags().StringVar(&flags.GoBinary, "go", config.DefaultGoBinary, "Go toolchain binary")
	rootCmd.Flags().StringVarP(&flags.HTMLOut, "html-out", "o", "", "Write the HTML report to a file instead of opening a browser")
	rootCmd.Flags().BoolVar(&flags.Summary, "summary", true, "Print a per-file coverage table")
	rootCmd.Flags().BoolVar(&flags.View, "view", false, "Browse per-file coverage interactively after the report")
	rootCmd.Flags().StringVar(&flags.EnvFile, "env-file", "", "Load environment variables from a dotenv file before starting")
	rootCmd.Flags().BoolVar(&flags.Debug, "debug", false, "Write debug logs")
	rootCmd.Flags().StringVar(&flags.DebugFile, "debug-file", "", "Write debug logs to this file")
}
