package commands

import (
	"context"
	"fmt"
	"os"

	"coverreport/internal/config"
	"coverreport/internal/discovery"
	"coverreport/internal/execution"
	"coverreport/internal/logging"
	"coverreport/internal/ui"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// ReportCommand locates the project and runs the coverage pipeline
type ReportCommand struct {
	config    *config.Config
	pipeline  *execution.Pipeline
	formatter *ui.Formatter
	viewer    ui.Viewer
	progress  bool
}

// NewReportCommand creates a new ReportCommand
func NewReportCommand(
	cfg *config.Config,
	pipeline *execution.Pipeline,
	formatter *ui.Formatter,
	viewer ui.Viewer,
) *ReportCommand {
	return &ReportCommand{
		config:    cfg,
		pipeline:  pipeline,
		formatter: formatter,
		viewer:    viewer,
	}
}

// EnableProgress shows a stage progress bar on stderr while the toolchain runs
func (rc *ReportCommand) EnableProgress() {
	rc.progress = true
}

// Execute runs the command
func (rc *ReportCommand) Execute(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if _, err := logging.Initialize(rc.config.Flags.Debug, rc.config.Flags.DebugFile, logging.DefaultMaxLogFiles); err != nil {
		return err
	}

	if rc.config.Flags.EnvFile != "" {
		if err := godotenv.Load(rc.config.Flags.EnvFile); err != nil {
			return fmt.Errorf("load env file %s: %w", rc.config.Flags.EnvFile, err)
		}
	}

	roots, err := discovery.RequireEnv(rc.config.EnvVar)
	if err != nil {
		return err
	}

	locator := discovery.NewLocator(rc.config.GetProjectSubpath(), rc.config.Separator)
	logging.Logger.Debug("Searching workspace roots", "env", rc.config.EnvVar, "candidates", locator.Candidates(roots))

	projectPath := locator.Find(roots)
	if err := discovery.Switch(projectPath); err != nil {
		return err
	}
	logging.Logger.Info("Project located", "path", projectPath)

	rc.loadProjectEnv()

	if rc.progress {
		rc.pipeline.SetProgress(ui.NewProgressBar(len(rc.config.Steps())))
	}

	report, err := rc.pipeline.Run(ctx)
	for _, result := range report.Results {
		rc.formatter.PrintStepResult(result)
	}
	if err != nil {
		return err
	}

	if report.SummaryErr != nil {
		rc.formatter.PrintWarning("Coverage summary unavailable: %v", report.SummaryErr)
	} else if rc.config.Flags.Summary {
		rc.formatter.PrintCoverageSummary(report.Summary)
	}

	if rc.config.Flags.View && rc.viewer != nil && report.Summary != nil {
		return rc.viewer.View(report.Summary)
	}

	return nil
}

// loadProjectEnv loads the project's dotenv file, if any, without overriding existing variables
func (rc *ReportCommand) loadProjectEnv() {
	if _, err := os.Stat(config.DefaultProjectEnvFile); err != nil {
		return
	}
	if err := godotenv.Load(config.DefaultProjectEnvFile); err != nil {
		logging.Logger.Warn("Failed to load project env file", "error", err)
		return
	}
	logging.Logger.Debug("Loaded project env file", "file", config.DefaultProjectEnvFile)
}
