package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"coverreport/internal/cli"
	"coverreport/internal/cli/commands"
	"coverreport/internal/config"
	"coverreport/internal/ui"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	// Create root command
	rootCmd := &cobra.Command{
		Use:   "cover-report",
		Short: "Run a project's tests with coverage and open the HTML report",
		Long: `Locates a project under the workspace roots listed in GOPATH, runs go install,
go test with a coverage profile and go tool cover -html, then removes the profile.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	// Create initial config with defaults
	cfg := config.New()

	// Create flags struct (will be populated by command flags)
	var flags cli.Flags

	cmds := commands.NewCommands(cfg)
	cmds.Register(rootCmd, &flags, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		ui.NewFormatter(cfg).PrintFailure(err)
		stop()
		os.Exit(1)
	}
}
