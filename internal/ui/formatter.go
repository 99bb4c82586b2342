package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"coverreport/internal/config"
	"coverreport/internal/domain"
)

const fileColumnWidth = 52

// Formatter formats and displays output
type Formatter struct {
	config *config.Config
	out    io.Writer
	errOut io.Writer
}

// NewFormatter creates a new Formatter writing to stdout and stderr
func NewFormatter(cfg *config.Config) *Formatter {
	return NewFormatterWriters(cfg, color.Output, color.Error)
}

// NewFormatterWriters creates a new Formatter with explicit writers
func NewFormatterWriters(cfg *config.Config, out, errOut io.Writer) *Formatter {
	return &Formatter{
		config: cfg,
		out:    out,
		errOut: errOut,
	}
}

// PrintStepResult shows the captured output of a step.
// Output of failed steps goes to stderr; successful test output is echoed so coverage lines stay visible.
// Output that was streamed live is not repeated.
func (f *Formatter) PrintStepResult(result domain.StepResult) {
	output := strings.TrimRight(result.Output, "\n")
	if result.Streamed {
		output = ""
	}

	if !result.Success {
		fmt.Fprintln(f.errOut, color.RedString("✗ %s %s", result.Step.Name, strings.Join(result.Step.Args, " ")))
		if output != "" {
			fmt.Fprintln(f.errOut, output)
		}
		return
	}

	if result.Step.Stage == domain.StageTest && output != "" {
		fmt.Fprintln(f.out, output)
	}
}

// PrintCoverageSummary prints a per-file coverage table
func (f *Formatter) PrintCoverageSummary(summary *domain.CoverageSummary) {
	if summary == nil {
		return
	}

	if len(summary.Files) == 0 {
		fmt.Fprintln(f.out, color.YellowString("No coverage data recorded"))
		return
	}

	border := strings.Repeat("─", fileColumnWidth+2)
	fmt.Fprintln(f.out)
	fmt.Fprintln(f.out, color.CyanString("Coverage (mode: %s)", summary.Mode))
	fmt.Fprintf(f.out, "┌%s┬────────────┬──────────┐\n", border)
	fmt.Fprintf(f.out, "│ %-*s │ %-10s │ %-8s │\n", fileColumnWidth, "File", "Statements", "Coverage")
	fmt.Fprintf(f.out, "├%s┼────────────┼──────────┤\n", border)

	for _, file := range summary.Files {
		fmt.Fprintf(f.out, "│ %-*s │ %10d │ %s │\n",
			fileColumnWidth, truncateLeft(file.FileName, fileColumnWidth),
			file.Statements,
			PercentColor(file.Percent()).Sprintf("%7.1f%%", file.Percent()))
	}

	fmt.Fprintf(f.out, "├%s┼────────────┼──────────┤\n", border)
	fmt.Fprintf(f.out, "│ %-*s │ %10d │ %s │\n",
		fileColumnWidth, "Total",
		summary.Statements,
		PercentColor(summary.Percent()).Sprintf("%7.1f%%", summary.Percent()))
	fmt.Fprintf(f.out, "└%s┴────────────┴──────────┘\n", border)
}

// PrintWarning prints a non-fatal problem
func (f *Formatter) PrintWarning(format string, args ...interface{}) {
	fmt.Fprintln(f.errOut, color.YellowString(format, args...))
}

// PrintFailure prints the top-level message for err
func (f *Formatter) PrintFailure(err error) {
	fmt.Fprintln(f.errOut, color.RedString("%s", FailureMessage(err, f.config.EnvVar)))
}

// FailureMessage maps an error to the short message shown before exiting
func FailureMessage(err error, envVar string) string {
	switch {
	case errors.Is(err, domain.ErrMissingEnv):
		return fmt.Sprintf("Need to set %s", envVar)
	case errors.Is(err, domain.ErrProjectNotFound):
		return "Project not found"
	case errors.Is(err, domain.ErrInterrupted):
		return "Interrupted"
	case errors.Is(err, domain.ErrToolchainFailed):
		return "Errors during the unit test execution"
	default:
		return fmt.Sprintf("Error: %v", err)
	}
}

// PercentColor picks a colour for a coverage percentage
func PercentColor(pct float64) *color.Color {
	switch {
	case pct >= 80:
		return color.New(color.FgGreen)
	case pct >= 50:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgRed)
	}
}

// truncateLeft keeps the tail of s, which holds the file name
func truncateLeft(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	return "…" + string(runes[len(runes)-width+1:])
}
