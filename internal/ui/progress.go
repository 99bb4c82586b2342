package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/schollz/progressbar/v3"

	"coverreport/internal/domain"
)

// ProgressBar tracks the toolchain stages
type ProgressBar struct {
	bar *progressbar.ProgressBar
}

// NewProgressBar creates a new progress bar for count stages written to stderr
func NewProgressBar(count int) *ProgressBar {
	return NewProgressBarWriter(count, os.Stderr)
}

// NewProgressBarWriter creates a new progress bar writing to w
func NewProgressBarWriter(count int, w io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(count,
		progressbar.OptionSetDescription(color.CyanString("Preparing")),
		progressbar.OptionSetWidth(30),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        color.CyanString("█"),
			SaucerHead:    color.CyanString("█"),
			SaucerPadding: "░",
			BarStart:      "│",
			BarEnd:        "│",
		}),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWriter(w),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(w, "\n")
		}),
		progressbar.OptionSetRenderBlankState(true),
	)

	return &ProgressBar{bar: bar}
}

// Start describes the stage that is about to run
func (p *ProgressBar) Start(stage domain.Stage) {
	p.bar.Describe(color.CyanString("Running %-8s", stage))
}

// Done advances the bar after a stage finished
func (p *ProgressBar) Done(stage domain.Stage, success bool) {
	if success {
		p.bar.Describe(color.GreenString("Finished %-7s", stage))
	} else {
		p.bar.Describe(color.RedString("Failed %-9s", stage))
	}
	p.bar.Add(1)
}

// Finish completes the progress bar
func (p *ProgressBar) Finish() {
	p.bar.Finish()
}
