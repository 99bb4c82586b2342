package execution

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"coverreport/internal/config"
	"coverreport/internal/domain"
	"coverreport/internal/logging"
	"coverreport/internal/ui"
)

// Pipeline runs install, test and render in order, then removes the coverage profile.
//
//	Start → Install → Test → Render → Cleanup → {Success, Failure}
//
// A failing step jumps straight to Cleanup → Failure.
type Pipeline struct {
	config     *config.Config
	executor   Executor
	summarizer Summarizer
	progress   *ui.ProgressBar
}

// NewPipeline creates a new Pipeline. summarizer may be nil.
func NewPipeline(cfg *config.Config, executor Executor, summarizer Summarizer) *Pipeline {
	return &Pipeline{
		config:     cfg,
		executor:   executor,
		summarizer: summarizer,
	}
}

// SetProgress sets the progress bar for the pipeline
func (p *Pipeline) SetProgress(progress *ui.ProgressBar) {
	p.progress = progress
}

// Run executes the pipeline. The returned report is never nil.
func (p *Pipeline) Run(ctx context.Context) (*domain.Report, error) {
	startTime := time.Now()
	report := &domain.Report{Stages: []domain.Stage{domain.StageStart}}

	runErr := p.runSteps(ctx, report)

	report.Stages = append(report.Stages, domain.StageCleanup)
	p.cleanup()

	if p.progress != nil {
		p.progress.Finish()
	}

	report.Duration = time.Since(startTime)
	if runErr != nil {
		report.Final = domain.StageFailure
	} else {
		report.Final = domain.StageSuccess
	}
	report.Stages = append(report.Stages, report.Final)

	logging.Logger.Info("Pipeline finished", "final", report.Final, "duration", report.Duration, "error", runErr)

	return report, runErr
}

func (p *Pipeline) runSteps(ctx context.Context, report *domain.Report) error {
	for _, step := range p.config.Steps() {
		if ctx.Err() != nil {
			return fmt.Errorf("%w: before %s", domain.ErrInterrupted, step.Stage)
		}

		report.Stages = append(report.Stages, step.Stage)
		if p.progress != nil {
			p.progress.Start(step.Stage)
		}

		result := p.executor.Run(ctx, step)
		report.Results = append(report.Results, result)

		if p.progress != nil {
			p.progress.Done(step.Stage, result.Success)
		}

		if !result.Success {
			if ctx.Err() != nil {
				return fmt.Errorf("%w: during %s", domain.ErrInterrupted, step.Stage)
			}
			return fmt.Errorf("%w: %s %s: %v", domain.ErrToolchainFailed,
				step.Name, strings.Join(step.Args, " "), result.Error)
		}

		if step.Stage == domain.StageTest {
			report.Summary, report.SummaryErr = p.summarize()
		}
	}
	return nil
}

func (p *Pipeline) summarize() (*domain.CoverageSummary, error) {
	if p.summarizer == nil {
		return nil, nil
	}

	summary, err := p.summarizer.Summarize(p.config.ProfileFile)
	if err != nil {
		logging.Logger.Warn("Coverage summary unavailable", "profile", p.config.ProfileFile, "error", err)
		return nil, err
	}
	return summary, nil
}

// cleanup removes the coverage profile; a missing file is not an error
func (p *Pipeline) cleanup() {
	err := os.Remove(p.config.ProfileFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		logging.Logger.Warn("Failed to remove coverage profile", "profile", p.config.ProfileFile, "error", err)
	}
}
