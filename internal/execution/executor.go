package execution

import (
	"context"

	"coverreport/internal/domain"
)

// Executor runs a single toolchain step
type Executor interface {
	Run(ctx context.Context, step domain.Step) domain.StepResult
}

// Summarizer turns a coverage profile into a summary
type Summarizer interface {
	Summarize(path string) (*domain.CoverageSummary, error)
}
