package execution

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"
	"time"

	"coverreport/internal/domain"
	"coverreport/internal/logging"
)

// Runner executes toolchain steps as child processes in the current working directory
type Runner struct {
	stream io.Writer
}

// NewRunner creates a new Runner that only captures output
func NewRunner() *Runner {
	return &Runner{}
}

// SetStream echoes the test step's output to w while it runs, in addition to capturing it
func (r *Runner) SetStream(w io.Writer) {
	r.stream = w
}

// Run executes the step and captures its combined output
func (r *Runner) Run(ctx context.Context, step domain.Step) domain.StepResult {
	cmd := exec.CommandContext(ctx, step.Name, step.Args...)
	cmd.Env = os.Environ()

	var buf bytes.Buffer
	var out io.Writer = &buf
	streamed := r.stream != nil && step.Stage == domain.StageTest
	if streamed {
		out = io.MultiWriter(&buf, r.stream)
	}
	cmd.Stdout = out
	cmd.Stderr = out

	logging.Logger.Debug("Running step", "stage", step.Stage, "name", step.Name, "args", step.Args, "streamed", streamed)

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	logging.Logger.Debug("Step finished", "stage", step.Stage, "duration", duration, "error", err)

	return domain.StepResult{
		Step:     step,
		Success:  err == nil,
		Output:   buf.String(),
		Streamed: streamed,
		Error:    err,
		Duration: duration,
	}
}
