package domain

import "time"

// Stage is a state of the toolchain pipeline
type Stage string

const (
	StageStart   Stage = "start"
	StageInstall Stage = "install"
	StageTest    Stage = "test"
	StageRender  Stage = "render"
	StageCleanup Stage = "cleanup"
	StageSuccess Stage = "success"
	StageFailure Stage = "failure"
)

// Step describes a single external toolchain invocation
type Step struct {
	Stage Stage    // Pipeline stage this step belongs to
	Name  string   // Binary to execute
	Args  []string // Arguments passed to the binary
}

// StepResult represents the result of executing a step
type StepResult struct {
	Step     Step          // Step that was executed
	Success  bool          // Whether the command exited with status 0
	Output   string        // Combined stdout/stderr
	Streamed bool          // Output was already shown while the step ran
	Error    error         // Error if execution failed
	Duration time.Duration // Time taken to execute
}

// Report is the outcome of one pipeline run
type Report struct {
	Stages   []Stage
	Results  []StepResult
	Summary  *CoverageSummary
	Final    Stage
	Duration time.Duration

	// SummaryErr is set when the profile could not be read; it does not fail the run
	SummaryErr error
}

// Failed returns the first unsuccessful step result, if any
func (r *Report) Failed() *StepResult {
	for i := range r.Results {
		if !r.Results[i].Success {
			return &r.Results[i]
		}
	}
	return nil
}
