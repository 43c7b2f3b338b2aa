package executor

import "time"

// StepResult records the outcome of one attempted step. It is immutable once
// the step has completed.
type StepResult struct {
	// Name is the step's identity from the pipeline definition.
	Name string
	// ExitCode is the command's exit status, or LaunchExitCode when the
	// command never started.
	ExitCode int
	// Stdout and Stderr hold the two streams separately, never interleaved.
	// For a launch failure, Stderr carries the launch error text in place of
	// output the command never produced.
	Stdout []byte
	Stderr []byte
	// Duration is the wall-clock time from invocation to termination.
	Duration time.Duration
	// LaunchErr is set when the command could not be started at all
	// (missing executable, permission denied). The step still counts as
	// failed, with the same pipeline consequences as a non-zero exit.
	LaunchErr error
}

// Failed reports whether this step terminated the pipeline.
func (r *StepResult) Failed() bool {
	return r.ExitCode != 0
}

// Report is the structured outcome of one pipeline run. Results are always a
// strict prefix of the pipeline's steps: nothing after the first failure is
// ever attempted.
type Report struct {
	// Results holds one entry per attempted step, in execution order.
	Results []*StepResult
	// Success is true only if every attempted step succeeded, which implies
	// every step was attempted.
	Success bool
	// FirstFailed names the first failing step. Empty on success.
	FirstFailed string
}

// FirstFailure returns the result of the first failing step, or nil when the
// run succeeded.
func (r *Report) FirstFailure() *StepResult {
	if r.Success || len(r.Results) == 0 {
		return nil
	}
	return r.Results[len(r.Results)-1]
}
