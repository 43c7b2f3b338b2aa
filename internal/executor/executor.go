package executor

import (
	"context"
	"errors"
	"io"
	"os"
	"time"

	"github.com/vk/pipegate/internal/config"
	"github.com/vk/pipegate/internal/ctxlog"
)

// Options configures an Executor.
type Options struct {
	// Invoker performs the process invocations. Nil means OSInvoker.
	Invoker Invoker
	// Stdout and Stderr, when non-nil, mirror step output live in addition
	// to the per-step capture.
	Stdout io.Writer
	Stderr io.Writer
	// Environ is the inherited base environment. Nil means os.Environ.
	Environ []string
}

// Executor runs pipelines. It is stateless across runs and safe to reuse,
// though each Pipeline is expected to be executed exactly once.
type Executor struct {
	invoker Invoker
	stdout  io.Writer
	stderr  io.Writer
	environ []string
}

// New creates an Executor with the given options.
func New(opts Options) *Executor {
	e := &Executor{
		invoker: opts.Invoker,
		stdout:  opts.Stdout,
		stderr:  opts.Stderr,
		environ: opts.Environ,
	}
	if e.invoker == nil {
		e.invoker = OSInvoker{}
	}
	if e.environ == nil {
		e.environ = os.Environ()
	}
	return e
}

// Run executes the pipeline's steps strictly in order, stopping at the first
// failure. Steps after the first failure are never attempted, so the
// Report's results are always a strict prefix of the pipeline's steps.
// Every step failure, launch failures included, is recorded in the Report;
// Run itself returns an error only when no meaningful Report can exist.
func (e *Executor) Run(ctx context.Context, pipeline *config.Pipeline) (*Report, error) {
	if pipeline == nil {
		return nil, errors.New("executor: nil pipeline")
	}

	logger := ctxlog.FromContext(ctx)
	report := &Report{Results: make([]*StepResult, 0, len(pipeline.Steps))}

	for _, step := range pipeline.Steps {
		stepLogger := logger.With("step", step.Name)
		stepLogger.Info("▶️ Starting step", "command", step.Command)

		result := e.runStep(ctx, pipeline, step)
		report.Results = append(report.Results, result)

		if result.Failed() {
			report.FirstFailed = step.Name
			if result.LaunchErr != nil {
				stepLogger.Error("💥 Step could not be launched", "error", result.LaunchErr)
			} else {
				stepLogger.Error("❌ Step failed", "exit_code", result.ExitCode, "duration", result.Duration)
			}
			return report, nil
		}
		stepLogger.Info("✅ Step finished", "duration", result.Duration)
	}

	report.Success = true
	return report, nil
}

// runStep resolves the step's effective environment and working directory,
// invokes the command, and records the outcome.
func (e *Executor) runStep(ctx context.Context, pipeline *config.Pipeline, step *config.Step) *StepResult {
	dir := step.Dir
	if dir == "" {
		dir = pipeline.Workdir
	}

	inv := Invocation{
		Command: step.Command,
		Args:    step.Args,
		Env:     mergeEnviron(e.environ, pipeline.Env, step.Env),
		Dir:     dir,
		Stdout:  e.stdout,
		Stderr:  e.stderr,
	}

	start := time.Now()
	code, stdout, stderr, launchErr := e.invoker.Invoke(ctx, inv)
	result := &StepResult{
		Name:      step.Name,
		ExitCode:  code,
		Stdout:    stdout,
		Stderr:    stderr,
		Duration:  time.Since(start),
		LaunchErr: launchErr,
	}

	if launchErr != nil {
		// A step that cannot be launched is treated identically to one that
		// exited non-zero: synthetic failing status, launch error captured
		// in place of the stderr the command never produced.
		result.ExitCode = LaunchExitCode
		result.Stderr = []byte(launchErr.Error())
	}

	return result
}
