package app

import (
	"context"
	"fmt"

	"github.com/vk/pipegate/internal/ctxlog"
	"github.com/vk/pipegate/internal/executor"
)

// Run executes the loaded pipeline and renders its report. A pipeline
// failure is an ordinary outcome: it is rendered, and the returned error
// names the first failing step so the caller can map it to an exit code.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Info("🚀 Starting pipeline run.", "steps", len(a.pipeline.Steps))

	opts := executor.Options{}
	if !a.config.Quiet {
		opts.Stdout = a.outW
		opts.Stderr = a.outW
	}

	report, err := executor.New(opts).Run(ctx, a.pipeline)
	if err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	a.report = report

	if a.config.Summary {
		renderSummary(a.outW, report)
	}

	if !report.Success {
		if res := report.FirstFailure(); res != nil && a.config.Quiet && len(res.Stderr) > 0 {
			// With mirroring off the user has seen nothing yet; surface the
			// failing step's captured error output verbatim.
			fmt.Fprintf(a.outW, "%s", res.Stderr)
		}
		a.logger.Error("🏁 Pipeline failed.", "step", report.FirstFailed)
		return fmt.Errorf("pipeline failed at step %q", report.FirstFailed)
	}

	a.logger.Info("🏁 Pipeline finished successfully.")
	return nil
}

// Report returns the report of the last Run. This is primarily for testing.
func (a *App) Report() *executor.Report {
	return a.report
}
