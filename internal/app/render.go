package app

import (
	"fmt"
	"io"
	"time"

	"github.com/gookit/color"
	"github.com/vk/pipegate/internal/executor"
)

// renderSummary writes the human-facing per-step report table. It only reads
// the report; rendering never alters it.
func renderSummary(w io.Writer, report *executor.Report) {
	fmt.Fprintln(w)
	for _, res := range report.Results {
		mark := color.Green.Sprint("✔")
		if res.Failed() {
			mark = color.Red.Sprint("✘")
		}
		fmt.Fprintf(w, "%s %-24s exit=%-3d %s\n",
			mark, res.Name, res.ExitCode, res.Duration.Round(time.Millisecond))
	}

	if report.Success {
		fmt.Fprintf(w, "%s all %d steps passed\n", color.Green.Sprint("PASS"), len(report.Results))
	} else {
		fmt.Fprintf(w, "%s failed at step %q\n", color.Red.Sprint("FAIL"), report.FirstFailed)
	}
}
