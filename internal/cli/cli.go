package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/pipegate/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// envFlag collects repeatable -env KEY=VALUE flags into an overlay map.
type envFlag map[string]string

func (f envFlag) String() string {
	pairs := make([]string, 0, len(f))
	for k, v := range f {
		pairs = append(pairs, k+"="+v)
	}
	return strings.Join(pairs, ",")
}

func (f envFlag) Set(s string) error {
	k, v, ok := strings.Cut(s, "=")
	if !ok || k == "" {
		return fmt.Errorf("must be KEY=VALUE, got %q", s)
	}
	f[k] = v
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("pipegate", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
pipegate - a sequential build-gate pipeline runner.

Runs a fixed list of named steps in order, stops at the first failure, and
exits non-zero unless every step passed.

Usage:
  pipegate [options] [PIPELINE_PATH]

Arguments:
  PIPELINE_PATH
    Path to a pipeline file (.hcl, .yml, .yaml) or a directory of .hcl files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var pipelinePath string
	flagSet.StringVar(&pipelinePath, "pipeline", "", "Path to the pipeline file or directory.")
	flagSet.StringVar(&pipelinePath, "p", "", "Path to the pipeline file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	quietFlag := flagSet.Bool("quiet", false, "Do not mirror step output live; only the report sees it.")
	summaryFlag := flagSet.Bool("summary", true, "Print a per-step summary table after the run.")
	overlay := envFlag{}
	flagSet.Var(overlay, "env", "Pipeline-wide environment override as KEY=VALUE. Repeatable.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := pipelinePath
	if path == "" && flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Pipeline path determined.", "path", path)

	if path == "" {
		slog.Debug("No pipeline path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		PipelinePath: path,
		EnvOverlay:   overlay,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		Quiet:        *quietFlag,
		Summary:      *summaryFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.")
	return config, false, nil
}
