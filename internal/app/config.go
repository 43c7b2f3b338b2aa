package app

import "errors"

// Config holds everything an App needs for one invocation.
type Config struct {
	// PipelinePath points at a pipeline file or a directory of pipeline files.
	PipelinePath string
	// EnvOverlay carries extra pipeline-wide environment overrides from the
	// command line. It wins over the pipeline file's own overlay; per-step
	// overlays still win over both.
	EnvOverlay map[string]string

	LogFormat string
	LogLevel  string
	// Quiet disables live mirroring of step output; captured streams still
	// end up in the report.
	Quiet bool
	// Summary prints a per-step report table after the run.
	Summary bool
}

// NewConfig validates a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.PipelinePath == "" {
		return nil, errors.New("PipelinePath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}
