package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/vk/pipegate/internal/config"
	"github.com/vk/pipegate/internal/ctxlog"
	"github.com/vk/pipegate/internal/executor"
	hclcfg "github.com/vk/pipegate/internal/hcl"
	"github.com/vk/pipegate/internal/yamlcfg"
)

// App encapsulates one pipeline invocation: configuration, logger, and the
// loaded pipeline.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	pipeline *config.Pipeline
	report   *executor.Report
}

// LoaderFor picks a configuration front end by file extension. Directories
// get the HCL loader, the primary format.
func LoaderFor(path string) config.Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return yamlcfg.NewLoader()
	default:
		return hclcfg.NewLoader()
	}
}

// NewApp constructs an App and loads its pipeline through the given loader.
// A failure to load is a configuration error: the executor is never handed
// an invalid pipeline.
func NewApp(ctx context.Context, outW io.Writer, cfg *Config, loader config.Loader) (*App, error) {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, outW)
	ctx = ctxlog.WithLogger(ctx, logger)
	logger.Debug("Logger configured successfully.")

	pipeline, err := loader.Load(ctx, cfg.PipelinePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load pipeline: %w", err)
	}
	logger.Debug("Pipeline loaded.", "steps", len(pipeline.Steps))

	// Fold command-line overrides into the pipeline-wide overlay. The CLI
	// wins over the file; per-step overlays still win over both. The merge
	// builds a fresh map: the loaded pipeline stays immutable.
	if len(cfg.EnvOverlay) > 0 {
		env := make(map[string]string, len(pipeline.Env)+len(cfg.EnvOverlay))
		for k, v := range pipeline.Env {
			env[k] = v
		}
		for k, v := range cfg.EnvOverlay {
			env[k] = v
		}
		merged := *pipeline
		merged.Env = env
		pipeline = &merged
		logger.Debug("Applied command-line environment overrides.", "count", len(cfg.EnvOverlay))
	}

	return &App{
		outW:     outW,
		logger:   logger,
		config:   cfg,
		pipeline: pipeline,
	}, nil
}

// Pipeline returns the loaded pipeline. This is primarily for testing.
func (a *App) Pipeline() *config.Pipeline {
	return a.pipeline
}
