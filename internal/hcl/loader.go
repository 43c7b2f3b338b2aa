package hcl

import (
	"context"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/pipegate/internal/config"
	"github.com/vk/pipegate/internal/ctxlog"
	"github.com/vk/pipegate/internal/fsutil"
)

// Loader is the HCL implementation of config.Loader.
type Loader struct {
	environ []string
}

// NewLoader creates an HCL loader that interpolates from the current process
// environment.
func NewLoader() *Loader {
	return &Loader{environ: os.Environ()}
}

// Load finds and parses all .hcl files under path (or the single file at
// path) into a validated Pipeline. Files are processed in sorted order and
// step order within a file is preserved exactly as declared.
func (l *Loader) Load(ctx context.Context, path string) (*config.Pipeline, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading HCL pipeline.", "path", path)

	files, err := fsutil.FindFilesByExtensions(path, ".hcl")
	if err != nil {
		return nil, fmt.Errorf("failed to find pipeline files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .hcl pipeline files found in %s", path)
	}

	parser := hclparse.NewParser()
	evalCtx := hostEvalContext(l.environ)
	pipeline := &config.Pipeline{}
	havePipelineBlock := false

	for _, file := range files {
		if err := l.loadFile(parser, evalCtx, file, pipeline, &havePipelineBlock); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(pipeline); err != nil {
		return nil, err
	}

	logger.Debug("HCL pipeline loaded.", "files", len(files), "steps", len(pipeline.Steps))
	return pipeline, nil
}

// loadFile parses a single HCL file and folds its blocks into the pipeline.
func (l *Loader) loadFile(parser *hclparse.Parser, evalCtx *hcl.EvalContext, filePath string, pipeline *config.Pipeline, havePipelineBlock *bool) error {
	hclFile, diags := parser.ParseHCLFile(filePath)
	if diags.HasErrors() {
		return fmt.Errorf("failed to parse %s: %w", filePath, diags)
	}

	var parsed pipelineFile
	diags = gohcl.DecodeBody(hclFile.Body, nil, &parsed)
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode %s: %w", filePath, diags)
	}

	if parsed.Pipeline != nil {
		if *havePipelineBlock {
			return fmt.Errorf("duplicate pipeline block in %s", filePath)
		}
		*havePipelineBlock = true

		env, err := stringMapValue(parsed.Pipeline.Env, evalCtx, "pipeline env")
		if err != nil {
			return fmt.Errorf("invalid pipeline block in %s: %w", filePath, err)
		}
		workdir, err := stringValue(parsed.Pipeline.Workdir, evalCtx, "pipeline workdir")
		if err != nil {
			return fmt.Errorf("invalid pipeline block in %s: %w", filePath, err)
		}
		pipeline.Env = env
		pipeline.Workdir = workdir
	}

	for _, parsedStep := range parsed.Steps {
		step, err := l.translateStep(parsedStep, evalCtx)
		if err != nil {
			return fmt.Errorf("invalid step %q in %s: %w", parsedStep.Name, filePath, err)
		}
		pipeline.Steps = append(pipeline.Steps, step)
	}

	return nil
}

// translateStep converts a decoded step block into the agnostic model.
func (l *Loader) translateStep(s *pipelineStep, evalCtx *hcl.EvalContext) (*config.Step, error) {
	command, err := stringValue(s.Command, evalCtx, "command")
	if err != nil {
		return nil, err
	}
	args, err := stringListValue(s.Args, evalCtx, "args")
	if err != nil {
		return nil, err
	}
	env, err := stringMapValue(s.Env, evalCtx, "env")
	if err != nil {
		return nil, err
	}
	dir, err := stringValue(s.Dir, evalCtx, "dir")
	if err != nil {
		return nil, err
	}

	return &config.Step{
		Name:    s.Name,
		Command: command,
		Args:    args,
		Env:     env,
		Dir:     dir,
	}, nil
}
