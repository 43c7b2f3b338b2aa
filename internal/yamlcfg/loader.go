// Package yamlcfg is the YAML front end for pipeline configuration. It
// decodes the same model as the HCL front end, for projects that keep their
// pipeline next to other YAML tooling config.
package yamlcfg

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/vk/pipegate/internal/config"
	"github.com/vk/pipegate/internal/ctxlog"
	"github.com/vk/pipegate/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// yamlStep mirrors config.Step for decoding.
type yamlStep struct {
	Name    string            `yaml:"name"`
	Command string            `yaml:"command"`
	Args    []string          `yaml:"args"`
	Env     map[string]string `yaml:"env"`
	Dir     string            `yaml:"dir"`
}

// yamlFile is the decode target for one pipeline file.
type yamlFile struct {
	Env     map[string]string `yaml:"env"`
	Workdir string            `yaml:"workdir"`
	Steps   []yamlStep        `yaml:"steps"`
}

// Loader is the YAML implementation of config.Loader.
type Loader struct{}

// NewLoader creates a YAML loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load finds and parses all .yml/.yaml files under path (or the single file
// at path) into a validated Pipeline. Unknown keys are rejected so that a
// typo fails the load instead of silently dropping configuration.
func (l *Loader) Load(ctx context.Context, path string) (*config.Pipeline, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading YAML pipeline.", "path", path)

	files, err := fsutil.FindFilesByExtensions(path, ".yml", ".yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to find pipeline files in %s: %w", path, err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no .yml or .yaml pipeline files found in %s", path)
	}

	pipeline := &config.Pipeline{}
	for _, file := range files {
		if err := loadFile(file, pipeline); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(pipeline); err != nil {
		return nil, err
	}

	logger.Debug("YAML pipeline loaded.", "files", len(files), "steps", len(pipeline.Steps))
	return pipeline, nil
}

// loadFile decodes a single YAML file and folds it into the pipeline.
// Pipeline-wide settings from later files win key-by-key; steps append in
// file order.
func loadFile(filePath string, pipeline *config.Pipeline) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filePath, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var parsed yamlFile
	if err := dec.Decode(&parsed); err != nil {
		return fmt.Errorf("failed to decode %s: %w", filePath, err)
	}

	if len(parsed.Env) > 0 {
		if pipeline.Env == nil {
			pipeline.Env = make(map[string]string, len(parsed.Env))
		}
		for k, v := range parsed.Env {
			pipeline.Env[k] = v
		}
	}
	if parsed.Workdir != "" {
		pipeline.Workdir = parsed.Workdir
	}

	for _, s := range parsed.Steps {
		pipeline.Steps = append(pipeline.Steps, &config.Step{
			Name:    s.Name,
			Command: s.Command,
			Args:    s.Args,
			Env:     s.Env,
			Dir:     s.Dir,
		})
	}

	return nil
}
