package config

import "context"

// Loader is the interface for a format-specific pipeline loader.
// Implementations translate their native file format into the agnostic model,
// preserving step order exactly as declared, and must reject anything
// Validate would reject: the executor never receives an invalid Pipeline.
type Loader interface {
	// Load reads pipeline configuration from a file or a directory of files
	// and returns the validated model.
	Load(ctx context.Context, path string) (*Pipeline, error)
}
