package config

import (
	"errors"
	"fmt"
)

// Validate rejects a pipeline the executor must never see: an empty step
// list, unnamed steps, steps with no command, or duplicate step names.
func Validate(p *Pipeline) error {
	if p == nil || len(p.Steps) == 0 {
		return errors.New("pipeline has no steps")
	}

	seen := make(map[string]struct{}, len(p.Steps))
	for i, step := range p.Steps {
		if step.Name == "" {
			return fmt.Errorf("step %d has no name", i+1)
		}
		if step.Command == "" {
			return fmt.Errorf("step %q has no command", step.Name)
		}
		if _, dup := seen[step.Name]; dup {
			return fmt.Errorf("duplicate step name %q", step.Name)
		}
		seen[step.Name] = struct{}{}
	}

	return nil
}
