package config

// Step is the format-agnostic representation of a single pipeline step: one
// named external-command invocation. A Step is immutable once loaded.
type Step struct {
	// Name identifies the step in logs and in the run report.
	Name string
	// Command is the executable to invoke. It is never run through a shell.
	Command string
	// Args is the ordered argument list passed to Command.
	Args []string
	// Env is the step's environment overlay. It is merged over the inherited
	// process environment and the pipeline-wide overlay; the step wins on
	// conflicting keys.
	Env map[string]string
	// Dir is the step's working directory. Empty means the pipeline's
	// working directory.
	Dir string
}

// Pipeline is the ordered sequence of steps for one run, plus the overlays
// that apply to every step. A Pipeline is constructed once by a Loader,
// executed once, and discarded.
type Pipeline struct {
	// Env is the pipeline-wide environment overlay, applied to every step
	// before that step's own overlay.
	Env map[string]string
	// Workdir is the default working directory for all steps. Empty means
	// the current directory of the invoking process.
	Workdir string
	// Steps run strictly in this order.
	Steps []*Step
}
