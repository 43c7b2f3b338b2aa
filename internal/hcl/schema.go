package hcl

import "github.com/hashicorp/hcl/v2"

// pipelineFile is the decode target for one pipeline file.
type pipelineFile struct {
	Pipeline *pipelineBlock  `hcl:"pipeline,block"`
	Steps    []*pipelineStep `hcl:"step,block"`
}

// pipelineBlock represents the optional `pipeline` block carrying the
// pipeline-wide environment overlay and working directory. At most one may
// appear across all loaded files.
type pipelineBlock struct {
	Env     hcl.Expression `hcl:"env,optional"`
	Workdir hcl.Expression `hcl:"workdir,optional"`
}

// pipelineStep represents a `step` block. Attributes are kept as raw
// expressions so they can be evaluated against the host-environment eval
// context.
type pipelineStep struct {
	Name    string         `hcl:"name,label"`
	Command hcl.Expression `hcl:"command"`
	Args    hcl.Expression `hcl:"args,optional"`
	Env     hcl.Expression `hcl:"env,optional"`
	Dir     hcl.Expression `hcl:"dir,optional"`
}
