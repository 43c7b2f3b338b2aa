// Package hcl is the HCL front end for pipeline configuration. It parses
// `pipeline` and `step` blocks into the format-agnostic config model.
// Attribute values are HCL expressions evaluated against an eval context
// that exposes the host environment as the `env` object, so a pipeline file
// can interpolate values like env.HOME without the executor ever touching
// ambient process state.
package hcl
