// Package config defines the format-agnostic pipeline model and the Loader
// interface that format-specific front ends (HCL, YAML) implement. Keeping
// the model free of parser types lets the executor and the renderers stay
// ignorant of where the configuration came from.
package config
