// Package app wires one pipeline invocation together: it validates the
// application configuration, builds an isolated logger, loads the pipeline
// through a format-specific loader, runs the executor, and renders the
// resulting report.
package app
