// Package executor runs a pipeline's steps strictly in order, stopping at
// the first failure. Step commands are opaque: the executor never interprets
// their output, only their exit status. Every failure becomes data in the
// returned Report rather than an error that unwinds past Run, so callers can
// inspect which step failed and why without catching anything.
package executor
