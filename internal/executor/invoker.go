package executor

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
)

// LaunchExitCode is the synthetic exit status recorded for a step whose
// command never started.
const LaunchExitCode = -1

// Invocation describes one external-process call: the sole boundary the
// executor crosses. The identity of the actual tools is configuration data,
// not executor logic.
type Invocation struct {
	Command string
	Args    []string
	// Env is the fully resolved environment in os.Environ form.
	Env []string
	Dir string
	// Stdout and Stderr, when non-nil, receive the respective stream live in
	// addition to capture.
	Stdout io.Writer
	Stderr io.Writer
}

// Invoker abstracts process invocation so tests can substitute a fake.
// A nil launchErr with a non-zero exit code means the command ran and
// failed; a non-nil launchErr means it never started.
type Invoker interface {
	Invoke(ctx context.Context, inv Invocation) (exitCode int, stdout, stderr []byte, launchErr error)
}

// OSInvoker is the production Invoker, backed by os/exec. The context is
// threaded into the process so an outer supervisor can cancel the run; the
// invoker itself imposes no timeout.
type OSInvoker struct{}

// Invoke runs the command to completion, capturing both streams separately.
func (OSInvoker) Invoke(ctx context.Context, inv Invocation) (int, []byte, []byte, error) {
	cmd := exec.CommandContext(ctx, inv.Command, inv.Args...)
	cmd.Env = inv.Env
	cmd.Dir = inv.Dir

	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	if inv.Stdout != nil {
		cmd.Stdout = io.MultiWriter(&outBuf, inv.Stdout)
	}
	if inv.Stderr != nil {
		cmd.Stderr = io.MultiWriter(&errBuf, inv.Stderr)
	}

	err := cmd.Run()
	if err == nil {
		return 0, outBuf.Bytes(), errBuf.Bytes(), nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), outBuf.Bytes(), errBuf.Bytes(), nil
	}

	// The command never ran at all.
	return LaunchExitCode, outBuf.Bytes(), errBuf.Bytes(), err
}
