// Package exec runs the external display utilities this tool wraps.
//
// All invocations are synchronous call-and-wait with no timeout or retry;
// the callers treat any failure as fatal for the invocation. Commands are
// invoked directly (no shell), so argument lists pass through verbatim.
package exec

import (
	"bytes"
	"fmt"
	"os/exec"

	"github.com/bogen85/xrandr-utils/internal/errors"
	"github.com/bogen85/xrandr-utils/internal/logger"
)

var log = logger.NewEnvLogger("[exec]")

// CaptureOutput runs a command and returns its standard output.
// Standard error is discarded. A non-zero exit is an error carrying the
// exit status, both in the message and as an ExitError in the chain.
func CaptureOutput(name string, args ...string) ([]byte, error) {
	log.Debug("running %s %v", name, args)

	var stdout bytes.Buffer
	command := exec.Command(name, args...)
	command.Stdout = &stdout

	if err := command.Run(); err != nil {
		return nil, runError(name, err)
	}

	return stdout.Bytes(), nil
}

// CaptureWithInput runs a command with input piped to its standard input
// and returns its standard output. Standard error is discarded.
func CaptureWithInput(name string, input []byte, args ...string) ([]byte, error) {
	log.Debug("running %s %v with %d bytes on stdin", name, args, len(input))

	var stdout bytes.Buffer
	command := exec.Command(name, args...)
	command.Stdin = bytes.NewReader(input)
	command.Stdout = &stdout

	if err := command.Run(); err != nil {
		return nil, runError(name, err)
	}

	return stdout.Bytes(), nil
}

// RunStatus runs a command for its exit status only. All output is
// discarded.
func RunStatus(name string, args ...string) error {
	log.Debug("running %s %v", name, args)

	command := exec.Command(name, args...)
	if err := command.Run(); err != nil {
		return runError(name, err)
	}

	return nil
}

// runError turns an os/exec failure into a structured error. Exit errors
// keep the exit status reachable via errors.GetExitCode; spawn failures
// get a PATH suggestion instead.
func runError(name string, err error) error {
	if exitErr, ok := err.(*exec.ExitError); ok {
		code := exitErr.ExitCode()
		return errors.WrapWithCode(errors.NewExitError(code), errors.ErrExec,
			fmt.Sprintf("%s exited with status %d", name, code),
			"")
	}
	return errors.WrapWithCode(err, errors.ErrExec,
		fmt.Sprintf("Couldn't run %s", name),
		fmt.Sprintf("Make sure %s is installed and on your PATH.", name))
}
