package main

import (
	"io"
	"os/exec"

	"github.com/pkg/errors"
	"github.com/segmentio/textio"
)

// runInstaller invokes `<installer> install -r <file> [extraArgs...]` and
// blocks until it terminates. The child's output is streamed to the operator,
// slightly indented so it reads apart from our own messages. A non-zero exit
// is reported as InstallationFailedError.
func runInstaller(installer, requirementsFile string, extraArgs []string, stdout, stderr io.Writer) error {
	cmdArgs := append([]string{"install", "-r", requirementsFile}, extraArgs...)
	cmd := exec.Command(installer, cmdArgs...)

	prefixedOut := textio.NewPrefixWriter(stdout, "  ")
	prefixedErr := textio.NewPrefixWriter(stderr, "  ")
	defer prefixedOut.Flush()
	defer prefixedErr.Flush()
	cmd.Stdout = prefixedOut
	cmd.Stderr = prefixedErr

	err := cmd.Run()
	if exitErr, ok := err.(*exec.ExitError); ok {
		return InstallationFailedError{ExitStatus: exitErr.ExitCode()}
	}
	if err != nil {
		return errors.Wrapf(err, "could not run %s", installer)
	}
	return nil
}
