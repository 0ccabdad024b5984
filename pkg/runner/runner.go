// Package runner invokes the external pre-commit executable. Its output is
// captured and passed back as opaque text; failures here are never fatal to
// configuration generation, which has already happened by the time hooks run.
package runner

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

const binaryName = "pre-commit"

// ErrNotInstalled is returned when the pre-commit binary is not on PATH.
var ErrNotInstalled = errors.New("pre-commit is not installed")

// Install runs "pre-commit install" in dir and returns the combined output.
func Install(dir string) (string, error) {
	return run(dir, "install")
}

// RunAllFiles runs "pre-commit run --all-files" in dir and returns the
// combined output. A non-zero exit (hooks failed) is reported as an error
// alongside whatever the hooks printed.
func RunAllFiles(dir string) (string, error) {
	return run(dir, "run", "--all-files")
}

func run(dir string, args ...string) (string, error) {
	cmd := exec.Command(binaryName, args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		var execErr *exec.Error
		if errors.As(err, &execErr) && errors.Is(execErr.Err, exec.ErrNotFound) {
			return "", ErrNotInstalled
		}
		return string(out), fmt.Errorf("pre-commit %s failed: %w", strings.Join(args, " "), err)
	}
	return string(out), nil
}
