package e2etests

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Runner executes botkit commands against a sandbox directory.
type Runner struct {
	Cmd string // path to botkit binary
}

// SetupSandbox creates an empty directory for one test case. Commands run
// inside it, so its options.properties and embeds/ are the ones used.
func (r *Runner) SetupSandbox() (string, error) {
	dir, err := os.MkdirTemp("", "botkit-e2e-*")
	if err != nil {
		return "", fmt.Errorf("setup sandbox failed: %w", err)
	}
	return dir, nil
}

// TeardownSandbox removes a sandbox directory.
func (r *Runner) TeardownSandbox(path string) error {
	return os.RemoveAll(path)
}

// RunResult holds the output of a command execution.
type RunResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes botkit in the sandbox with the given arguments. The config
// path is pinned to the sandbox and the token override is cleared.
func (r *Runner) Run(sandbox string, args ...string) RunResult {
	cmd := exec.Command(r.Cmd, args...)
	cmd.Dir = sandbox
	cmd.Env = append(os.Environ(),
		"BOTKIT_CONFIG="+filepath.Join(sandbox, "options.properties"),
		"BOTKIT_TOKEN=",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			exitCode = -1
		}
	}

	return RunResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}
