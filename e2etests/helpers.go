package e2etests

import (
	"fmt"
	"strings"
)

// TestCase defines a named e2e scenario and the transcript it must produce.
type TestCase struct {
	Name string
	Fn   func(r *Runner, sandbox string) (string, error)
	Want string
}

// section writes a section header and trimmed content to the builder.
func section(out *strings.Builder, label string, content string) {
	out.WriteString("=== ")
	out.WriteString(label)
	out.WriteString(" ===\n")
	out.WriteString(strings.TrimSpace(content))
	out.WriteString("\n\n")
}

// sectionExitCode writes a section with just an exit code.
func sectionExitCode(out *strings.Builder, label string, exitCode int) {
	out.WriteString("=== ")
	out.WriteString(label)
	out.WriteString(" ===\n")
	out.WriteString(fmt.Sprintf("EXIT_CODE: %d", exitCode))
	out.WriteString("\n\n")
}

// mustRun runs a command and returns the result, failing the test case on error.
func mustRun(r *Runner, sandbox string, args ...string) (RunResult, error) {
	result := r.Run(sandbox, args...)
	if result.ExitCode != 0 {
		return result, fmt.Errorf("command %v failed (exit %d): %s", args, result.ExitCode, result.Stderr)
	}
	return result, nil
}

// runSections runs each command in order and records its stdout.
func runSections(r *Runner, sandbox string, steps ...[]string) (string, error) {
	var out strings.Builder
	for _, args := range steps {
		result, err := mustRun(r, sandbox, args...)
		if err != nil {
			return "", err
		}
		section(&out, strings.Join(args, " "), result.Stdout)
	}
	return out.String(), nil
}

// lineDiff produces a simple line-by-line diff between two strings.
func lineDiff(expected, actual string) string {
	expLines := strings.Split(expected, "\n")
	actLines := strings.Split(actual, "\n")

	var b strings.Builder
	maxLines := len(expLines)
	if len(actLines) > maxLines {
		maxLines = len(actLines)
	}

	for i := 0; i < maxLines; i++ {
		expLine := ""
		actLine := ""
		if i < len(expLines) {
			expLine = expLines[i]
		}
		if i < len(actLines) {
			actLine = actLines[i]
		}

		if expLine != actLine {
			b.WriteString(fmt.Sprintf("line %d:\n  expected: %q\n  actual:   %q\n", i+1, expLine, actLine))
		}
	}

	if len(expLines) != len(actLines) {
		b.WriteString(fmt.Sprintf("\nexpected %d lines, got %d lines\n", len(expLines), len(actLines)))
	}

	return b.String()
}
