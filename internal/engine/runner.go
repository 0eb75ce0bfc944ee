package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ExitError reports a container engine command that exited non-zero.
// The code is surfaced verbatim as the process exit code.
type ExitError struct {
	Code   int
	Stderr string
}

func (e *ExitError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("engine exited with code %d: %s", e.Code, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("engine exited with code %d", e.Code)
}

// Runner executes engine commands.
type Runner interface {
	// Output runs the command and returns its trimmed stdout.
	Output(ctx context.Context, name string, args ...string) (string, error)
	// Attach runs the command wired to the caller's stdin/stdout/stderr.
	Attach(ctx context.Context, name string, args ...string) error
}

// osRunner executes real commands via exec.CommandContext.
type osRunner struct{}

func (osRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", &ExitError{Code: exitErr.ExitCode(), Stderr: stderr.String()}
		}
		return "", fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	return strings.TrimSpace(stdout.String()), nil
}

func (osRunner) Attach(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}

	return nil
}
