package engine

import (
	"context"
	"fmt"
	"strings"
)

// RunOptions specifies container run parameters.
type RunOptions struct {
	// Image is the image reference (e.g., "pydock-ds:latest")
	Image string

	// Name is the container name; empty means engine-assigned
	Name string

	// Remove adds --rm so the container is discarded on exit
	Remove bool

	// Interactive attaches a TTY (-it)
	Interactive bool

	// User is the uid or username to run as inside the container
	User string

	// Hostname sets the container hostname
	Hostname string

	// Volumes are bind mounts in "host:container" form
	Volumes []string

	// WorkDir is the working directory inside the container
	WorkDir string

	// Cmd is the command and arguments to run
	Cmd []string
}

// Engine invokes a container engine (docker or podman) as an opaque
// command-line tool. Only exit status and the few documented outputs
// (commit IDs, image listings) are interpreted.
type Engine struct {
	runtime string
	sudo    bool
	runner  Runner
}

// New creates an Engine for the given runtime binary.
// Use DetectRuntime() to find an available runtime first.
func New(runtime string, sudo bool) *Engine {
	return &Engine{runtime: runtime, sudo: sudo, runner: osRunner{}}
}

// NewWithRunner creates an Engine with a custom Runner. Intended for tests.
func NewWithRunner(runtime string, sudo bool, runner Runner) *Engine {
	return &Engine{runtime: runtime, sudo: sudo, runner: runner}
}

// Runtime returns the engine binary name ("docker" or "podman").
func (e *Engine) Runtime() string {
	return e.runtime
}

// command applies the optional sudo prefix and returns the binary
// plus full argument list to execute.
func (e *Engine) command(args []string) (string, []string) {
	if e.sudo {
		return "sudo", append([]string{e.runtime}, args...)
	}
	return e.runtime, args
}

// Build builds an image from a dockerfile, streaming engine output
// to the caller's terminal.
func (e *Engine) Build(ctx context.Context, tag, dockerfile, contextDir string) error {
	bin, args := e.command([]string{"build", "-t", tag, "-f", dockerfile, contextDir})
	return e.runner.Attach(ctx, bin, args...)
}

// Run starts a container with the given options, attached to the
// caller's stdio, and blocks until it exits.
func (e *Engine) Run(ctx context.Context, opts RunOptions) error {
	args := []string{"run"}

	if opts.Remove {
		args = append(args, "--rm")
	}
	if opts.Interactive {
		args = append(args, "-it")
	}
	if opts.Name != "" {
		args = append(args, "--name", opts.Name)
	}
	if opts.User != "" {
		args = append(args, "--user", opts.User)
	}
	if opts.Hostname != "" {
		args = append(args, "--hostname", opts.Hostname)
	}
	for _, v := range opts.Volumes {
		args = append(args, "-v", v)
	}
	if opts.WorkDir != "" {
		args = append(args, "-w", opts.WorkDir)
	}

	// Image and command come last
	args = append(args, opts.Image)
	args = append(args, opts.Cmd...)

	bin, full := e.command(args)
	return e.runner.Attach(ctx, bin, full...)
}

// Commit snapshots a container into a new image and returns the image ID
// with any "sha256:" prefix stripped.
func (e *Engine) Commit(ctx context.Context, container string) (string, error) {
	bin, args := e.command([]string{"commit", container})
	out, err := e.runner.Output(ctx, bin, args...)
	if err != nil {
		return "", fmt.Errorf("commit container %s: %w", container, err)
	}

	id := strings.TrimSpace(out)
	if rest, ok := strings.CutPrefix(id, "sha256:"); ok {
		id = rest
	}
	if id == "" {
		return "", fmt.Errorf("commit container %s: engine returned no image ID", container)
	}
	return id, nil
}

// Tag applies a tag to an existing image.
func (e *Engine) Tag(ctx context.Context, imageID, tag string) error {
	bin, args := e.command([]string{"tag", imageID, tag})
	if _, err := e.runner.Output(ctx, bin, args...); err != nil {
		return fmt.Errorf("tag image %s as %s: %w", imageID, tag, err)
	}
	return nil
}

// RemoveImage force-removes an image reference. The underlying layers
// may survive as untagged images; cleanup of those is left to the user.
func (e *Engine) RemoveImage(ctx context.Context, ref string) error {
	bin, args := e.command([]string{"rmi", "--force", ref})
	if _, err := e.runner.Output(ctx, bin, args...); err != nil {
		return fmt.Errorf("remove image %s: %w", ref, err)
	}
	return nil
}

// RemoveContainer removes a stopped container.
func (e *Engine) RemoveContainer(ctx context.Context, name string) error {
	bin, args := e.command([]string{"rm", name})
	if _, err := e.runner.Output(ctx, bin, args...); err != nil {
		return fmt.Errorf("remove container %s: %w", name, err)
	}
	return nil
}
