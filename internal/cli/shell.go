package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apiad/pydock/internal/engine"
	"github.com/google/shlex"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// NewShellCmd creates the shell command.
func NewShellCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "shell <name>",
		Short: "Open a shell inside an environment",
		Long: `Open a shell inside an environment.

The current working directory is mounted inside the container under
the environment user's home, and the shell starts there.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunShell(cmd, args[0])
		},
	}
}

// RunShell starts a disposable interactive container for the
// environment. The container's exit code becomes ours.
func (a *App) RunShell(cmd *cobra.Command, name string) error {
	env, err := a.store.GetEnv(name)
	if err != nil {
		return err
	}

	eng, err := a.Engine()
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}

	username := env.Username
	if username == "" {
		username = a.config.Environment.Username
	}

	shellCmd, err := shlex.Split(a.config.Environment.Shell)
	if err != nil {
		return fmt.Errorf("parse shell command %q: %w", a.config.Environment.Shell, err)
	}

	mountTarget := fmt.Sprintf("/home/%s/%s", username, filepath.Base(cwd))

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.styles.Progress.Render(
		fmt.Sprintf("%s Creating shell for '%s'", IconLaunch, env.Name)))

	err = eng.Run(cmd.Context(), engine.RunOptions{
		Image:       env.ImageTag(),
		Remove:      true,
		Interactive: term.IsTerminal(int(os.Stdin.Fd())),
		User:        strconv.Itoa(os.Geteuid()),
		Hostname:    env.Name,
		Volumes:     []string{cwd + ":" + mountTarget},
		WorkDir:     mountTarget,
		Cmd:         shellCmd,
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, a.styles.Success.Render(
		fmt.Sprintf("%s Shell instance for '%s' ended.", IconDone, env.Name)))
	return nil
}
