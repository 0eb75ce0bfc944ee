package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/apiad/pydock/internal/engine"
	"github.com/spf13/cobra"
)

// NewInstallCmd creates the install command.
func NewInstallCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "install <env> <package>",
		Short: "Install a package in an environment and update requirements",
		Long: `Install a package in an environment and update requirements.

<env> is the environment where to install.
<package> is a package name in pip format (e.g., can have a pinned version).

After installation, the image for the environment is updated in-place,
and the installed package set is committed to requirements.txt using
` + "`pip freeze`" + `.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunInstall(cmd, args[0], args[1])
		},
	}
}

// RunInstall pip-installs a package in a disposable container, freezes
// the resulting package set into the bind-mounted requirements.txt,
// commits the container over the environment's tag and removes the
// container. Because pip freeze rewrites the file wholesale, repeated
// installs of the same package keep requirements idempotent.
func (a *App) RunInstall(cmd *cobra.Command, name, pkg string) error {
	env, err := a.store.GetEnv(name)
	if err != nil {
		return err
	}

	eng, err := a.Engine()
	if err != nil {
		return err
	}

	username := env.Username
	if username == "" {
		username = a.config.Environment.Username
	}

	requirements, err := filepath.Abs(a.store.RequirementsPath(env.Name))
	if err != nil {
		return fmt.Errorf("resolve requirements path: %w", err)
	}

	container := fmt.Sprintf("pydock-%s-install", env.Name)
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, a.styles.Progress.Render(
		fmt.Sprintf("%s Installing %s in environment '%s'", IconInstall, pkg, env.Name)))

	err = eng.Run(ctx, engine.RunOptions{
		Image:   env.ImageTag(),
		Name:    container,
		User:    strconv.Itoa(os.Geteuid()),
		Volumes: []string{requirements + ":" + fmt.Sprintf("/home/%s/requirements.txt", username)},
		Cmd: []string{"bash", "-c",
			fmt.Sprintf("pip install %s && pip freeze > ~/requirements.txt", pkg)},
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(out, a.styles.Progress.Render(
		fmt.Sprintf("%s Updating image for environment '%s'", IconUpdate, env.Name)))

	imageID, err := eng.Commit(ctx, container)
	if err != nil {
		return err
	}

	// The old tag has to go before retagging; its layers may linger as
	// untagged images, which is documented manual-cleanup territory.
	if err := eng.RemoveImage(ctx, env.ImageTag()); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	if err := eng.Tag(ctx, imageID, env.ImageTag()); err != nil {
		return err
	}

	if err := eng.RemoveContainer(ctx, container); err != nil {
		return err
	}

	fmt.Fprintln(out, a.styles.Success.Render(
		fmt.Sprintf("%s Installed %s in environment '%s'", IconSuccess, pkg, env.Name)))
	return nil
}
