package cli

import (
	"fmt"

	"github.com/apiad/pydock/internal/store"
	"github.com/spf13/cobra"
)

// NewBuildCmd creates the build command.
func NewBuildCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "build <name>",
		Short: "(re)Build an environment's image",
		Long: `(re)Build the Docker image of an existing environment.

This is usually not necessary, unless you edited the environment's
dockerfile by hand and want the image to reflect it. The call to
` + "`create`" + ` builds automatically.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunBuild(cmd, args[0])
		},
	}
}

// RunBuild rebuilds the image for an existing environment.
func (a *App) RunBuild(cmd *cobra.Command, name string) error {
	env, err := a.store.GetEnv(name)
	if err != nil {
		return err
	}
	return a.buildEnv(cmd, env)
}

// buildEnv invokes the engine build for an environment's dockerfile.
// Engine failures propagate verbatim; template files are never rolled
// back (a dangling create is rerun with `pydock build`).
func (a *App) buildEnv(cmd *cobra.Command, env *store.Environment) error {
	eng, err := a.Engine()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.styles.Progress.Render(
		fmt.Sprintf("%s Building image for environment '%s'", IconBuilding, env.Name)))

	err = eng.Build(cmd.Context(), env.ImageTag(),
		a.store.DockerfilePath(env.Name), a.store.EnvDir(env.Name))
	if err != nil {
		return err
	}

	fmt.Fprintln(out, a.styles.Success.Render(
		fmt.Sprintf("%s Environment '%s' built successfully!", IconSuccess, env.Name)))
	return nil
}
