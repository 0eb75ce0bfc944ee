package cli

import (
	"time"

	"github.com/apiad/pydock/internal/store"
	"github.com/spf13/cobra"
)

// NewCreateCmd creates the create command.
func NewCreateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "create <name> <version>",
		Short: "Create a new environment",
		Long: `Create a new environment and build its image.

<name> is a suitable name for the environment (e.g., a project name).
<version> is a Python version (e.g., 3.8 or 3.8.7).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunCreate(cmd, args[0], args[1])
		},
	}
}

// RunCreate writes the environment's template files and builds the
// image. A failed build leaves the written files in place so the user
// can inspect them or rerun `pydock build`.
func (a *App) RunCreate(cmd *cobra.Command, name, version string) error {
	env := store.Environment{
		Name:          name,
		PythonVersion: version,
		Username:      a.config.Environment.Username,
		CreatedAt:     time.Now().UTC(),
	}

	dockerfile, err := store.RenderDockerfile(store.DockerfileParams{
		Repository:    a.config.Docker.Repository,
		PythonVersion: version,
		Username:      env.Username,
	})
	if err != nil {
		return err
	}

	if err := a.store.CreateEnv(env, dockerfile); err != nil {
		return err
	}

	return a.buildEnv(cmd, &env)
}
