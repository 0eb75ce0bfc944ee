package cli

import (
	"fmt"

	"github.com/apiad/pydock/internal/engine"
	"github.com/spf13/cobra"
)

// NewEnvsCmd creates the envs command.
func NewEnvsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "envs",
		Short: "List all existing environments",
		Long: `List all existing environments.

Image details (ID, age, size) come from the container engine; when no
engine is available the listing still shows the registry entries.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunEnvs(cmd)
		},
	}
}

// RunEnvs prints the environment table, merging registry manifests
// with the engine's image listing when one is reachable.
func (a *App) RunEnvs(cmd *cobra.Command) error {
	envs, err := a.store.ListEnvs()
	if err != nil {
		return err
	}

	// Image metadata is best-effort: a missing or failing engine
	// degrades the listing instead of breaking it.
	var images map[string]engine.Image
	if eng, err := a.Engine(); err == nil {
		images, _ = eng.Images(cmd.Context())
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, a.styles.Header.Render(
		fmt.Sprintf("%-16s%-12s%-16s%-18s%s", "ENVIRONMENT", "VERSION", "IMAGE ID", "UPDATED", "SIZE")))

	for _, env := range envs {
		id, updated, size := "-", "-", "-"
		if img, ok := images[env.ImageRepository()]; ok {
			id, updated, size = img.ID, img.Created, img.Size
		}
		version := env.PythonVersion
		if version == "" {
			version = "-"
		}
		fmt.Fprintf(out, "%-16s%-12s%-16s%-18s%s\n",
			env.Name, version, id, updated, size)
	}

	return nil
}
