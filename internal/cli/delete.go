package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDeleteCmd creates the delete command.
func NewDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete an environment",
		Long: `Delete an environment's files and force-remove its image.

Untagged images left behind by earlier rebuilds are not touched.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.RunDelete(cmd, args[0])
		},
	}
}

// RunDelete removes the environment directory and its image. Image
// removal is best-effort: the files are the source of truth, and the
// image may already be gone.
func (a *App) RunDelete(cmd *cobra.Command, name string) error {
	env, err := a.store.GetEnv(name)
	if err != nil {
		return err
	}

	if err := a.store.DeleteEnv(env.Name); err != nil {
		return err
	}

	if eng, err := a.Engine(); err == nil {
		if err := eng.RemoveImage(cmd.Context(), env.ImageTag()); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), a.styles.Success.Render(
		fmt.Sprintf("%s Environment '%s' successfully deleted.", IconDeleted, env.Name)))
	return nil
}
