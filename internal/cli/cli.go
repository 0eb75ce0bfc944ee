package cli

import (
	"fmt"
	"os"

	"github.com/apiad/pydock/internal/config"
	"github.com/apiad/pydock/internal/engine"
	"github.com/apiad/pydock/internal/store"
	"github.com/spf13/cobra"
)

// App represents the CLI application with all wired dependencies.
// The store, config and engine are resolved once per invocation and
// threaded explicitly; there is no ambient mode state.
type App struct {
	// Root command
	rootCmd *cobra.Command

	// Mode flags (persistent)
	localFlag  bool
	globalFlag bool

	// Resolved per invocation
	store  *store.Store
	config *config.Config
	engine *engine.Engine

	styles Styles

	// Version information
	version string
	commit  string
	date    string
}

// New creates a new CLI application.
func New() *App {
	app := &App{
		styles: DefaultStyles(),
	}
	app.setupRootCmd()
	return app
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.rootCmd.Execute()
}

// SetVersion sets the version string for the version command.
func (a *App) SetVersion(version, commit, date string) {
	a.version = version
	a.commit = commit
	a.date = date
}

// setupRootCmd configures the root Cobra command.
func (a *App) setupRootCmd() {
	a.rootCmd = &cobra.Command{
		Use:   "pydock",
		Short: "Python development environments as Docker images",
		Long: `pydock manages Python development environments as Docker images,
each described by a portable dockerfile + requirements.txt pair.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.initStore()
		},
	}

	a.rootCmd.PersistentFlags().BoolVar(&a.localFlag, "local", false,
		"Use the per-project store (./.pydock)")
	a.rootCmd.PersistentFlags().BoolVar(&a.globalFlag, "global", false,
		"Use the per-user store (~/.pydock)")

	a.rootCmd.AddCommand(
		NewEnvsCmd(a),
		NewCreateCmd(a),
		NewBuildCmd(a),
		NewDeleteCmd(a),
		NewShellCmd(a),
		NewInstallCmd(a),
		NewConfigCmd(a),
		NewVersionCmd(a),
	)
}

// initStore resolves the store root, ensures its layout exists and
// loads configuration. Tests pre-wire a.store to skip this.
func (a *App) initStore() error {
	if a.store != nil {
		return nil
	}

	mode, err := store.ResolveMode(a.localFlag, a.globalFlag)
	if err != nil {
		return err
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("resolve working directory: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("resolve home directory: %w", err)
	}

	root, err := store.Resolve(mode, cwd, home)
	if err != nil {
		return err
	}

	a.store = store.New(root)
	if err := a.store.Init(); err != nil {
		return err
	}

	cfg, err := config.Load(a.store.ConfigPath())
	if err != nil {
		return err
	}
	a.config = cfg

	// First run against this store: persist the resolved settings so
	// the file documents every available knob.
	if _, err := os.Stat(a.store.ConfigPath()); os.IsNotExist(err) {
		if err := cfg.Save(a.store.ConfigPath()); err != nil {
			return err
		}
	}

	return nil
}

// Engine returns the container engine, detecting an available runtime
// on first use. Commands that never touch the engine never pay for
// detection.
func (a *App) Engine() (*engine.Engine, error) {
	if a.engine != nil {
		return a.engine, nil
	}

	runtime := a.config.Docker.Runtime
	if runtime == "" || runtime == "auto" {
		detected, err := engine.DetectRuntime()
		if err != nil {
			return nil, err
		}
		runtime = detected
	}

	a.engine = engine.New(runtime, a.config.Docker.Sudo)
	return a.engine, nil
}
