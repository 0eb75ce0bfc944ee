package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"time"

	"gopkg.in/yaml.v3"
)

var (
	// ErrEnvExists is returned by CreateEnv for duplicate names.
	ErrEnvExists = errors.New("environment already exists")

	// ErrEnvNotFound is returned when a named environment has no record.
	ErrEnvNotFound = errors.New("environment doesn't exist")

	// ErrInvalidName is returned for names that cannot serve as both a
	// directory name and an image tag component.
	ErrInvalidName = errors.New("invalid environment name")
)

// envNameRe constrains names to what is safe in paths, image tags and
// container hostnames.
var envNameRe = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

// ValidateName checks that name is usable as an environment name.
func ValidateName(name string) error {
	if !envNameRe.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// Environment is the manifest for one managed environment. It is read
// and written wholesale as envs/<name>/env.yaml.
type Environment struct {
	// Name uniquely identifies the environment
	Name string `yaml:"name"`

	// PythonVersion is the Python release the image is built from
	PythonVersion string `yaml:"python_version"`

	// Username is the default user baked into the image
	Username string `yaml:"username"`

	// CreatedAt records when the environment was created
	CreatedAt time.Time `yaml:"created_at"`
}

// ImageTag derives the image reference for this environment.
func (e *Environment) ImageTag() string {
	return fmt.Sprintf("pydock-%s:latest", e.Name)
}

// ImageRepository derives the untagged image name for this environment.
func (e *Environment) ImageRepository() string {
	return "pydock-" + e.Name
}

// Store is the on-disk environment registry rooted at a resolved
// local or global directory.
type Store struct {
	// Root is the resolved store root (a .pydock directory)
	Root string
}

// New creates a Store for the given root. Call Init before writing.
func New(root string) *Store {
	return &Store{Root: root}
}

// Init creates the store root and envs directory if missing.
func (s *Store) Init() error {
	if err := os.MkdirAll(s.EnvsDir(), 0o755); err != nil {
		return fmt.Errorf("init store at %s: %w", s.Root, err)
	}
	return nil
}

// EnvsDir returns the directory holding all environment directories.
func (s *Store) EnvsDir() string {
	return filepath.Join(s.Root, "envs")
}

// ConfigPath returns the path of the store-scoped configuration file.
func (s *Store) ConfigPath() string {
	return filepath.Join(s.Root, "config.yaml")
}

// EnvDir returns the directory of a named environment.
func (s *Store) EnvDir(name string) string {
	return filepath.Join(s.EnvsDir(), name)
}

// DockerfilePath returns the environment's dockerfile path.
func (s *Store) DockerfilePath(name string) string {
	return filepath.Join(s.EnvDir(name), "dockerfile")
}

// RequirementsPath returns the environment's requirements.txt path.
func (s *Store) RequirementsPath(name string) string {
	return filepath.Join(s.EnvDir(name), "requirements.txt")
}

func (s *Store) manifestPath(name string) string {
	return filepath.Join(s.EnvDir(name), "env.yaml")
}

// GetEnv loads the manifest of a named environment.
func (s *Store) GetEnv(name string) (*Environment, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.manifestPath(name))
	if os.IsNotExist(err) {
		// Environments created by older versions (or by hand) have
		// template files but no manifest. Still usable.
		if _, statErr := os.Stat(s.EnvDir(name)); statErr == nil {
			return &Environment{Name: name}, nil
		}
		return nil, fmt.Errorf("environment %q: %w", name, ErrEnvNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read manifest for %q: %w", name, err)
	}

	var env Environment
	if err := yaml.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("parse manifest for %q: %w", name, err)
	}
	return &env, nil
}

// ListEnvs returns all environment manifests, sorted by name.
func (s *Store) ListEnvs() ([]Environment, error) {
	entries, err := os.ReadDir(s.EnvsDir())
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("list environments: %w", err)
	}

	var envs []Environment
	for _, entry := range entries {
		if !entry.IsDir() || ValidateName(entry.Name()) != nil {
			continue
		}
		env, err := s.GetEnv(entry.Name())
		if err != nil {
			return nil, err
		}
		envs = append(envs, *env)
	}

	sort.Slice(envs, func(i, j int) bool { return envs[i].Name < envs[j].Name })
	return envs, nil
}

// CreateEnv writes a new environment: manifest, dockerfile, and an
// empty requirements file. Fails before touching anything if the name
// is taken. A later build failure deliberately leaves these files in
// place for inspection or rerun.
func (s *Store) CreateEnv(env Environment, dockerfile []byte) error {
	if err := ValidateName(env.Name); err != nil {
		return err
	}

	dir := s.EnvDir(env.Name)
	if err := os.Mkdir(dir, 0o755); err != nil {
		if os.IsExist(err) {
			return fmt.Errorf("environment %q: %w", env.Name, ErrEnvExists)
		}
		return fmt.Errorf("create environment %q: %w", env.Name, err)
	}

	manifest, err := yaml.Marshal(&env)
	if err != nil {
		return fmt.Errorf("marshal manifest for %q: %w", env.Name, err)
	}
	if err := os.WriteFile(s.manifestPath(env.Name), manifest, 0o644); err != nil {
		return fmt.Errorf("write manifest for %q: %w", env.Name, err)
	}

	if err := os.WriteFile(s.DockerfilePath(env.Name), dockerfile, 0o644); err != nil {
		return fmt.Errorf("write dockerfile for %q: %w", env.Name, err)
	}
	if err := os.WriteFile(s.RequirementsPath(env.Name), nil, 0o644); err != nil {
		return fmt.Errorf("write requirements for %q: %w", env.Name, err)
	}

	return nil
}

// DeleteEnv removes an environment's directory and everything in it.
// The caller is responsible for removing the image.
func (s *Store) DeleteEnv(name string) error {
	if _, err := s.GetEnv(name); err != nil {
		return err
	}
	if err := os.RemoveAll(s.EnvDir(name)); err != nil {
		return fmt.Errorf("delete environment %q: %w", name, err)
	}
	return nil
}
