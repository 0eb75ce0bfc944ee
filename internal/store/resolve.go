package store

import (
	"errors"
	"os"
	"path/filepath"
)

// Mode selects the store root scope.
type Mode int

const (
	// ModeAuto prefers a local marker directory, falling back to global.
	ModeAuto Mode = iota
	// ModeLocal forces the per-project store under the working directory.
	ModeLocal
	// ModeGlobal forces the per-user store under the home directory.
	ModeGlobal
)

// markerDir is the store directory name in both scopes.
const markerDir = ".pydock"

// ErrConflictingModes is returned when both --local and --global are given.
var ErrConflictingModes = errors.New("--local and --global are mutually exclusive")

// Resolve picks the store root for this invocation. Precedence:
// explicit mode > existing local marker > global default.
// The result is fixed for the process lifetime.
func Resolve(mode Mode, cwd, home string) (string, error) {
	local := filepath.Join(cwd, markerDir)
	global := filepath.Join(home, markerDir)

	switch mode {
	case ModeLocal:
		return local, nil
	case ModeGlobal:
		return global, nil
	}

	if info, err := os.Stat(local); err == nil && info.IsDir() {
		return local, nil
	}
	return global, nil
}

// ResolveMode converts the --local/--global flag pair into a Mode,
// rejecting the conflicting combination.
func ResolveMode(localFlag, globalFlag bool) (Mode, error) {
	switch {
	case localFlag && globalFlag:
		return ModeAuto, ErrConflictingModes
	case localFlag:
		return ModeLocal, nil
	case globalFlag:
		return ModeGlobal, nil
	default:
		return ModeAuto, nil
	}
}
