package statedir

import (
	"fmt"
	"os"
	"path/filepath"
)

const appName = "boxoverlay"

// Dir returns the directory for state that outlives a session. Priority:
// 1) $XDG_STATE_HOME/boxoverlay (if set)
// 2) ~/.local/state/boxoverlay
// 3) /tmp/boxoverlay-state-<uid> (when no home directory is known)
//
// The directory is not created.
func Dir() (string, error) {
	if stateHome := os.Getenv("XDG_STATE_HOME"); stateHome != "" {
		return filepath.Join(stateHome, appName), nil
	}

	if homeDir, err := os.UserHomeDir(); err == nil && homeDir != "" {
		return filepath.Join(homeDir, ".local", "state", appName), nil
	}

	return fmt.Sprintf("/tmp/%s-state-%d", appName, os.Getuid()), nil
}

// WindowStatePath returns the path of the remembered window geometry.
func WindowStatePath() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "window.json"), nil
}
