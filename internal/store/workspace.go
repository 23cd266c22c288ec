package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// WorkspaceDirName is the per-working-tree store holding materialized
// workshops and the session status file.
const WorkspaceDirName = ".workshops"

// FindWorkspace searches for a local workspace store starting at the given
// directory and walking up through its ancestors. It returns the first
// existing .workshops directory. Absence is a valid state, reported as
// ("", false, nil); the search never creates anything.
func FindWorkspace(start string) (string, bool, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}

	for {
		candidate := filepath.Join(dir, WorkspaceDirName)
		isDir, err := DirExists(candidate)
		if err != nil {
			return "", false, fmt.Errorf("stat %s: %w", candidate, err)
		}
		if isDir {
			return candidate, true, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// EnsureWorkspace creates the workspace store directly under start. Unlike
// FindWorkspace it never consults ancestors; initialization always anchors
// at the immediate working directory so a nested tree can carry its own
// local store.
func EnsureWorkspace(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	workspace := filepath.Join(dir, WorkspaceDirName)
	if err := os.MkdirAll(workspace, 0o755); err != nil {
		return "", fmt.Errorf("create workspace directory: %w", err)
	}
	return workspace, nil
}

// FileExists reports whether a path exists and is a regular file.
func FileExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// DirExists reports whether a path exists and is a directory.
func DirExists(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return info.IsDir(), nil
}
