package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// EnvDataDir overrides the application data store location entirely,
// bypassing platform resolution.
const EnvDataDir = "WORKSHOPS_DIR"

// applicationParts is the reverse-domain triple identifying this
// application's platform directories. Existing installations depend on the
// exact values; do not change them.
var applicationParts = [3]string{"io", "libp2p", "workshop"}

// ErrAppDirsUnavailable reports that the current platform offers no
// standard application-directory convention we can resolve.
var ErrAppDirsUnavailable = errors.New("application directories unavailable")

// DataDir resolves the application data store: the WORKSHOPS_DIR override
// when set, otherwise the platform-standard per-application data directory.
// The directory is created along with any missing ancestors, so resolution
// only fails when no convention exists for the platform.
func DataDir() (string, error) {
	dir, err := dataDirFor(runtime.GOOS)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dir, nil
}

func dataDirFor(goos string) (string, error) {
	if override := os.Getenv(EnvDataDir); override != "" {
		abs, err := filepath.Abs(override)
		if err != nil {
			return "", fmt.Errorf("resolve %s: %w", EnvDataDir, err)
		}
		return abs, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", ErrAppDirsUnavailable)
	}

	switch goos {
	case "darwin":
		bundle := applicationParts[0] + "." + applicationParts[1] + "." + applicationParts[2]
		return filepath.Join(home, "Library", "Application Support", bundle), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, applicationParts[1], applicationParts[2], "data"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", applicationParts[1], applicationParts[2], "data"), nil
	default:
		if xdgData := os.Getenv("XDG_DATA_HOME"); xdgData != "" {
			return filepath.Join(xdgData, applicationParts[2]), nil
		}
		return filepath.Join(home, ".local", "share", applicationParts[2]), nil
	}
}

// ConfigDir resolves the platform-standard per-application config
// directory, creating it when absent. Unlike DataDir it honors no
// environment override.
func ConfigDir() (string, error) {
	dir, err := configDirFor(runtime.GOOS)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config directory: %w", err)
	}
	return dir, nil
}

func configDirFor(goos string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("detect user home: %w", ErrAppDirsUnavailable)
	}

	switch goos {
	case "darwin":
		bundle := applicationParts[0] + "." + applicationParts[1] + "." + applicationParts[2]
		return filepath.Join(home, "Library", "Application Support", bundle), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, applicationParts[1], applicationParts[2], "config"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", applicationParts[1], applicationParts[2], "config"), nil
	default:
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, applicationParts[2]), nil
		}
		return filepath.Join(home, ".config", applicationParts[2]), nil
	}
}

// ConfigFile returns the path of the user-level config file, creating its
// directory when absent.
func ConfigFile() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}
