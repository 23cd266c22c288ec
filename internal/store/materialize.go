package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// ErrWorkshopNotFound reports that the named workshop has no directory in
// the application data store.
var ErrWorkshopNotFound = errors.New("workshop data directory not found")

// Init materializes the named workshop into the local workspace store: it
// ensures <start>/.workshops exists, then recursively copies the workshop's
// tree out of the application data store under the same identifier. The
// returned path is the workspace store. The copy is not atomic; a failure
// partway through leaves a partial tree and is not retried.
func Init(ctx context.Context, start, workshopID string) (string, error) {
	logger := zerolog.Ctx(ctx)

	workspace, err := EnsureWorkspace(start)
	if err != nil {
		return "", err
	}

	dataDir, err := DataDir()
	if err != nil {
		return "", err
	}

	source := filepath.Join(dataDir, workshopID)
	isDir, err := DirExists(source)
	if err != nil {
		return "", fmt.Errorf("stat workshop source: %w", err)
	}
	if !isDir {
		return "", fmt.Errorf("workshop %s: %w", workshopID, ErrWorkshopNotFound)
	}

	target := filepath.Join(workspace, workshopID)
	logger.Debug().Str("source", source).Str("target", target).Msg("copying workshop data")
	if err := copyTree(source, target); err != nil {
		return "", err
	}

	logger.Info().Str("workshop", workshopID).Str("workspace", workspace).Msg("workshop materialized")
	return workspace, nil
}

// copyTree recursively copies the directory tree at source into target,
// preserving structure. The source is only ever read.
func copyTree(source, target string) error {
	if err := os.MkdirAll(target, 0o755); err != nil {
		return fmt.Errorf("create directory %s: %w", target, err)
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return fmt.Errorf("read directory %s: %w", source, err)
	}
	for _, entry := range entries {
		sourcePath := filepath.Join(source, entry.Name())
		targetPath := filepath.Join(target, entry.Name())
		if entry.IsDir() {
			if err := copyTree(sourcePath, targetPath); err != nil {
				return err
			}
			continue
		}
		if err := copyFile(sourcePath, targetPath); err != nil {
			return err
		}
	}
	return nil
}

func copyFile(source, target string) error {
	in, err := os.Open(source)
	if err != nil {
		return fmt.Errorf("open %s: %w", source, err)
	}
	defer in.Close()

	out, err := os.OpenFile(target, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", target, err)
	}
	return out.Close()
}
