package cli

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"workshop/internal/logx"
	"workshop/internal/store"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init <workshop>",
		Short: "Materialize a workshop into the local workspace",
		Args:  cobra.ExactArgs(1),
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	workshopID := args[0]

	anchor, err := resolveAnchor()
	if err != nil {
		return err
	}

	workspace, err := store.Init(cmd.Context(), anchor, workshopID)
	if err != nil {
		return err
	}

	// From here the workspace exists, so command logging can also land in
	// its log file.
	if file, err := logx.OpenFile(workspace); err == nil {
		defer file.Close()
		logger := logx.New(logx.Options{Verbose: flagVerbose, File: file})
		logger.Info().Str("workshop", workshopID).Str("workspace", workspace).Msg("workshop initialized")
	} else {
		zerolog.Ctx(cmd.Context()).Debug().Err(err).Msg("workspace log file unavailable")
	}

	files, err := countFiles(filepath.Join(workspace, workshopID))
	if err != nil {
		return err
	}

	cmd.Printf("Initialized workshop %s at %s\n", workshopID, workspace)
	cmd.Printf("  %d files copied\n", files)
	return nil
}

func countFiles(root string) (int, error) {
	count := 0
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			count++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count copied files: %w", err)
	}
	return count, nil
}
