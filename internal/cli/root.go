package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"workshop/internal/config"
	"workshop/internal/logx"
	"workshop/internal/store"
)

var (
	flagDir     string
	flagJSON    bool
	flagVerbose bool
)

// Execute runs the root cobra command.
func Execute(ctx context.Context) {
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workshop",
		Short: "Bootstrap a local workshop-based learning environment",
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			logger := logx.New(logx.Options{Verbose: flagVerbose})
			cmd.SetContext(logger.WithContext(cmd.Context()))
		},
	}

	cmd.PersistentFlags().StringVar(&flagDir, "dir", "", "Working directory anchor (default: current directory)")
	cmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output machine-readable JSON")
	cmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	cmd.AddCommand(newCheckCmd())
	cmd.AddCommand(newDoctorCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newListCmd())
	cmd.AddCommand(newLanguagesCmd())
	cmd.AddCommand(newSelectCmd())
	cmd.AddCommand(newStatusCmd())

	return cmd
}

// resolveAnchor returns the working-directory anchor: the --dir flag when
// set, otherwise the process working directory.
func resolveAnchor() (string, error) {
	if flagDir != "" {
		dir, err := filepath.Abs(flagDir)
		if err != nil {
			return "", fmt.Errorf("resolve --dir: %w", err)
		}
		return dir, nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("get working directory: %w", err)
	}
	return dir, nil
}

// loadConfig resolves the user-level config file and loads it, returning
// the path alongside so callers can save changes back.
func loadConfig() (config.Config, string, error) {
	path, err := store.ConfigFile()
	if err != nil {
		return config.Config{}, "", err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, "", err
	}
	return cfg, path, nil
}
