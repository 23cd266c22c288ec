package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"workshop/internal/status"
	"workshop/internal/toolchain"
)

var (
	checkStrict  bool
	checkSave    bool
	checkDefault bool
)

// detectRunner is replaced in tests to script probe responses. Nil means
// real process invocation.
var detectRunner toolchain.Runner

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Probe for the required toolchain (python, docker compose, git)",
		RunE:  runCheck,
	}

	cmd.Flags().BoolVar(&checkStrict, "strict", false, "fail when a required tool is missing or outdated")
	cmd.Flags().BoolVar(&checkSave, "save", false, "record found executables in the session context")
	cmd.Flags().BoolVar(&checkDefault, "default", false, "with --save, also persist them as config defaults")

	return cmd
}

func runCheck(cmd *cobra.Command, _ []string) error {
	cfg, configPath, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	statuses := toolchain.Detect(cmd.Context(), detectRunner, cfg.Minimums())

	if checkSave {
		anchor, err := resolveAnchor()
		if err != nil {
			return err
		}
		st, err := status.Load(anchor, cfg, configPath)
		if err != nil {
			return err
		}
		for _, ts := range statuses {
			if !ts.Satisfied {
				continue
			}
			switch ts.Tool {
			case toolchain.ToolPython:
				st.SetPythonExecutable(ts.Command, checkDefault)
			case toolchain.ToolDockerCompose:
				st.SetDockerComposeExecutable(ts.Command, checkDefault)
			case toolchain.ToolGit:
				st.SetGitExecutable(ts.Command, checkDefault)
			}
		}
		if err := st.Save(anchor); err != nil {
			return err
		}
	}

	if flagJSON {
		data, err := json.MarshalIndent(statuses, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
	} else {
		printCheckResult(cmd, statuses)
	}

	if checkStrict {
		return ensureStrict(statuses)
	}
	return nil
}

func printCheckResult(cmd *cobra.Command, statuses []toolchain.Status) {
	bold := lipgloss.NewStyle().Bold(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	faint := lipgloss.NewStyle().Faint(true)

	for _, st := range statuses {
		if st.Satisfied {
			headline := green.Render("✓") + " " + bold.Render(st.Tool)
			if st.Version != "" {
				headline += " v" + st.Version
			}
			if st.Minimum != "" {
				headline += faint.Render(" (minimum: " + st.Minimum + ")")
			}
			cmd.Println(headline)

			detail := st.Command
			if st.Strategy != toolchain.StrategyProbe && st.Strategy != toolchain.StrategyUnknown {
				detail += " · " + string(st.Strategy)
			}
			cmd.Println(faint.Render("  " + detail))
		} else {
			headline := red.Render("✗") + " " + bold.Render(st.Tool)
			if st.Error != "" {
				headline += red.Render(" (" + st.Error + ")")
			}
			cmd.Println(headline)
		}
		cmd.Println()
	}
}

func ensureStrict(statuses []toolchain.Status) error {
	var failures []string
	for _, st := range statuses {
		if st.Satisfied {
			continue
		}
		msg := st.Tool
		if st.Error != "" {
			msg = fmt.Sprintf("%s (%s)", st.Tool, st.Error)
		}
		failures = append(failures, msg)
	}
	if len(failures) == 0 {
		return nil
	}
	return errors.New("tool check failed: " + strings.Join(failures, ", "))
}
