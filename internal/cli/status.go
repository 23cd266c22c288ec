package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workshop/internal/status"
	"workshop/internal/workshop"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the active session context",
		RunE:  runStatus,
	}
}

func runStatus(cmd *cobra.Command, _ []string) error {
	anchor, err := resolveAnchor()
	if err != nil {
		return err
	}

	cfg, configPath, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := status.Load(anchor, cfg, configPath)
	if err != nil {
		return err
	}

	if flagJSON {
		data, err := json.MarshalIndent(st, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintf(w, "python\t%s\t(minimum %s)\n", orUnset(st.PythonExecutable), st.PythonMinimum())
	fmt.Fprintf(w, "docker compose\t%s\t(minimum %s)\n", orUnset(st.DockerComposeExecutable), st.DockerComposeMinimum())
	fmt.Fprintf(w, "git\t%s\t(minimum %s)\n", orUnset(st.GitExecutable), st.GitMinimum())
	fmt.Fprintf(w, "spoken language\t%s\t\n", orUnset(displayCode(st.SpokenLanguage, workshop.SpokenName)))
	fmt.Fprintf(w, "programming language\t%s\t\n", orUnset(displayCode(st.ProgrammingLanguage, workshop.ProgrammingName)))
	fmt.Fprintf(w, "workshop\t%s\t\n", orUnset(st.Workshop))
	fmt.Fprintf(w, "lesson\t%s\t\n", orUnset(st.Lesson))
	w.Flush()
	return nil
}

func orUnset(value string) string {
	if value == "" {
		return "(not set)"
	}
	return value
}

func displayCode(code string, name func(string) string) string {
	if code == "" {
		return ""
	}
	label := name(code)
	if label != code {
		return label + " (" + code + ")"
	}
	return code
}
