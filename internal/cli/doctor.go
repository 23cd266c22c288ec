package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"workshop/internal/status"
	"workshop/internal/store"
	"workshop/internal/toolchain"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check environment health",
		RunE:  runDoctor,
	}
}

type healthCheck struct {
	Name    string `json:"name"`
	Status  string `json:"status"` // "ok", "warning", "error"
	Summary string `json:"summary"`
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	anchor, err := resolveAnchor()
	if err != nil {
		return err
	}

	var checks []healthCheck
	checks = append(checks, checkDataStore(cmd))
	checks = append(checks, checkConfig())
	checks = append(checks, checkWorkspace(anchor))
	checks = append(checks, checkToolchain(cmd))
	checks = append(checks, checkStatusFile(anchor))

	return writeDoctorResult(cmd, anchor, checks)
}

func checkDataStore(cmd *cobra.Command) healthCheck {
	dataDir, err := store.DataDir()
	if err != nil {
		return healthCheck{Name: "Data store", Status: "error", Summary: err.Error()}
	}
	all, err := store.LoadGlobal(cmd.Context())
	if err != nil {
		return healthCheck{Name: "Data store", Status: "error", Summary: err.Error()}
	}
	if len(all) == 0 {
		return healthCheck{
			Name:    "Data store",
			Status:  "warning",
			Summary: fmt.Sprintf("%s holds no workshops", dataDir),
		}
	}
	return healthCheck{
		Name:    "Data store",
		Status:  "ok",
		Summary: fmt.Sprintf("%d workshops in %s", len(all), dataDir),
	}
}

func checkConfig() healthCheck {
	cfg, path, err := loadConfig()
	if err != nil {
		return healthCheck{Name: "Config", Status: "error", Summary: err.Error()}
	}
	if err := cfg.Validate(); err != nil {
		return healthCheck{Name: "Config", Status: "error", Summary: err.Error()}
	}
	return healthCheck{Name: "Config", Status: "ok", Summary: path}
}

func checkWorkspace(anchor string) healthCheck {
	workspace, found, err := store.FindWorkspace(anchor)
	if err != nil {
		return healthCheck{Name: "Workspace", Status: "error", Summary: err.Error()}
	}
	if !found {
		return healthCheck{
			Name:    "Workspace",
			Status:  "warning",
			Summary: "no .workshops directory found; run `workshop init <workshop>`",
		}
	}
	return healthCheck{Name: "Workspace", Status: "ok", Summary: workspace}
}

func checkToolchain(cmd *cobra.Command) healthCheck {
	cfg, _, err := loadConfig()
	if err != nil {
		return healthCheck{Name: "Tools", Status: "error", Summary: err.Error()}
	}

	statuses := toolchain.Detect(cmd.Context(), detectRunner, cfg.Minimums())
	var satisfied int
	var labels []string
	for _, st := range statuses {
		if st.Satisfied {
			satisfied++
			label := st.Tool
			if st.Version != "" {
				label += " " + st.Version
			}
			labels = append(labels, label)
		}
	}
	if satisfied == len(statuses) {
		return healthCheck{Name: "Tools", Status: "ok", Summary: joinComma(labels)}
	}
	return healthCheck{
		Name:    "Tools",
		Status:  "error",
		Summary: fmt.Sprintf("%d of %d tools satisfied", satisfied, len(statuses)),
	}
}

func checkStatusFile(anchor string) healthCheck {
	workspace, found, err := store.FindWorkspace(anchor)
	if err != nil || !found {
		return healthCheck{Name: "Status", Status: "warning", Summary: "no workspace, no session context"}
	}
	path := filepath.Join(workspace, status.FileName)
	exists, err := store.FileExists(path)
	if err != nil {
		return healthCheck{Name: "Status", Status: "error", Summary: err.Error()}
	}
	if !exists {
		return healthCheck{Name: "Status", Status: "warning", Summary: "no status.yaml; run `workshop select`"}
	}
	return healthCheck{Name: "Status", Status: "ok", Summary: path}
}

func writeDoctorResult(cmd *cobra.Command, anchor string, checks []healthCheck) error {
	if flagJSON {
		data, err := json.MarshalIndent(checks, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	bold := lipgloss.NewStyle().Bold(true).Inline(true)
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Inline(true)
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Inline(true)
	red := lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Inline(true)

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, bold.Render("ENVIRONMENT HEALTH:")+" "+anchor)

	for _, c := range checks {
		var statusStr string
		switch c.Status {
		case "ok":
			statusStr = green.Render("OK")
		case "warning":
			statusStr = yellow.Render("WARN")
		case "error":
			statusStr = red.Render("ERROR")
		}
		fmt.Fprintf(out, "  %-12s %s    %s\n", c.Name+":", statusStr, c.Summary)
	}

	return nil
}

func joinComma(items []string) string {
	if len(items) == 0 {
		return ""
	}
	result := items[0]
	for _, item := range items[1:] {
		result += ", " + item
	}
	return result
}
