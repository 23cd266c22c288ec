package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"workshop/internal/status"
	"workshop/internal/store"
	"workshop/internal/tui"
	"workshop/internal/workshop"
)

var (
	selectSpoken      string
	selectProgramming string
	selectLesson      string
)

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select [workshop]",
		Short: "Select the active workshop (interactive without an argument)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runSelect,
	}

	cmd.Flags().StringVar(&selectSpoken, "spoken", "", "spoken language code to filter and record")
	cmd.Flags().StringVar(&selectProgramming, "language", "", "programming language code to filter and record")
	cmd.Flags().StringVar(&selectLesson, "lesson", "", "lesson to record as active")

	return cmd
}

func runSelect(cmd *cobra.Command, args []string) error {
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

	spoken := selectSpoken
	if spoken == "" {
		spoken = st.SpokenLanguage
	}
	programming := selectProgramming
	if programming == "" {
		programming = st.ProgrammingLanguage
	}

	all, err := store.LoadAll(cmd.Context(), anchor)
	if err != nil {
		return err
	}
	filtered := store.Filter(all, spoken, programming)
	if len(filtered) == 0 {
		return fmt.Errorf("no workshops match spoken=%q language=%q", spoken, programming)
	}

	var workshopID string
	if len(args) == 1 {
		workshopID = args[0]
		if _, ok := filtered[workshopID]; !ok {
			return fmt.Errorf("workshop %q is not available for spoken=%q language=%q", workshopID, spoken, programming)
		}
	} else {
		options := make([]tui.Option, 0, len(filtered))
		for _, ws := range sortedWorkshops(filtered) {
			desc := ws.Description
			if desc == "" {
				desc = "Languages: " + renderCodes(ws.SpokenLanguages(), workshop.SpokenName)
			}
			options = append(options, tui.Option{ID: ws.ID, Title: ws.Title, Description: desc})
		}
		workshopID, err = tui.PickWorkshop(options)
		if err != nil {
			return err
		}
		if workshopID == "" {
			cmd.Println("Selection cancelled.")
			return nil
		}
	}

	if selectSpoken != "" {
		st.SetSpokenLanguage(selectSpoken, false)
	}
	if selectProgramming != "" {
		st.SetProgrammingLanguage(selectProgramming, false)
	}
	st.SetWorkshop(workshopID)
	if selectLesson != "" {
		st.SetLesson(selectLesson)
	}

	if err := st.Save(anchor); err != nil {
		return err
	}

	cmd.Printf("Selected workshop %s\n", workshopID)
	if selectLesson != "" {
		cmd.Printf("  lesson %s\n", selectLesson)
	}
	return nil
}
