package cli

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"workshop/internal/store"
	"workshop/internal/workshop"
)

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "Show the languages offered across all workshops",
		RunE:  runLanguages,
	}
}

func runLanguages(cmd *cobra.Command, _ []string) error {
	anchor, err := resolveAnchor()
	if err != nil {
		return err
	}

	all, err := store.LoadAll(cmd.Context(), anchor)
	if err != nil {
		return err
	}

	spoken := store.SpokenLanguages(all)
	programming := store.ProgrammingLanguages(all)
	matrix := store.LanguageMatrix(all)

	if flagJSON {
		payload := struct {
			Spoken      []string            `json:"spoken"`
			Programming []string            `json:"programming"`
			Matrix      map[string][]string `json:"matrix"`
		}{spoken, programming, matrix}
		data, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	cmd.Println("Spoken languages: " + renderCodes(spoken, workshop.SpokenName))
	cmd.Println("Programming languages: " + renderCodes(programming, workshop.ProgrammingName))
	cmd.Println()

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "SPOKEN\tPROGRAMMING")
	keys := make([]string, 0, len(matrix))
	for code := range matrix {
		keys = append(keys, code)
	}
	sort.Strings(keys)
	for _, code := range keys {
		fmt.Fprintf(w, "%s\t%s\n", workshop.SpokenName(code), strings.Join(matrix[code], ","))
	}
	w.Flush()
	return nil
}

func renderCodes(codes []string, name func(string) string) string {
	labels := make([]string, 0, len(codes))
	for _, code := range codes {
		label := name(code)
		if label != code {
			label += " (" + code + ")"
		}
		labels = append(labels, label)
	}
	return strings.Join(labels, ", ")
}
