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

var (
	listSpoken      string
	listProgramming string
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available workshops across the global and local stores",
		RunE:  runList,
	}

	cmd.Flags().StringVar(&listSpoken, "spoken", "", "only workshops supporting this spoken language code")
	cmd.Flags().StringVar(&listProgramming, "language", "", "only workshops supporting this programming language code")

	return cmd
}

func runList(cmd *cobra.Command, _ []string) error {
	anchor, err := resolveAnchor()
	if err != nil {
		return err
	}

	all, err := store.LoadAll(cmd.Context(), anchor)
	if err != nil {
		return err
	}
	filtered := store.Filter(all, listSpoken, listProgramming)

	if flagJSON {
		data, err := json.MarshalIndent(sortedWorkshops(filtered), "", "  ")
		if err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	writeListTable(cmd, filtered)
	return nil
}

func writeListTable(cmd *cobra.Command, workshops map[string]workshop.Workshop) {
	if len(workshops) == 0 {
		cmd.Println("No workshops found.")
		return
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 2, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tSOURCE\tLANGUAGES")
	for _, ws := range sortedWorkshops(workshops) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			ws.ID,
			ws.Title,
			ws.Source,
			strings.Join(ws.SpokenLanguages(), ","),
		)
	}
	w.Flush()
}

// sortedWorkshops flattens the catalog map into an identifier-sorted slice
// so output is deterministic.
func sortedWorkshops(workshops map[string]workshop.Workshop) []workshop.Workshop {
	out := make([]workshop.Workshop, 0, len(workshops))
	for _, ws := range workshops {
		out = append(out, ws)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
