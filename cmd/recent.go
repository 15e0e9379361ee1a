package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"quotewiz/internal/pricing"
	"quotewiz/internal/store"
	"quotewiz/internal/tui"
)

var recentJSON bool

// RecentCmd represents the recent command.
var RecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "List the most recent generated quotes",
	Long: `Show the cached results of the last few wizard runs, newest first.

Only the last five results are kept. Use 'quotewiz regen <number>' to
regenerate one of them.`,
	RunE: runRecent,
}

func init() {
	RecentCmd.Flags().BoolVar(&recentJSON, "json", false, "Print the full cached results as JSON")
}

func runRecent(c *cobra.Command, args []string) error {
	st := store.DefaultStore()
	recent := st.LoadRecent()

	if len(recent) == 0 {
		fmt.Println("No recent quotes. Run 'quotewiz wizard' to create one.")
		return nil
	}

	if recentJSON {
		return printJSON(recent)
	}

	for i, r := range recent {
		fmt.Printf("%d. %s  %s\n", i+1,
			tui.TitleStyle.Render(r.Spec.Title),
			tui.CostStyle.Render(pricing.FormatCost(r.Cost)))
		fmt.Printf("   %s  %s\n",
			tui.HelpStyle.Render(r.CreatedAt.Local().Format("2006-01-02 15:04")),
			tui.HelpStyle.Render(r.Brief.ProjectType))
	}
	return nil
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
