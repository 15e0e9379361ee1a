package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"quotewiz/internal/brief"
	"quotewiz/internal/store"
)

var (
	regenFeedback  string
	regenBriefPath string
)

// RegenCmd represents the regen command.
var RegenCmd = &cobra.Command{
	Use:   "regen [number]",
	Short: "Regenerate a quote from a cached result or saved brief",
	Long: `Regenerate a quote without walking the wizard again.

By default the most recent cached result is used; pass a number from
'quotewiz recent' to pick another. Feedback is folded into the brief's
notes before regeneration, so the new quote reflects it.

Example:
  quotewiz regen
  quotewiz regen 3 --feedback "warmer copy, mention free shipping"
  quotewiz regen --brief brief.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRegen,
}

func init() {
	addProviderFlags(RegenCmd)
	RegenCmd.Flags().StringVarP(&regenFeedback, "feedback", "f", "", "Adjustment to fold into the brief notes")
	RegenCmd.Flags().StringVar(&regenBriefPath, "brief", "", "Regenerate from a brief saved with 'wizard --save-brief'")
	RegenCmd.Flags().StringVarP(&wizardOut, "out", "o", "", "Save the regenerated spec as JSON")
	RegenCmd.Flags().BoolVar(&wizardNoImage, "no-image", false, "Skip the mock image")
}

func runRegen(c *cobra.Command, args []string) error {
	st := store.DefaultStore()
	logger := newLogger()

	b, err := resolveBrief(st, args)
	if err != nil {
		return err
	}

	if regenFeedback != "" {
		if strings.TrimSpace(b.Summary) == "" {
			b.Summary = regenFeedback
		} else {
			b.Summary = b.Summary + ". " + regenFeedback
		}
	}

	cfg, err := loadConfig(c, st)
	if err != nil {
		return err
	}
	generator, _, err := buildGateways(cfg, logger)
	if err != nil {
		return err
	}

	fmt.Printf("Regenerating %q...\n", b.Idea)
	result, err := generateFromBrief(context.Background(), generator, st, b)
	if err != nil {
		return err
	}

	printResult(result)

	if wizardOut != "" {
		if err := saveJSONFile(wizardOut, result.Spec); err != nil {
			return fmt.Errorf("failed to save spec: %w", err)
		}
		fmt.Printf("Saved spec to: %s\n", wizardOut)
	}

	return nil
}

// resolveBrief picks the source brief: an explicit file, or the n-th
// cached result (1 = newest).
func resolveBrief(st *store.Store, args []string) (brief.Brief, error) {
	if regenBriefPath != "" {
		return loadBriefFile(regenBriefPath)
	}

	recent := st.LoadRecent()
	if len(recent) == 0 {
		return brief.Brief{}, fmt.Errorf("no cached results - run 'quotewiz wizard' first or pass --brief")
	}

	index := 1
	if len(args) == 1 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return brief.Brief{}, fmt.Errorf("invalid result number %q", args[0])
		}
		index = n
	}
	if index < 1 || index > len(recent) {
		return brief.Brief{}, fmt.Errorf("result number %d out of range (have %d)", index, len(recent))
	}

	return recent[index-1].Brief, nil
}
