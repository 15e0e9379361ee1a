package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"quotewiz/internal/brief"
	"quotewiz/internal/gateway"
	"quotewiz/internal/pricing"
	"quotewiz/internal/store"
	"quotewiz/internal/tui"
)

var (
	wizardOut       string
	wizardSaveBrief string
	wizardNoAssist  bool
	wizardNoImage   bool
)

// WizardCmd represents the wizard command.
var WizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Walk through the requirements wizard and generate a quote",
	Long: `Collect a project brief step by step, then generate a mock UI spec.

The wizard walks nine steps: idea, project type, goals, features, style,
audience, priorities, notes and contact. On eligible steps an assistant
offers suggestions; hints are advisory and never block you.

Generation is gated by a cost estimate: a brief that would exceed the
ceiling is rejected before any provider call is made.

Example:
  quotewiz wizard
  quotewiz wizard --profile fast --out spec.json
  quotewiz wizard --save-brief brief.json --no-assist`,
	RunE: runWizard,
}

func init() {
	addProviderFlags(WizardCmd)
	WizardCmd.Flags().StringVarP(&wizardOut, "out", "o", "", "Save the generated spec as JSON")
	WizardCmd.Flags().StringVar(&wizardSaveBrief, "save-brief", "", "Save the collected brief as JSON (usable with 'regen --brief')")
	WizardCmd.Flags().BoolVar(&wizardNoAssist, "no-assist", false, "Disable per-step assistant hints")
	WizardCmd.Flags().BoolVar(&wizardNoImage, "no-image", false, "Skip the mock image")
}

func runWizard(c *cobra.Command, args []string) error {
	st := store.DefaultStore()
	logger := newLogger()

	cfg, err := loadConfig(c, st)
	if err != nil {
		return err
	}

	generator, assistant, err := buildGateways(cfg, logger)
	if err != nil {
		return err
	}

	var adviser tui.AdviseFunc
	if !wizardNoAssist {
		adviser = assistant.Suggest
	}

	b, cancelled, err := tui.RunWizard(adviser)
	if err != nil {
		return err
	}
	if cancelled {
		fmt.Println("Wizard cancelled")
		return nil
	}

	if wizardSaveBrief != "" {
		if err := saveJSONFile(wizardSaveBrief, b); err != nil {
			return fmt.Errorf("failed to save brief: %w", err)
		}
		fmt.Printf("Saved brief to: %s\n", wizardSaveBrief)
	}

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

// generateFromBrief runs the budget gate, generation and cache write
// for one brief. It is shared by wizard and regen.
func generateFromBrief(ctx context.Context, generator *gateway.Generator, st *store.Store, b brief.Brief) (store.Result, error) {
	text := b.Serialize()
	decision := pricing.CheckBudget(text)
	fmt.Printf("\nEstimated cost: %s (%s input)\n",
		tui.CostStyle.Render(pricing.FormatCost(decision.EstimatedCost)),
		pricing.FormatTokens(pricing.EstimateTokens(text)))
	if !decision.WithinBudget {
		return store.Result{}, fmt.Errorf("estimated cost %s exceeds the %s ceiling - shorten your answers and try again",
			pricing.FormatCost(decision.EstimatedCost), pricing.FormatCost(pricing.BudgetCeiling))
	}

	fmt.Println("Generating your quote...")
	spec, err := generator.GenerateQuoteSpec(ctx, b.GenerateInput())
	if err != nil {
		return store.Result{}, err
	}

	if !wizardNoImage {
		fmt.Println("Rendering the mock image...")
		spec.ImageURL = generator.GenerateImage(ctx, spec.ImagePrompt)
	}

	result, err := st.RecordResult(store.Result{Brief: b, Spec: spec, Cost: decision.EstimatedCost})
	if err != nil {
		// A cache write problem should not eat a finished quote.
		fmt.Fprintf(os.Stderr, "warning: could not cache the result: %v\n", err)
		result = store.Result{Brief: b, Spec: spec, Cost: decision.EstimatedCost}
	}
	return result, nil
}

func printResult(result store.Result) {
	spec := result.Spec

	fmt.Println()
	fmt.Println(tui.TitleStyle.Render(spec.Title))
	fmt.Println("  " + spec.Headline)
	fmt.Println("  " + tui.HelpStyle.Render(spec.Subheadline))
	fmt.Println()
	fmt.Println("  " + spec.Description)
	fmt.Println()
	if len(spec.Features) > 0 {
		fmt.Println("  Features:")
		for _, f := range spec.Features {
			fmt.Printf("    - %s\n", f)
		}
	}
	if len(spec.Modules) > 0 {
		fmt.Printf("  Modules: %s\n", strings.Join(spec.Modules, ", "))
	}
	fmt.Printf("  Layout: %s, theme: %s\n", spec.Layout, spec.Theme)
	fmt.Printf("  Call to action: %s\n", tui.SuccessStyle.Render(spec.CTA))
	if spec.ImageURL != "" {
		fmt.Printf("  Mock image: %s\n", spec.ImageURL)
	}
	fmt.Println()
	fmt.Printf("  %s\n", tui.CostStyle.Render("Cost: "+pricing.FormatCost(result.Cost)))
}

func saveJSONFile(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// loadBriefFile reads a brief saved with --save-brief.
func loadBriefFile(path string) (brief.Brief, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return brief.Brief{}, fmt.Errorf("failed to read brief: %w", err)
	}
	var b brief.Brief
	if err := json.Unmarshal(data, &b); err != nil {
		return brief.Brief{}, fmt.Errorf("failed to parse brief: %w", err)
	}
	return b, nil
}
