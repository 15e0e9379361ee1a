package pricing

import (
	"fmt"
	"math"
	"unicode/utf8"
)

// Pricing constants for the hosted provider. Prices are per generation
// in the account currency; the ceiling is a pre-flight guardrail, not a
// billing ledger.
const (
	// PricePer1KTokens is the blended text price per 1000 tokens.
	PricePer1KTokens = 0.03

	// MaxOutputTokens is the output allowance assumed for every quote
	// generation when estimating cost.
	MaxOutputTokens = 300

	// ImagePrice is the flat price of one preview image render.
	ImagePrice = 0.04

	// BudgetCeiling is the hard estimate ceiling; requests estimated at
	// or above it are rejected before reaching the provider.
	BudgetCeiling = 0.10
)

// BudgetDecision is the result of a pre-flight budget check.
type BudgetDecision struct {
	WithinBudget  bool    `json:"within_budget"`
	EstimatedCost float64 `json:"estimated_cost"`
}

// EstimateTokens estimates the token count of a text.
// Uses the approximation that 1 token ≈ 4 characters, rounding up.
func EstimateTokens(text string) int {
	if len(text) == 0 {
		return 0
	}
	return int(math.Ceil(float64(len(text)) / 4.0))
}

// EstimateCost calculates the estimated text cost for given token counts.
func EstimateCost(inputTokens, outputTokens int) float64 {
	return float64(inputTokens+outputTokens) / 1000.0 * PricePer1KTokens
}

// EstimateTotalCost estimates the full cost of one generation: the input
// tokens plus the fixed output allowance, plus the image render when one
// is requested.
func EstimateTotalCost(textTokens int, withImage bool) float64 {
	cost := EstimateCost(textTokens, MaxOutputTokens)
	if withImage {
		cost += ImagePrice
	}
	return cost
}

// CheckBudget estimates the cost of generating a quote (image included)
// from the given input text and compares it against the ceiling. The
// check is advisory: it gates requests, it does not meter actual spend.
func CheckBudget(inputText string) BudgetDecision {
	cost := EstimateTotalCost(EstimateTokens(inputText), true)
	return BudgetDecision{
		WithinBudget:  cost < BudgetCeiling,
		EstimatedCost: cost,
	}
}

// TruncateText returns text unchanged when it fits within max bytes;
// otherwise it returns the first max-3 bytes followed by "...". The cut
// never splits a multi-byte rune, so the result is always valid UTF-8
// and never longer than max.
func TruncateText(text string, max int) string {
	if len(text) <= max {
		return text
	}
	cut := max
	marker := ""
	if max > 3 {
		cut = max - 3
		marker = "..."
	}
	for cut > 0 && !utf8.RuneStart(text[cut]) {
		cut--
	}
	return text[:cut] + marker
}

// FormatCost formats a cost for display.
// Uses appropriate precision based on the magnitude.
func FormatCost(cost float64) string {
	if cost < 0.001 {
		return fmt.Sprintf("£%.4f", cost)
	}
	if cost < 0.01 {
		return fmt.Sprintf("£%.3f", cost)
	}
	return fmt.Sprintf("£%.2f", cost)
}

// FormatTokens formats a token count for display.
// Uses k suffix for thousands.
func FormatTokens(tokens int) string {
	if tokens < 1000 {
		return fmt.Sprintf("%d", tokens)
	}
	if tokens < 10000 {
		return fmt.Sprintf("%.1fk", float64(tokens)/1000)
	}
	return fmt.Sprintf("%dk", tokens/1000)
}
