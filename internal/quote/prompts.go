package quote

import (
	"fmt"
	"strings"

	"quotewiz/internal/pricing"
)

// QuoteSystemPrompt instructs the provider to emit one strict JSON object
// describing a UI mock. The sanitizer enforces every limit again, so the
// prompt's constraints are guidance, not a guarantee.
const QuoteSystemPrompt = `You are a UI concept writer. You receive a short project description and output ONLY valid JSON. No explanations, no commentary, no markdown - just the JSON object.

Return a JSON object with exactly these fields:
{
  "title": "short project title (max 40 chars)",
  "headline": "hero headline (max 60 chars)",
  "subheadline": "supporting line (max 100 chars)",
  "features": ["up to 5 short feature bullets, max 50 chars each"],
  "modules": ["up to 8 short module tags, max 30 chars each"],
  "description": "one-paragraph pitch (max 200 chars)",
  "image_prompt": "a prompt for an image model rendering the UI mock (max 300 chars)",
  "layout": "layout key",
  "theme": "theme key",
  "cta": "call-to-action label (max 20 chars)"
}

OUTPUT REQUIREMENTS (CRITICAL):
- Return ONLY the JSON object - no text before or after
- No markdown fencing
- Start your response with { and end with }`

// AssistSystemPrompt instructs the provider to return a small advisory
// bundle for one wizard step. Every field is optional.
const AssistSystemPrompt = `You are a friendly requirements assistant helping someone fill in a project wizard. You output ONLY valid JSON. No explanations, no markdown.

Return a JSON object with any of these optional fields:
{
  "suggestions": ["up to 3 short, concrete suggestions for this step"],
  "question": "one short clarifying question, if something important is unclear",
  "warnings": ["up to 2 short warnings about conflicts or common pitfalls"]
}

Keep every string under 100 characters. If you have nothing useful to add, return {}.`

// BuildQuotePrompt renders the user prompt for quote generation.
func BuildQuotePrompt(input GenerateInput) string {
	var sb strings.Builder
	sb.WriteString("Create a UI concept for the following project.\n\n")
	fmt.Fprintf(&sb, "Project type: %s\n", input.ProjectType)
	if input.Vibe != "" {
		fmt.Fprintf(&sb, "Visual style: %s\n", input.Vibe)
	}
	fmt.Fprintf(&sb, "Layout: %s\n", input.Layout)
	fmt.Fprintf(&sb, "Modules: %s\n", strings.Join(input.Modules, ", "))
	fmt.Fprintf(&sb, "Theme: %s\n", input.Theme)
	fmt.Fprintf(&sb, "Call to action: %s\n", input.CTA)
	if strings.TrimSpace(input.Brand) != "" {
		fmt.Fprintf(&sb, "Brand notes: %s\n", pricing.TruncateText(input.Brand, MaxDescriptionLen))
	}
	sb.WriteString("\nUse the given layout, theme, modules and call to action as-is. Invent the copy around them.")
	return sb.String()
}

// BuildAssistPrompt renders the user prompt for a step advisory request.
// The description is truncated and the selection list capped before the
// provider sees them.
func BuildAssistPrompt(req AssistRequest) string {
	selections := req.Selections
	if len(selections) > MaxSelectionsSent {
		selections = selections[:MaxSelectionsSent]
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "The user is on the %q step of the project wizard.\n", req.Step)
	if req.ProjectType != "" {
		fmt.Fprintf(&sb, "Project type: %s\n", req.ProjectType)
	}
	if strings.TrimSpace(req.Description) != "" {
		fmt.Fprintf(&sb, "Their idea: %s\n", pricing.TruncateText(req.Description, MaxDescriptionIn))
	}
	if len(selections) > 0 {
		fmt.Fprintf(&sb, "Current selections: %s\n", strings.Join(selections, ", "))
	} else {
		sb.WriteString("They have not selected anything yet.\n")
	}
	sb.WriteString("\nSuggest what else might fit, ask at most one clarifying question, and warn about anything that conflicts.")
	return sb.String()
}
