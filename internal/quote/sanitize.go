package quote

import (
	"encoding/json"
	"strings"

	"quotewiz/internal/pricing"
)

// Sanitize merges an untrusted provider record with context-derived
// fallbacks and enforces every field limit. It is the single code path
// for both parse failures (zero RawSpec) and partial parses: never trust
// the upstream model's output shape or length.
func Sanitize(raw RawSpec, input GenerateInput) QuoteSpec {
	spec := QuoteSpec{
		Title:       pick(raw.Title, fallbackTitle(input)),
		Headline:    pick(raw.Headline, "A tailored concept, ready to refine"),
		Subheadline: pick(raw.Subheadline, "Here is a first look at how your idea could come together."),
		Description: pick(raw.Description, fallbackDescription(input)),
		ImagePrompt: pick(raw.ImagePrompt, fallbackImagePrompt(input)),
		Layout:      pick(raw.Layout, input.Layout),
		Theme:       pick(raw.Theme, input.Theme),
		CTA:         pick(raw.CTA, input.CTA),
	}

	spec.Title = pricing.TruncateText(spec.Title, MaxTitleLen)
	spec.Headline = pricing.TruncateText(spec.Headline, MaxHeadlineLen)
	spec.Subheadline = pricing.TruncateText(spec.Subheadline, MaxSubheadlineLen)
	spec.Description = pricing.TruncateText(spec.Description, MaxDescriptionLen)
	spec.ImagePrompt = pricing.TruncateText(spec.ImagePrompt, MaxImagePromptLen)
	spec.CTA = pricing.TruncateText(spec.CTA, MaxCTALen)

	features := raw.Features
	if len(features) == 0 {
		features = defaultFeatures
	}
	spec.Features = capList(features, MaxFeatures, MaxFeatureLen)

	modules := raw.Modules
	if len(modules) == 0 {
		modules = input.Modules
	}
	spec.Modules = capList(modules, MaxModules, MaxModuleLen)

	return spec
}

// FallbackSpec builds the guaranteed-valid spec used when the provider
// response could not be parsed at all.
func FallbackSpec(input GenerateInput) QuoteSpec {
	return Sanitize(RawSpec{}, input)
}

// ParseSpec turns raw provider text into a normalized QuoteSpec. Parse
// failures are absorbed: the result always satisfies the spec limits.
func ParseSpec(output string, input GenerateInput) QuoteSpec {
	jsonStr := ExtractJSON(output)
	if jsonStr == "" {
		return FallbackSpec(input)
	}
	var raw RawSpec
	if err := json.Unmarshal([]byte(jsonStr), &raw); err != nil {
		return FallbackSpec(input)
	}
	return Sanitize(raw, input)
}

// ParseAssist turns raw provider text into an advisory response, capping
// every field. Any parse failure yields the empty response.
func ParseAssist(output string) AssistResponse {
	jsonStr := ExtractJSON(output)
	if jsonStr == "" {
		return AssistResponse{}
	}
	var resp AssistResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		return AssistResponse{}
	}
	resp.Suggestions = capList(resp.Suggestions, MaxSuggestions, MaxNoteLen)
	resp.Warnings = capList(resp.Warnings, MaxWarnings, MaxNoteLen)
	resp.Question = pricing.TruncateText(resp.Question, MaxNoteLen)
	return resp
}

var defaultFeatures = []string{
	"Clear navigation",
	"Responsive layout",
	"Contact section",
}

func pick(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func capList(items []string, maxItems, maxLen int) []string {
	out := make([]string, 0, maxItems)
	for _, item := range items {
		if strings.TrimSpace(item) == "" {
			continue
		}
		out = append(out, pricing.TruncateText(item, maxLen))
		if len(out) == maxItems {
			break
		}
	}
	return out
}

func fallbackTitle(input GenerateInput) string {
	if input.ProjectType != "" {
		return "Your New " + input.ProjectType
	}
	return "Your New Project"
}

func fallbackDescription(input GenerateInput) string {
	desc := "A custom concept built around your goals"
	if input.Vibe != "" {
		desc += " with a " + strings.ToLower(input.Vibe) + " feel"
	}
	return desc + "."
}

func fallbackImagePrompt(input GenerateInput) string {
	return strings.TrimSpace("Modern UI mockup for a " + strings.ToLower(strings.TrimSpace(input.ProjectType+" "+input.Vibe)) + " design, clean composition, soft lighting")
}

// ExtractJSON extracts a JSON object from provider output, stripping
// markdown fences and surrounding commentary.
func ExtractJSON(output string) string {
	output = strings.TrimSpace(output)

	if strings.HasPrefix(output, "```json") {
		output = strings.TrimPrefix(output, "```json")
		if idx := strings.LastIndex(output, "```"); idx != -1 {
			output = output[:idx]
		}
		output = strings.TrimSpace(output)
	} else if strings.HasPrefix(output, "```") {
		output = strings.TrimPrefix(output, "```")
		if idx := strings.LastIndex(output, "```"); idx != -1 {
			output = output[:idx]
		}
		output = strings.TrimSpace(output)
	}

	start := strings.Index(output, "{")
	end := strings.LastIndex(output, "}")
	if start == -1 || end == -1 || end < start {
		return ""
	}

	return output[start : end+1]
}
