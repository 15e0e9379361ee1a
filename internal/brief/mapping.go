package brief

import (
	"strings"

	"quotewiz/internal/quote"
)

// moduleTags maps feature labels to the short module tags the provider
// prompt and renderer work with.
var moduleTags = map[string]string{
	"Contact form":  "contact",
	"Payments":      "payments",
	"Blog":          "blog",
	"User accounts": "accounts",
	"Search":        "search",
	"Gallery":       "gallery",
	"Newsletter":    "newsletter",
	"Live chat":     "chat",
}

// ctaByGoal picks a call-to-action label from the first selected goal.
var ctaByGoal = map[string]string{
	"Sell products":     "Shop Now",
	"Get leads":         "Get a Quote",
	"Share information": "Learn More",
	"Build a community": "Join Us",
	"Showcase work":     "See the Work",
	"Book appointments": "Book Now",
}

// layoutByType picks a layout key from the project type.
var layoutByType = map[string]string{
	"Online Shop":  "storefront",
	"Landing Page": "hero-cta",
	"Portfolio":    "gallery-grid",
}

// GenerateInput derives the provider input from a finished brief.
func (b Brief) GenerateInput() quote.GenerateInput {
	input := quote.GenerateInput{
		ProjectType: b.ProjectType,
		Layout:      "hero-features",
		Theme:       "light",
		CTA:         "Get Started",
		Brand:       strings.TrimSpace(b.Summary),
	}

	if layout, ok := layoutByType[b.ProjectType]; ok {
		input.Layout = layout
	}
	if len(b.Styles) > 0 {
		input.Vibe = b.Styles[0]
	}
	for _, style := range b.Styles {
		if strings.Contains(style, "Dark") {
			input.Theme = "dark"
			break
		}
	}
	if len(b.Goals) > 0 {
		if cta, ok := ctaByGoal[b.Goals[0]]; ok {
			input.CTA = cta
		}
	}

	for _, feature := range b.Features {
		tag, ok := moduleTags[feature]
		if !ok {
			tag = strings.ToLower(strings.TrimSpace(feature))
		}
		if tag != "" {
			input.Modules = append(input.Modules, tag)
		}
	}

	return input
}
