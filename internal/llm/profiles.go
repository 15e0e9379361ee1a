package llm

import "os"

// DefaultProfileName is used when nothing is configured.
const DefaultProfileName = "designer"

// Profile selects the model and sampling settings for a completion.
// Each backend resolves its own model name from the profile.
type Profile struct {
	Name           string
	OpenAIModel    string
	AnthropicModel string
	MaxTokens      int
	Temperature    float32
}

// Profiles is the catalogue of selectable model profiles.
var Profiles = map[string]Profile{
	"designer": {
		Name:           "designer",
		OpenAIModel:    "gpt-4o",
		AnthropicModel: "claude-sonnet-4-20250514",
		MaxTokens:      600,
		Temperature:    0.8,
	},
	"fast": {
		Name:           "fast",
		OpenAIModel:    "gpt-4o-mini",
		AnthropicModel: "claude-3-5-haiku-20241022",
		MaxTokens:      400,
		Temperature:    0.7,
	},
	"quality": {
		Name:           "quality",
		OpenAIModel:    "gpt-4o",
		AnthropicModel: "claude-opus-4-20250514",
		MaxTokens:      800,
		Temperature:    0.6,
	},
}

// ProfileByName resolves a profile, falling back to the default for an
// empty or unknown name.
func ProfileByName(name string) Profile {
	if name == "" {
		name = os.Getenv("QUOTEWIZ_PROFILE")
	}
	if p, ok := Profiles[name]; ok {
		return p
	}
	return Profiles[DefaultProfileName]
}

// ProfileNames lists the selectable profile names in menu order.
func ProfileNames() []string {
	return []string{"designer", "fast", "quality"}
}
