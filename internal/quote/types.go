package quote

// Field limits for a normalized QuoteSpec. Every text field is truncated
// to its limit before a spec is returned to a caller, regardless of what
// the provider sent back.
const (
	MaxTitleLen       = 40
	MaxHeadlineLen    = 60
	MaxSubheadlineLen = 100
	MaxDescriptionLen = 200
	MaxCTALen         = 20
	MaxImagePromptLen = 300

	MaxFeatures   = 5
	MaxFeatureLen = 50
	MaxModules    = 8
	MaxModuleLen  = 30
)

// Advisory shape limits.
const (
	MaxSuggestions    = 3
	MaxWarnings       = 2
	MaxNoteLen        = 100
	MaxDescriptionIn  = 200
	MaxSelectionsSent = 10
)

// QuoteSpec is the normalized result of a generation request. Specs are
// immutable after creation; the most recent few are kept in the client
// cache for redisplay.
type QuoteSpec struct {
	Title        string   `json:"title"`
	Headline     string   `json:"headline"`
	Subheadline  string   `json:"subheadline"`
	Features     []string `json:"features"`
	Modules      []string `json:"modules"`
	Description  string   `json:"description"`
	ImagePrompt  string   `json:"image_prompt"`
	Layout       string   `json:"layout"`
	Theme        string   `json:"theme"`
	CTA          string   `json:"cta"`
	ImageURL     string   `json:"image_url,omitempty"`
}

// GenerateInput is the validated, brief-derived input to quote
// generation. The CTA is expected to be within its limit already; the
// sanitizer enforces it again regardless.
type GenerateInput struct {
	ProjectType string   `json:"type"`
	Vibe        string   `json:"vibe"`
	Layout      string   `json:"layout"`
	Modules     []string `json:"modules"`
	Theme       string   `json:"theme"`
	CTA         string   `json:"cta"`
	Brand       string   `json:"brand,omitempty"`
}

// AssistRequest asks for advisory help on one AI-eligible wizard step.
type AssistRequest struct {
	Step        string   `json:"step"`
	ProjectType string   `json:"projectType"`
	Description string   `json:"description"`
	Selections  []string `json:"selections"`
}

// AssistResponse carries the per-step advisory bundle. All fields are
// optional; an empty response is the fail-open result for any error.
type AssistResponse struct {
	Suggestions []string `json:"suggestions,omitempty"`
	Question    string   `json:"question,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
}

// Empty reports whether the response carries no advisory content.
func (r AssistResponse) Empty() bool {
	return len(r.Suggestions) == 0 && r.Question == "" && len(r.Warnings) == 0
}

// RawSpec is the untrusted provider-shaped record. It exists so that a
// failed parse and a successful-but-partial parse flow through the same
// sanitize path.
type RawSpec struct {
	Title       string   `json:"title"`
	Headline    string   `json:"headline"`
	Subheadline string   `json:"subheadline"`
	Features    []string `json:"features"`
	Modules     []string `json:"modules"`
	Description string   `json:"description"`
	ImagePrompt string   `json:"image_prompt"`
	Layout      string   `json:"layout"`
	Theme       string   `json:"theme"`
	CTA         string   `json:"cta"`
}
