package brief

// StepKind selects the interaction pattern a step uses. The renderer
// branches on the kind, never on step keys.
type StepKind int

const (
	// StepText is a free-text entry step.
	StepText StepKind = iota
	// StepSingleSelect picks exactly one option.
	StepSingleSelect
	// StepMultiSelect toggles any number of options.
	StepMultiSelect
	// StepReorder rearranges a fixed list of items.
	StepReorder
)

// Step keys. The catalogue order below is the wizard order.
const (
	StepIdea       = "idea"
	StepType       = "type"
	StepGoals      = "goals"
	StepFeatures   = "features"
	StepStyle      = "style"
	StepAudience   = "audience"
	StepPriorities = "priorities"
	StepSummary    = "summary"
	StepContact    = "contact"
)

// StepDefinition describes one wizard step. The catalogue is fixed at
// construction and never mutated at runtime.
type StepDefinition struct {
	Key        string
	Title      string
	Kind       StepKind
	Options    []string
	AIEligible bool
}

// DefaultPriorities is the initial ordering of the priorities step. The
// list always contains exactly these four labels, only reordered.
var DefaultPriorities = []string{"Budget", "Time", "Quality", "Features"}

var steps = []StepDefinition{
	{
		Key:   StepIdea,
		Title: "What do you want to build?",
		Kind:  StepText,
	},
	{
		Key:     StepType,
		Title:   "What kind of project is it?",
		Kind:    StepSingleSelect,
		Options: []string{"Website", "Web App", "Online Shop", "Landing Page", "Portfolio", "Something Else"},
	},
	{
		Key:        StepGoals,
		Title:      "What should it achieve?",
		Kind:       StepMultiSelect,
		AIEligible: true,
		Options: []string{
			"Sell products", "Get leads", "Share information",
			"Build a community", "Showcase work", "Book appointments",
		},
	},
	{
		Key:        StepFeatures,
		Title:      "Which features do you need?",
		Kind:       StepMultiSelect,
		AIEligible: true,
		Options: []string{
			"Contact form", "Payments", "Blog", "User accounts",
			"Search", "Gallery", "Newsletter", "Live chat",
		},
	},
	{
		Key:        StepStyle,
		Title:      "What should it feel like?",
		Kind:       StepMultiSelect,
		AIEligible: true,
		Options: []string{
			"Clean & Simple", "Bold & Colorful", "Elegant & Premium",
			"Playful & Fun", "Dark & Moody", "Warm & Friendly",
		},
	},
	{
		Key:        StepAudience,
		Title:      "Who is it for?",
		Kind:       StepMultiSelect,
		AIEligible: true,
		Options: []string{
			"Customers", "Businesses", "Local community",
			"Creatives", "Professionals", "Everyone",
		},
	},
	{
		Key:     StepPriorities,
		Title:   "Rank what matters most",
		Kind:    StepReorder,
		Options: DefaultPriorities,
	},
	{
		Key:   StepSummary,
		Title: "Anything to add?",
		Kind:  StepText,
	},
	{
		Key:   StepContact,
		Title: "Where should we send the result?",
		Kind:  StepText,
	},
}

// Steps returns the ordered step catalogue.
func Steps() []StepDefinition {
	return steps
}

// StepCount returns the number of wizard steps.
func StepCount() int {
	return len(steps)
}
