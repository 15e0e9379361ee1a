package brief

import (
	"fmt"
	"strings"
)

// Brief is the accumulated wizard input. It lives for one wizard run;
// only generated results are persisted, never the brief itself.
type Brief struct {
	Idea        string   `json:"idea"`
	ProjectType string   `json:"project_type"`
	Goals       []string `json:"goals"`
	Features    []string `json:"features"`
	Styles      []string `json:"styles"`
	Audiences   []string `json:"audiences"`
	Priorities  []string `json:"priorities"`
	Summary     string   `json:"summary"`
	Email       string   `json:"email"`
}

// NewBrief returns an empty brief with the default priority ordering.
func NewBrief() Brief {
	priorities := make([]string, len(DefaultPriorities))
	copy(priorities, DefaultPriorities)
	return Brief{Priorities: priorities}
}

// Serialize renders the brief as the free-text block sent to cost
// estimation and prompt building.
func (b Brief) Serialize() string {
	var sb strings.Builder
	sb.WriteString("Idea: " + b.Idea + "\n")
	sb.WriteString("Type: " + b.ProjectType + "\n")
	sb.WriteString("Goals: " + strings.Join(b.Goals, ", ") + "\n")
	sb.WriteString("Features: " + strings.Join(b.Features, ", ") + "\n")
	sb.WriteString("Style: " + strings.Join(b.Styles, ", ") + "\n")
	sb.WriteString("Audience: " + strings.Join(b.Audiences, ", ") + "\n")
	sb.WriteString("Priorities: " + strings.Join(b.Priorities, " > ") + "\n")
	if strings.TrimSpace(b.Summary) != "" {
		sb.WriteString("Notes: " + b.Summary + "\n")
	}
	return sb.String()
}

// ValidationError reports which step blocked forward navigation.
type ValidationError struct {
	Step    string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %s: %s", e.Step, e.Message)
}

// Machine drives the wizard over the fixed step catalogue. States are
// step indexes; Next is gated per step, Back never is.
type Machine struct {
	brief Brief
	index int
}

// NewMachine creates a machine positioned at the first step.
func NewMachine() *Machine {
	return &Machine{brief: NewBrief()}
}

// Brief returns a copy of the current accumulated input.
func (m *Machine) Brief() Brief {
	return m.brief
}

// Index returns the active step index.
func (m *Machine) Index() int {
	return m.index
}

// Current returns the active step definition.
func (m *Machine) Current() StepDefinition {
	return steps[m.index]
}

// AtLast reports whether the machine is on the final step.
func (m *Machine) AtLast() bool {
	return m.index == len(steps)-1
}

// SetIdea stores the free-text idea.
func (m *Machine) SetIdea(text string) { m.brief.Idea = text }

// SetProjectType stores the single-select project type.
func (m *Machine) SetProjectType(t string) { m.brief.ProjectType = t }

// SetSummary stores the editable summary text.
func (m *Machine) SetSummary(text string) { m.brief.Summary = text }

// SetEmail stores the contact email.
func (m *Machine) SetEmail(email string) { m.brief.Email = email }

// Selections returns the current picks for a multi-select step key.
func (m *Machine) Selections(key string) []string {
	if s := m.selectionsFor(key); s != nil {
		return *s
	}
	return nil
}

func (m *Machine) selectionsFor(key string) *[]string {
	switch key {
	case StepGoals:
		return &m.brief.Goals
	case StepFeatures:
		return &m.brief.Features
	case StepStyle:
		return &m.brief.Styles
	case StepAudience:
		return &m.brief.Audiences
	}
	return nil
}

// Toggle adds value to the step's selection set if absent and removes it
// if present. Toggling twice restores the original set.
func (m *Machine) Toggle(key, value string) {
	set := m.selectionsFor(key)
	if set == nil {
		return
	}
	for i, v := range *set {
		if v == value {
			*set = append((*set)[:i], (*set)[i+1:]...)
			return
		}
	}
	*set = append(*set, value)
}

// MovePriority moves the priority at index from to index to, shifting the
// items in between. Out-of-range indexes are ignored.
func (m *Machine) MovePriority(from, to int) {
	p := m.brief.Priorities
	if from < 0 || from >= len(p) || to < 0 || to >= len(p) || from == to {
		return
	}
	item := p[from]
	p = append(p[:from], p[from+1:]...)
	p = append(p[:to], append([]string{item}, p[to:]...)...)
	m.brief.Priorities = p
}

// CanAdvance reports whether the active step's validation predicate
// passes.
func (m *Machine) CanAdvance() bool {
	return m.validate(steps[m.index]) == nil
}

// Validate returns the active step's validation error, or nil when the
// step is complete.
func (m *Machine) Validate() error {
	return m.validate(steps[m.index])
}

func (m *Machine) validate(def StepDefinition) error {
	switch def.Key {
	case StepIdea:
		if strings.TrimSpace(m.brief.Idea) == "" {
			return &ValidationError{Step: def.Key, Message: "describe your idea first"}
		}
	case StepType:
		if m.brief.ProjectType == "" {
			return &ValidationError{Step: def.Key, Message: "pick a project type"}
		}
	case StepGoals, StepFeatures, StepStyle, StepAudience:
		if len(m.Selections(def.Key)) == 0 {
			return &ValidationError{Step: def.Key, Message: "select at least one option"}
		}
	case StepPriorities:
		if len(m.brief.Priorities) != len(DefaultPriorities) {
			return &ValidationError{Step: def.Key, Message: "priority list is incomplete"}
		}
	case StepContact:
		if strings.TrimSpace(m.brief.Email) == "" {
			return &ValidationError{Step: def.Key, Message: "enter an email address"}
		}
	}
	// Summary has no gate.
	return nil
}

// Next advances to the following step when the active step validates.
// It reports whether the index changed; past the last step it is a no-op.
func (m *Machine) Next() bool {
	if m.index >= len(steps)-1 {
		return false
	}
	if !m.CanAdvance() {
		return false
	}
	m.index++
	return true
}

// Back moves to the previous step. Going back never re-validates; below
// step zero it is a no-op.
func (m *Machine) Back() bool {
	if m.index <= 0 {
		return false
	}
	m.index--
	return true
}

// Finish validates every step and returns the completed brief. It is the
// terminal action, available only once all gates pass.
func (m *Machine) Finish() (Brief, error) {
	for _, def := range steps {
		if err := m.validate(def); err != nil {
			return Brief{}, err
		}
	}
	return m.brief, nil
}
