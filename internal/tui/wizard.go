package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"quotewiz/internal/brief"
	"quotewiz/internal/pricing"
	"quotewiz/internal/quote"
)

// AdviseFunc fetches advisory hints for one step. A nil func disables
// the assistant panel entirely.
type AdviseFunc func(ctx context.Context, req quote.AssistRequest) quote.AssistResponse

type adviceMsg struct {
	key  string
	resp quote.AssistResponse
}

// Wizard is the Bubble Tea model driving brief collection.
type Wizard struct {
	machine *brief.Machine
	adviser AdviseFunc

	input  textinput.Model
	spin   spinner.Model
	cursor int

	advising  bool
	advice    quote.AssistResponse
	adviceFor map[string]quote.AssistResponse

	errMsg    string
	cancelled bool
	done      bool
	result    brief.Brief
	width     int
}

// NewWizard creates a wizard model positioned at the first step.
func NewWizard(adviser AdviseFunc) Wizard {
	ti := textinput.New()
	ti.CharLimit = 500
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = SpinnerStyle

	w := Wizard{
		machine:   brief.NewMachine(),
		adviser:   adviser,
		input:     ti,
		spin:      s,
		adviceFor: make(map[string]quote.AssistResponse),
	}
	w.syncInput()
	return w
}

func (w Wizard) Init() tea.Cmd {
	return textinput.Blink
}

// adviceKey identifies one advisory fetch. Revisiting a step only
// refetches when the idea or project type changed in between.
func (w *Wizard) adviceKey() string {
	b := w.machine.Brief()
	return w.machine.Current().Key + "|" + b.Idea + "|" + b.ProjectType
}

// enterStep resets per-step view state and kicks off an advisory fetch
// when the new step wants one.
func (w *Wizard) enterStep() tea.Cmd {
	w.cursor = 0
	w.errMsg = ""
	w.advising = false
	w.advice = quote.AssistResponse{}
	w.syncInput()

	def := w.machine.Current()
	if !def.AIEligible || w.adviser == nil {
		return nil
	}

	key := w.adviceKey()
	if cached, ok := w.adviceFor[key]; ok {
		w.advice = cached
		return nil
	}

	w.advising = true
	b := w.machine.Brief()
	req := quote.AssistRequest{
		Step:        def.Key,
		ProjectType: b.ProjectType,
		Description: b.Idea,
		Selections:  w.machine.Selections(def.Key),
	}
	adviser := w.adviser
	fetch := func() tea.Msg {
		return adviceMsg{key: key, resp: adviser(context.Background(), req)}
	}
	return tea.Batch(w.spin.Tick, fetch)
}

// syncInput loads the stored value for the active text step.
func (w *Wizard) syncInput() {
	def := w.machine.Current()
	if def.Kind != brief.StepText {
		return
	}
	b := w.machine.Brief()
	switch def.Key {
	case brief.StepIdea:
		w.input.SetValue(b.Idea)
		w.input.Placeholder = "e.g. a site to sell my candles"
	case brief.StepSummary:
		w.input.SetValue(b.Summary)
		w.input.Placeholder = "optional notes, press enter to skip"
	case brief.StepContact:
		w.input.SetValue(b.Email)
		w.input.Placeholder = "you@example.com"
	}
	w.input.CursorEnd()
}

// commitText writes the input buffer into the brief.
func (w *Wizard) commitText() {
	value := w.input.Value()
	switch w.machine.Current().Key {
	case brief.StepIdea:
		w.machine.SetIdea(value)
	case brief.StepSummary:
		w.machine.SetSummary(value)
	case brief.StepContact:
		w.machine.SetEmail(value)
	}
}

func (w Wizard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		w.width = msg.Width
		return w, nil

	case spinner.TickMsg:
		if !w.advising {
			return w, nil
		}
		var cmd tea.Cmd
		w.spin, cmd = w.spin.Update(msg)
		return w, cmd

	case adviceMsg:
		w.adviceFor[msg.key] = msg.resp
		if msg.key == w.adviceKey() {
			w.advising = false
			w.advice = msg.resp
		}
		return w, nil

	case tea.KeyMsg:
		return w.handleKey(msg)
	}

	return w, nil
}

func (w Wizard) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		w.cancelled = true
		return w, tea.Quit
	case "esc":
		if w.machine.Back() {
			return w, w.enterStep()
		}
		w.cancelled = true
		return w, tea.Quit
	}

	def := w.machine.Current()
	switch def.Kind {
	case brief.StepText:
		return w.handleTextKey(msg)
	case brief.StepSingleSelect:
		return w.handleSingleSelectKey(msg, def)
	case brief.StepMultiSelect:
		return w.handleMultiSelectKey(msg, def)
	case brief.StepReorder:
		return w.handleReorderKey(msg)
	}
	return w, nil
}

func (w Wizard) handleTextKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "enter" {
		w.commitText()
		return w.advance()
	}
	var cmd tea.Cmd
	w.input, cmd = w.input.Update(msg)
	w.commitText()
	return w, cmd
}

func (w Wizard) handleSingleSelectKey(msg tea.KeyMsg, def brief.StepDefinition) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < len(def.Options)-1 {
			w.cursor++
		}
	case "enter":
		w.machine.SetProjectType(def.Options[w.cursor])
		return w.advance()
	}
	return w, nil
}

func (w Wizard) handleMultiSelectKey(msg tea.KeyMsg, def brief.StepDefinition) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < len(def.Options)-1 {
			w.cursor++
		}
	case " ":
		w.machine.Toggle(def.Key, def.Options[w.cursor])
		w.errMsg = ""
	case "enter":
		return w.advance()
	}
	return w, nil
}

func (w Wizard) handleReorderKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	priorities := w.machine.Brief().Priorities
	switch msg.String() {
	case "up", "k":
		if w.cursor > 0 {
			w.cursor--
		}
	case "down", "j":
		if w.cursor < len(priorities)-1 {
			w.cursor++
		}
	case "shift+up", "K":
		if w.cursor > 0 {
			w.machine.MovePriority(w.cursor, w.cursor-1)
			w.cursor--
		}
	case "shift+down", "J":
		if w.cursor < len(priorities)-1 {
			w.machine.MovePriority(w.cursor, w.cursor+1)
			w.cursor++
		}
	case "enter":
		return w.advance()
	}
	return w, nil
}

// advance moves forward, or finishes on the last step.
func (w Wizard) advance() (tea.Model, tea.Cmd) {
	if w.machine.AtLast() {
		result, err := w.machine.Finish()
		if err != nil {
			w.errMsg = err.Error()
			return w, nil
		}
		w.result = result
		w.done = true
		return w, tea.Quit
	}
	if !w.machine.Next() {
		if err := w.machine.Validate(); err != nil {
			w.errMsg = err.Error()
		}
		return w, nil
	}
	return w, w.enterStep()
}

func (w Wizard) View() string {
	if w.cancelled || w.done {
		return ""
	}

	def := w.machine.Current()
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("\n  %s  %s\n\n",
		HelpStyle.Render(fmt.Sprintf("Step %d/%d", w.machine.Index()+1, brief.StepCount())),
		TitleStyle.Render(def.Title)))

	switch def.Kind {
	case brief.StepText:
		sb.WriteString("  " + w.input.View() + "\n")
	case brief.StepSingleSelect:
		w.renderSingleSelect(&sb, def)
	case brief.StepMultiSelect:
		w.renderMultiSelect(&sb, def)
	case brief.StepReorder:
		w.renderReorder(&sb)
	}

	if panel := w.advicePanel(); panel != "" {
		sb.WriteString("\n" + panel + "\n")
	}

	if w.errMsg != "" {
		sb.WriteString("\n  " + ErrorStyle.Render(w.errMsg) + "\n")
	}

	sb.WriteString("\n  " + w.costLine() + "\n")
	sb.WriteString(HelpStyle.Render("  " + keyHints(def.Kind)) + "\n")
	return sb.String()
}

func (w Wizard) renderSingleSelect(sb *strings.Builder, def brief.StepDefinition) {
	selected := w.machine.Brief().ProjectType
	for i, opt := range def.Options {
		marker := "( )"
		if opt == selected {
			marker = "(x)"
		}
		line := fmt.Sprintf("%s %s", marker, opt)
		if i == w.cursor {
			line = SelectedStyle.Render("> " + line)
		} else {
			line = UnselectedStyle.Render("  " + line)
		}
		sb.WriteString("  " + line + "\n")
	}
}

func (w Wizard) renderMultiSelect(sb *strings.Builder, def brief.StepDefinition) {
	picked := make(map[string]bool)
	for _, v := range w.machine.Selections(def.Key) {
		picked[v] = true
	}
	for i, opt := range def.Options {
		marker := "[ ]"
		if picked[opt] {
			marker = "[x]"
		}
		line := fmt.Sprintf("%s %s", marker, opt)
		if i == w.cursor {
			line = SelectedStyle.Render("> " + line)
		} else {
			line = UnselectedStyle.Render("  " + line)
		}
		sb.WriteString("  " + line + "\n")
	}
}

func (w Wizard) renderReorder(sb *strings.Builder) {
	for i, p := range w.machine.Brief().Priorities {
		line := fmt.Sprintf("%d. %s", i+1, p)
		if i == w.cursor {
			line = SelectedStyle.Render("> " + line)
		} else {
			line = UnselectedStyle.Render("  " + line)
		}
		sb.WriteString("  " + line + "\n")
	}
}

// advicePanel renders the assistant box, or the fetch spinner while a
// request is in flight. An empty advisory renders nothing at all.
func (w Wizard) advicePanel() string {
	if w.advising {
		return "  " + w.spin.View() + HelpStyle.Render("thinking about this step...")
	}
	if w.advice.Empty() {
		return ""
	}

	var lines []string
	for _, s := range w.advice.Suggestions {
		lines = append(lines, HintStyle.Render("• "+s))
	}
	if w.advice.Question != "" {
		lines = append(lines, HintStyle.Render("? "+w.advice.Question))
	}
	for _, warning := range w.advice.Warnings {
		lines = append(lines, WarningStyle.Render("! "+warning))
	}
	return "  " + HintBoxStyle.Render(strings.Join(lines, "\n"))
}

// costLine shows the running estimate and flags a brief that has grown
// past the ceiling.
func (w Wizard) costLine() string {
	decision := pricing.CheckBudget(w.machine.Brief().Serialize())
	line := CostStyle.Render("Estimated cost: " + pricing.FormatCost(decision.EstimatedCost))
	if !decision.WithinBudget {
		line += "  " + ErrorStyle.Render("over the "+pricing.FormatCost(pricing.BudgetCeiling)+" ceiling, shorten your answers")
	}
	return line
}

func keyHints(kind brief.StepKind) string {
	switch kind {
	case brief.StepText:
		return "enter: continue • esc: back • ctrl+c: quit"
	case brief.StepSingleSelect:
		return "↑/↓: navigate • enter: select • esc: back"
	case brief.StepMultiSelect:
		return "↑/↓: navigate • space: toggle • enter: continue • esc: back"
	case brief.StepReorder:
		return "↑/↓: navigate • shift+↑/↓: move • enter: continue • esc: back"
	}
	return ""
}

// RunWizard runs the interactive wizard and returns the finished brief.
// The second return value reports cancellation.
func RunWizard(adviser AdviseFunc) (brief.Brief, bool, error) {
	p := tea.NewProgram(NewWizard(adviser))
	final, err := p.Run()
	if err != nil {
		return brief.Brief{}, false, fmt.Errorf("wizard failed: %w", err)
	}

	w, ok := final.(Wizard)
	if !ok {
		return brief.Brief{}, false, fmt.Errorf("unexpected wizard model type")
	}
	if w.cancelled || !w.done {
		return brief.Brief{}, true, nil
	}
	return w.result, false, nil
}
