package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"quotewiz/internal/llm"
	"quotewiz/internal/store"
	"quotewiz/internal/tui"
)

var resetConfig bool

// SetupCmd represents the setup command.
var SetupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Pick the model profile used for generation",
	Long: `Configure quotewiz with an interactive picker.

Profiles trade speed against output quality:
- designer: balanced default for quote generation
- fast:     cheapest and quickest, good for experimenting
- quality:  slower, for briefs you want to get right

The choice is saved under ~/.quotewiz and used until changed.`,
	RunE: runSetup,
}

func init() {
	SetupCmd.Flags().BoolVar(&resetConfig, "reset", false, "Reset configuration to defaults")
}

var profileDescriptions = map[string]string{
	"designer": "Balanced default for quote generation",
	"fast":     "Cheapest and quickest",
	"quality":  "Slower, strongest copywriting",
}

func runSetup(cmd *cobra.Command, args []string) error {
	st := store.DefaultStore()

	if resetConfig {
		if err := st.Reset(); err != nil {
			return fmt.Errorf("failed to reset: %w", err)
		}
		if home, err := os.UserHomeDir(); err == nil {
			configPath := filepath.Join(home, ".quotewiz.yaml")
			if err := os.Remove(configPath); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("failed to remove config: %w", err)
			}
		}
		fmt.Println(tui.SuccessStyle.Render("✓") + " Configuration reset to defaults")
		return nil
	}

	p := tea.NewProgram(newSetupModel())
	m, err := p.Run()
	if err != nil {
		return fmt.Errorf("setup failed: %w", err)
	}

	finalModel := m.(setupModel)
	if finalModel.cancelled {
		fmt.Println("Setup cancelled")
		return nil
	}

	if err := st.SaveProfileOverride(finalModel.selected); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Println()
	fmt.Println(tui.SuccessStyle.Render("✓") + " Profile saved")
	fmt.Printf("  Using: %s\n", tui.HintStyle.Render(finalModel.selected))
	return nil
}

// Bubble Tea model for the setup picker

type setupModel struct {
	list      list.Model
	selected  string
	cancelled bool
}

type profileItem struct {
	name string
}

func (p profileItem) Title() string       { return p.name }
func (p profileItem) Description() string { return profileDescriptions[p.name] }
func (p profileItem) FilterValue() string { return p.name }

func newSetupModel() setupModel {
	names := llm.ProfileNames()
	items := make([]list.Item, len(names))
	for i, name := range names {
		items[i] = profileItem{name: name}
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(lipgloss.Color("#9b59b6"))
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(lipgloss.Color("#95a5a6"))

	l := list.New(items, delegate, 60, 14)
	l.Title = "Select Model Profile"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.Styles.Title = tui.TitleStyle

	return setupModel{list: l}
}

func (m setupModel) Init() tea.Cmd {
	return nil
}

func (m setupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.cancelled = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(profileItem); ok {
				m.selected = item.name
			}
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m setupModel) View() string {
	if m.cancelled {
		return ""
	}
	help := tui.HelpStyle.Render("\n  ↑/↓: navigate • enter: select • q: quit")
	return "\n" + m.list.View() + help
}
