package version

import (
	"fmt"
	"os"
	"path/filepath"

	"quotewiz/internal/tui"
)

// IsFirstRun returns true if this appears to be the first run.
// Checks for existence of the config file or first-run marker.
func IsFirstRun() bool {
	home, err := os.UserHomeDir()
	if err != nil {
		return false
	}

	configPath := filepath.Join(home, ".quotewiz.yaml")
	if _, err := os.Stat(configPath); err == nil {
		return false
	}

	markerPath := filepath.Join(home, ".quotewiz", ".initialized")
	if _, err := os.Stat(markerPath); err == nil {
		return false
	}

	return true
}

// MarkInitialized creates the first-run marker.
func MarkInitialized() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}

	dir := filepath.Join(home, ".quotewiz")
	if err := os.MkdirAll(dir, 0755); err != nil {
		return
	}

	_ = os.WriteFile(filepath.Join(dir, ".initialized"), []byte{}, 0644)
}

// PrintFirstRunNotice prints a welcome message for first-time users.
func PrintFirstRunNotice() {
	fmt.Println()
	fmt.Printf("%s Welcome to quotewiz!\n", tui.TitleStyle.Render("*"))
	fmt.Println()
	fmt.Println("  Quick start:")
	fmt.Printf("    1. Export a provider key: %s\n", tui.HelpStyle.Render("export OPENAI_API_KEY=..."))
	fmt.Printf("    2. Pick a model profile: %s\n", tui.HelpStyle.Render("quotewiz setup"))
	fmt.Printf("    3. Run the wizard: %s\n", tui.HelpStyle.Render("quotewiz wizard"))
	fmt.Println()
	fmt.Printf("  %s\n", tui.HelpStyle.Render("Run 'quotewiz --help' for all options"))
	fmt.Println()

	// Mark as initialized so we don't show this again
	MarkInitialized()
}
