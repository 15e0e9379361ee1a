package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"quotewiz/cmd"
	"quotewiz/internal/version"
)

var buildVersion = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:     "quotewiz",
		Short:   "Walk a requirements wizard and generate a mock UI spec with LLM guardrails",
		Version: buildVersion,
	}

	rootCmd.AddCommand(cmd.WizardCmd)
	rootCmd.AddCommand(cmd.ServeCmd)
	rootCmd.AddCommand(cmd.SetupCmd)
	rootCmd.AddCommand(cmd.RecentCmd)
	rootCmd.AddCommand(cmd.RegenCmd)

	if version.IsFirstRun() {
		version.PrintFirstRunNotice()
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	// At most once a day, after the command has done its work.
	version.PrintUpdateNotice(version.CheckForUpdate(buildVersion))
}
