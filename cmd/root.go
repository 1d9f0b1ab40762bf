package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "interview-engine",
	Short: "Mock interview planning and progression engine",
	Long: `interview-engine plans interview questions from parsed resume data,
runs the interview as a strict question-by-question progression, and
derives answer/skip statistics from the conversation record.

It is exposed to assistants over the Model Context Protocol (MCP).`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
