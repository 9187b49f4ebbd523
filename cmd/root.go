package cmd

import (
	"github.com/birmacher/empathetic-code-reviewer/logger"
	"github.com/spf13/cobra"
)

var (
	// Command line flags
	logLevel string
)

var rootCmd = &cobra.Command{
	Use:   "empathetic-reviewer",
	Short: "Empathetic Code Reviewer - rewrites review comments as mentorship",
	Long: `Empathetic Code Reviewer is a CLI that transforms direct, potentially harsh
code review comments into supportive, educational feedback using AI.
It explains the engineering rationale behind each comment and supplies a
corrected code example.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Initialize logger with the specified log level
		logger.Init(logLevel)
		logger.Debugf("Log level set to: %s", logLevel)
	},
	Run: func(cmd *cobra.Command, args []string) {
		// Default behavior when no subcommands are provided
		cmd.Help()
	},
}

// Execute runs the root command and handles errors
func Execute() error {
	// Subcommands are added in their respective init() functions
	return rootCmd.Execute()
}

func init() {
	// Add persistent flags that will be available to all subcommands
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"Set the logging level (debug, info, warn, error, dpanic, panic, fatal)")
}
