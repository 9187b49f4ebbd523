package cmd

import (
	"fmt"

	"github.com/birmacher/empathetic-code-reviewer/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  `Display the version of the Empathetic Code Reviewer`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("Empathetic Code Reviewer v%s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
