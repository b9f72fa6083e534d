package cmd

import (
	"github.com/spf13/cobra"
)

// generateCmd represents the generate command
var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "generate code or sample data",
	Long:  `generate code or sample data`,
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
