// Package main is the entry point for the encounter engine CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "encounter",
	Short: "LLM-driven encounter companion",
	Long:  `Encounter runs turn-based combat encounters inside a chat roleplay: the model referees, the engine owns the rules of state.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(playCmd)
}
