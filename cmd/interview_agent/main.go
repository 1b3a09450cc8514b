// Package main provides the entry point for the devmirai interview CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "interview_agent",
	Short: "devmirai candidate interview client",
	Long:  "interview_agent runs timed AI interview sessions against the devmirai backend: it loads or generates the question set, keeps the countdown, submits answers for evaluation, and renders the aggregated results.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
