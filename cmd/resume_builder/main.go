// Package main provides the entry point for the resume builder.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_builder",
	Short: "Resume Builder",
	Long:  "Resume Builder edits a resume section by section, previews it live and exports it as a PNG image or a one-page PDF.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
