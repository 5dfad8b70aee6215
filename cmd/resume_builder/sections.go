package main

import (
	"fmt"
	"io"

	"github.com/jonathan/resume-builder/internal/wizard"
	"github.com/spf13/cobra"
)

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the editor sections in wizard order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return printSections(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(sectionsCmd)
}

func printSections(out io.Writer) error {
	for i, s := range wizard.Sections() {
		if _, err := fmt.Fprintf(out, "%d. %-12s %s\n", i+1, s.Key, s.Title); err != nil {
			return err
		}
	}
	return nil
}
