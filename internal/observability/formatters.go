// Package observability provides formatted output for verbose CLI mode and
// the Prometheus metrics of the server.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintResumeSummary outputs a short summary of the form state.
func (p *Printer) PrintResumeSummary(s *types.FormState) {
	if s == nil {
		return
	}

	var sb strings.Builder
	name := strings.TrimSpace(s.Personal.FirstName + " " + s.Personal.LastName)
	if name == "" {
		name = "(no name)"
	}
	sb.WriteString(fmt.Sprintf("Name:        %s\n", name))
	if s.Personal.JobTitle != "" {
		sb.WriteString(fmt.Sprintf("Job title:   %s\n", s.Personal.JobTitle))
	}
	sb.WriteString(fmt.Sprintf("Section:     %s\n", wizard.Current(s.Wizard).Title))
	sb.WriteString(fmt.Sprintf("Experience:  %d entries\n", len(s.Experiences)))
	sb.WriteString(fmt.Sprintf("Education:   %d entries\n", len(s.Educations)))

	if len(s.Skills) > 0 {
		count := min(len(s.Skills), maxItemsToShow)
		sb.WriteString(fmt.Sprintf("Skills:      %s", strings.Join(s.Skills[:count], ", ")))
		if len(s.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf(" ... and %d more", len(s.Skills)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	for _, c := range s.CustomSections {
		sb.WriteString(fmt.Sprintf("Custom:      %s\n", c.Title))
	}

	p.printBox("RESUME", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExportResult outputs the files written by an export.
func (p *Printer) PrintExportResult(paths []string, sizes []int) {
	if len(paths) == 0 {
		return
	}

	var sb strings.Builder
	for i, path := range paths {
		size := 0
		if i < len(sizes) {
			size = sizes[i]
		}
		sb.WriteString(fmt.Sprintf("%s (%d bytes)\n", path, size))
	}

	p.printBox("EXPORTED", strings.TrimSuffix(sb.String(), "\n"))
}
