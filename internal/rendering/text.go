package rendering

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jonathan/resume-builder/internal/types"
)

var (
	colorBlue = lipgloss.Color("#1890ff")
	colorDim  = lipgloss.Color("#6b7280")
	colorText = lipgloss.Color("#f9fafb")

	avatarStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText).
			Background(colorBlue).
			Padding(0, 1)

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	dividerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue).
			MarginTop(1)

	tagStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBlue).
			Padding(0, 1)
)

// RenderText renders s as a styled terminal preview, width columns wide.
// It shows the same blocks as the HTML preview under the same conditions.
func RenderText(s types.FormState, width int) string {
	p := BuildPreview(s)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	block := lipgloss.NewStyle().Width(width)

	var parts []string
	header := []string{
		avatarStyle.Render(p.Initials),
		nameStyle.Render(p.FullName),
		p.JobTitle,
		dimStyle.Render(p.ContactLine),
		dimStyle.Render(p.Address),
	}
	parts = append(parts, center.Render(lipgloss.JoinVertical(lipgloss.Center, header...)))

	if p.ShowExperience() {
		parts = append(parts, divider("EMPLOYMENT HISTORY", width))
		for _, e := range p.Experiences {
			lines := []string{lipgloss.NewStyle().Bold(true).Render(e.Heading), dimStyle.Render(e.Dates)}
			if e.Description != "" {
				lines = append(lines, e.Description)
			}
			parts = append(parts, block.Render(strings.Join(lines, "\n")))
		}
	}

	if p.ShowEducation() {
		parts = append(parts, divider("EDUCATION", width))
		for _, e := range p.Educations {
			parts = append(parts, block.Render(lipgloss.NewStyle().Bold(true).Render(e.Heading)+"\n"+dimStyle.Render(e.Dates)))
		}
	}

	if p.ShowSkills() {
		parts = append(parts, divider("TECHNICAL SKILLS", width))
		tags := make([]string, 0, len(p.Skills))
		for _, skill := range p.Skills {
			tags = append(tags, tagStyle.Render(skill))
		}
		parts = append(parts, block.Render(lipgloss.JoinHorizontal(lipgloss.Top, tags...)))
	}

	for _, c := range p.CustomSections {
		parts = append(parts, divider(c.Title, width), block.Render(c.Content))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func divider(title string, width int) string {
	rule := width - lipgloss.Width(title) - 1
	if rule < 0 {
		rule = 0
	}
	return dividerStyle.Render(title + " " + strings.Repeat("─", rule))
}
