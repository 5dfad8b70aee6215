// Package wizard provides linear navigation between the resume sections.
package wizard

import "github.com/jonathan/resume-builder/internal/types"

// Section keys in wizard order.
const (
	SectionPersonal   = "personal"
	SectionExperience = "experience"
	SectionEducation  = "education"
	SectionSkills     = "skills"
	SectionCustom     = "custom"
)

// Section describes one wizard step.
type Section struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

var sections = []Section{
	{Key: SectionPersonal, Title: "Personal Details"},
	{Key: SectionExperience, Title: "Experience"},
	{Key: SectionEducation, Title: "Education"},
	{Key: SectionSkills, Title: "Skills"},
	{Key: SectionCustom, Title: "Custom Sections"},
}

// Sections returns the ordered section list. The returned slice is a copy.
func Sections() []Section {
	out := make([]Section, len(sections))
	copy(out, sections)
	return out
}

// Count returns the number of sections.
func Count() int {
	return len(sections)
}

// Next advances to the following section. At the last section it is a no-op.
func Next(w types.WizardState) types.WizardState {
	if w.Current < len(sections)-1 {
		w.Current++
	}
	return w
}

// Back returns to the previous section. At the first section it is a no-op.
func Back(w types.WizardState) types.WizardState {
	if w.Current > 0 {
		w.Current--
	}
	return w
}

// GoTo jumps to index, clamped into the valid range.
func GoTo(w types.WizardState, index int) types.WizardState {
	w.Current = clamp(index)
	return w
}

// Current returns the visible section.
func Current(w types.WizardState) Section {
	return sections[clamp(w.Current)]
}

// IsFirst reports whether Back would be a no-op.
func IsFirst(w types.WizardState) bool {
	return w.Current <= 0
}

// IsLast reports whether Next would be a no-op.
func IsLast(w types.WizardState) bool {
	return w.Current >= len(sections)-1
}

func clamp(index int) int {
	if index < 0 {
		return 0
	}
	if index > len(sections)-1 {
		return len(sections) - 1
	}
	return index
}
