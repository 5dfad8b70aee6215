package rendering

import (
	"strings"
	"unicode/utf8"

	"github.com/jonathan/resume-builder/internal/types"
)

// PlaceholderJobTitle is shown in the header while the job title is blank.
const PlaceholderJobTitle = "Job Title"

// Preview is the read-only projection of a form state that every renderer draws.
// Entries that would render empty are already filtered out.
type Preview struct {
	Initials    string
	FullName    string
	JobTitle    string
	ContactLine string
	Address     string

	Experiences    []ExperienceItem
	Educations     []EducationItem
	Skills         []string
	CustomSections []CustomItem
}

// ExperienceItem is one rendered employment entry.
type ExperienceItem struct {
	Heading     string // "Job Title at Employer"
	Dates       string // "Start - End"
	Description string
}

// EducationItem is one rendered education entry.
type EducationItem struct {
	Heading string // "Degree at School"
	Dates   string
}

// CustomItem is one rendered custom section with its title upper-cased.
type CustomItem struct {
	Title   string
	Content string
}

// ShowExperience reports whether the Employment History block is rendered.
func (p *Preview) ShowExperience() bool { return len(p.Experiences) > 0 }

// ShowEducation reports whether the Education block is rendered.
func (p *Preview) ShowEducation() bool { return len(p.Educations) > 0 }

// ShowSkills reports whether the Technical Skills block is rendered.
func (p *Preview) ShowSkills() bool { return len(p.Skills) > 0 }

// BuildPreview projects s into a Preview. It is deterministic and recomputes
// everything from s.
func BuildPreview(s types.FormState) *Preview {
	p := &Preview{
		Initials:    Initials(s.Personal.FirstName, s.Personal.LastName),
		FullName:    strings.TrimSpace(s.Personal.FirstName + " " + s.Personal.LastName),
		JobTitle:    s.Personal.JobTitle,
		ContactLine: joinNonEmpty(" | ", s.Personal.Email, s.Personal.Phone),
		Address:     s.Personal.Address,
	}
	if p.JobTitle == "" {
		p.JobTitle = PlaceholderJobTitle
	}

	for _, e := range s.Experiences {
		if e.JobTitle == "" && e.Employer == "" {
			continue
		}
		p.Experiences = append(p.Experiences, ExperienceItem{
			Heading:     heading(e.JobTitle, e.Employer),
			Dates:       e.StartDate + " - " + e.EndDate,
			Description: e.Description,
		})
	}

	for _, e := range s.Educations {
		if e.School == "" && e.Degree == "" {
			continue
		}
		p.Educations = append(p.Educations, EducationItem{
			Heading: heading(e.Degree, e.School),
			Dates:   e.StartDate + " - " + e.EndDate,
		})
	}

	p.Skills = append(p.Skills, s.Skills...)

	for _, c := range s.CustomSections {
		p.CustomSections = append(p.CustomSections, CustomItem{
			Title:   strings.ToUpper(c.Title),
			Content: c.Content,
		})
	}

	return p
}

// Initials returns the first letter of each name; a blank name contributes nothing.
func Initials(first, last string) string {
	return firstRune(first) + firstRune(last)
}

func firstRune(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(r)
}

// heading renders "primary at place", dropping the suffix when place is blank.
func heading(primary, place string) string {
	if place == "" {
		return primary
	}
	return strings.TrimSpace(primary + " at " + place)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, part := range parts {
		if part != "" {
			kept = append(kept, part)
		}
	}
	return strings.Join(kept, sep)
}
