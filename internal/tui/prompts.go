package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// HuhPrompter asks questions with interactive huh forms.
type HuhPrompter struct {
	// Accessible switches huh to plain line prompts for screen readers and pipes.
	Accessible bool
}

func (h HuhPrompter) run(ctx context.Context, title string, fields ...huh.Field) error {
	return huh.NewForm(huh.NewGroup(fields...).Title(title)).
		WithAccessible(h.Accessible).
		RunWithContext(ctx)
}

// Personal prompts for the personal details.
func (h HuhPrompter) Personal(ctx context.Context, p types.PersonalInfo) (types.PersonalInfo, error) {
	err := h.run(ctx, "Personal Details",
		huh.NewInput().Title("Job Title").Placeholder("e.g. Data Analyst").Value(&p.JobTitle),
		huh.NewInput().Title("First Name").Value(&p.FirstName),
		huh.NewInput().Title("Last Name").Value(&p.LastName),
		huh.NewInput().Title("Email").Value(&p.Email),
		huh.NewInput().Title("Phone").Value(&p.Phone),
		huh.NewInput().Title("Address").Value(&p.Address),
		huh.NewInput().Title("City / State").Value(&p.CityState),
		huh.NewInput().Title("Country").Value(&p.Country),
	)
	return p, err
}

// EntryMenu lists the entries of a section with edit, add and remove choices.
func (h HuhPrompter) EntryMenu(ctx context.Context, title string, labels []string, canRemove bool) (string, error) {
	options := make([]huh.Option[string], 0, 2*len(labels)+2)
	for i, label := range labels {
		options = append(options, huh.NewOption("Edit "+label, fmt.Sprintf("%s:%d", MenuEdit, i)))
	}
	options = append(options, huh.NewOption("+ Add one more", MenuAdd))
	if canRemove {
		for i, label := range labels {
			options = append(options, huh.NewOption("Remove "+label, fmt.Sprintf("%s:%d", MenuRemove, i)))
		}
	}
	options = append(options, huh.NewOption("Done", MenuDone))

	choice := MenuDone
	err := h.run(ctx, title,
		huh.NewSelect[string]().Title("What do you want to change?").Options(options...).Value(&choice),
	)
	return choice, err
}

// Experience prompts for one employment entry.
func (h HuhPrompter) Experience(ctx context.Context, e types.ExperienceEntry) (types.ExperienceEntry, error) {
	err := h.run(ctx, "Employment",
		huh.NewInput().Title("Job Title").Value(&e.JobTitle),
		huh.NewInput().Title("Employer").Value(&e.Employer),
		huh.NewInput().Title("Start Date").Placeholder("MM/YYYY").Value(&e.StartDate),
		huh.NewInput().Title("End Date").Placeholder("MM/YYYY or Present").Value(&e.EndDate),
		huh.NewText().Title("Description").Lines(4).Value(&e.Description),
	)
	return e, err
}

// Education prompts for one education entry.
func (h HuhPrompter) Education(ctx context.Context, e types.EducationEntry) (types.EducationEntry, error) {
	err := h.run(ctx, "Education",
		huh.NewInput().Title("School").Value(&e.School),
		huh.NewInput().Title("Degree").Value(&e.Degree),
		huh.NewInput().Title("Start Date").Placeholder("MM/YYYY").Value(&e.StartDate),
		huh.NewInput().Title("End Date").Placeholder("MM/YYYY").Value(&e.EndDate),
	)
	return e, err
}

// Skills prompts for a new skill and the skills to remove.
func (h HuhPrompter) Skills(ctx context.Context, draft string, skills []string) (string, []int, error) {
	fields := []huh.Field{
		huh.NewInput().Title("Add a skill").Description("Leave empty to keep the list as is").Value(&draft),
	}

	var remove []int
	if len(skills) > 0 {
		options := make([]huh.Option[int], len(skills))
		for i, s := range skills {
			options[i] = huh.NewOption(s, i)
		}
		fields = append(fields, huh.NewMultiSelect[int]().Title("Remove skills").Options(options...).Value(&remove))
	}

	err := h.run(ctx, "Skills", fields...)
	return draft, remove, err
}

// Custom prompts for a new custom section and the sections to remove.
func (h HuhPrompter) Custom(ctx context.Context, draft types.CustomSection, sections []types.CustomSection) (types.CustomSection, []int, error) {
	fields := []huh.Field{
		huh.NewInput().Title("Section Title").Description("Title and content are both required").Value(&draft.Title),
		huh.NewText().Title("Content").Lines(4).Value(&draft.Content),
	}

	var remove []int
	if len(sections) > 0 {
		options := make([]huh.Option[int], len(sections))
		for i, s := range sections {
			options[i] = huh.NewOption(s.Title, i)
		}
		fields = append(fields, huh.NewMultiSelect[int]().Title("Remove sections").Options(options...).Value(&remove))
	}

	err := h.run(ctx, "Custom Sections", fields...)
	return draft, remove, err
}

// Navigate asks where to go after a section.
func (h HuhPrompter) Navigate(ctx context.Context, w types.WizardState) (string, error) {
	choice := NavNext
	if wizard.IsLast(w) {
		choice = NavExport
	}
	err := h.run(ctx, fmt.Sprintf("Step %d of %d", w.Current+1, wizard.Count()),
		huh.NewSelect[string]().Title("Continue").Options(NavigationOptions(w)...).Value(&choice),
	)
	return choice, err
}

// NavigationOptions returns the choices available at w. Next is hidden on the
// last section and Back on the first.
func NavigationOptions(w types.WizardState) []huh.Option[string] {
	var options []huh.Option[string]
	if !wizard.IsLast(w) {
		next := wizard.Next(w)
		options = append(options, huh.NewOption("Next: "+wizard.Current(next).Title, NavNext))
	}
	if !wizard.IsFirst(w) {
		back := wizard.Back(w)
		options = append(options, huh.NewOption("Back: "+wizard.Current(back).Title, NavBack))
	}
	return append(options,
		huh.NewOption("Edit this section again", NavStay),
		huh.NewOption("Download resume", NavExport),
		huh.NewOption("Quit without exporting", NavQuit),
	)
}
