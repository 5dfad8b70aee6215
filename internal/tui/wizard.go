package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// Outcome is how the user left the wizard.
type Outcome int

const (
	// OutcomeQuit means the user left without exporting.
	OutcomeQuit Outcome = iota
	// OutcomeExport means the user asked for the resume to be exported.
	OutcomeExport
)

// Navigation choices offered after each section.
const (
	NavNext   = "next"
	NavBack   = "back"
	NavStay   = "stay"
	NavExport = "export"
	NavQuit   = "quit"
)

// maxSteps bounds the number of prompts of a single Run.
const maxSteps = 1000

// ErrTooManySteps is returned when a Run does not finish within maxSteps prompts.
var ErrTooManySteps = errors.New("wizard did not finish")

// Prompter asks the user for the answers of each section.
type Prompter interface {
	// Personal edits the personal details and returns the new values.
	Personal(ctx context.Context, p types.PersonalInfo) (types.PersonalInfo, error)
	// EntryMenu shows the entries of a list section and returns a menu choice.
	EntryMenu(ctx context.Context, title string, labels []string, canRemove bool) (string, error)
	// Experience edits one employment entry.
	Experience(ctx context.Context, e types.ExperienceEntry) (types.ExperienceEntry, error)
	// Education edits one education entry.
	Education(ctx context.Context, e types.EducationEntry) (types.EducationEntry, error)
	// Skills returns a skill to add (possibly empty) and the indexes to remove.
	Skills(ctx context.Context, draft string, skills []string) (string, []int, error)
	// Custom returns a section to add (possibly empty) and the indexes to remove.
	Custom(ctx context.Context, draft types.CustomSection, sections []types.CustomSection) (types.CustomSection, []int, error)
	// Navigate returns one of the Nav* choices.
	Navigate(ctx context.Context, w types.WizardState) (string, error)
}

// Wizard drives a Prompter over the sections of one editing session.
type Wizard struct {
	store    *editor.Store
	prompter Prompter
	out      io.Writer
	width    int
	// stale is set by the store whenever the preview needs printing again.
	stale bool
}

// New creates a wizard that edits store. The preview is printed to out with
// the given width whenever the state changed; zero disables the preview.
func New(store *editor.Store, prompter Prompter, out io.Writer, width int) *Wizard {
	w := &Wizard{store: store, prompter: prompter, out: out, width: width, stale: true}
	store.OnChange(func(types.FormState) { w.stale = true })
	return w
}

// Run shows sections until the user exports or quits.
func (w *Wizard) Run(ctx context.Context) (Outcome, error) {
	for step := 0; step < maxSteps; step++ {
		s := w.store.Snapshot()
		section := wizard.Current(s.Wizard)

		if err := w.runSection(ctx, section.Key); err != nil {
			return OutcomeQuit, fmt.Errorf("%s: %w", section.Title, err)
		}

		w.printPreview()

		choice, err := w.prompter.Navigate(ctx, w.store.Snapshot().Wizard)
		if err != nil {
			return OutcomeQuit, fmt.Errorf("navigation: %w", err)
		}

		switch choice {
		case NavNext:
			err = w.dispatch(types.Action{Type: types.ActionWizardNext})
		case NavBack:
			err = w.dispatch(types.Action{Type: types.ActionWizardBack})
		case NavExport:
			return OutcomeExport, nil
		case NavQuit:
			return OutcomeQuit, nil
		}
		if err != nil {
			return OutcomeQuit, err
		}
	}
	return OutcomeQuit, ErrTooManySteps
}

func (w *Wizard) runSection(ctx context.Context, key string) error {
	switch key {
	case wizard.SectionPersonal:
		return w.personal(ctx)
	case wizard.SectionExperience:
		return w.entries(ctx, experienceList{})
	case wizard.SectionEducation:
		return w.entries(ctx, educationList{})
	case wizard.SectionSkills:
		return w.skills(ctx)
	case wizard.SectionCustom:
		return w.custom(ctx)
	}
	return nil
}

func (w *Wizard) personal(ctx context.Context) error {
	before := w.store.Snapshot().Personal
	after, err := w.prompter.Personal(ctx, before)
	if err != nil {
		return err
	}
	return w.dispatch(personalActions(before, after)...)
}

func (w *Wizard) entries(ctx context.Context, list entryList) error {
	for step := 0; step < maxSteps; step++ {
		s := w.store.Snapshot()
		labels := list.labels(s)

		choice, err := w.prompter.EntryMenu(ctx, list.title(), labels, len(labels) > 1)
		if err != nil {
			return err
		}

		menu, index, err := parseMenuChoice(choice)
		if err != nil {
			return err
		}
		var actions []types.Action
		switch menu {
		case MenuDone:
			return nil
		case MenuAdd:
			actions = []types.Action{{Type: list.addAction()}}
		case MenuRemove:
			actions = []types.Action{{Type: list.removeAction(), Index: index}}
		case MenuEdit:
			actions, err = list.edit(ctx, w.prompter, s, index)
			if err != nil {
				return err
			}
		}
		if err := w.dispatch(actions...); err != nil {
			return err
		}
	}
	return ErrTooManySteps
}

func (w *Wizard) skills(ctx context.Context) error {
	s := w.store.Snapshot()
	add, remove, err := w.prompter.Skills(ctx, s.SkillDraft, s.Skills)
	if err != nil {
		return err
	}
	actions := removals(types.ActionRemoveSkill, remove)
	if add != "" {
		actions = append(actions, types.Action{Type: types.ActionAddSkill, Value: add})
	}
	return w.dispatch(actions...)
}

func (w *Wizard) custom(ctx context.Context) error {
	s := w.store.Snapshot()
	add, remove, err := w.prompter.Custom(ctx, s.CustomDraft, s.CustomSections)
	if err != nil {
		return err
	}
	actions := removals(types.ActionRemoveCustomSection, remove)
	if add.Title != "" || add.Content != "" {
		actions = append(actions, types.Action{Type: types.ActionAddCustomSection, Title: add.Title, Content: add.Content})
	}
	return w.dispatch(actions...)
}

func (w *Wizard) dispatch(actions ...types.Action) error {
	for _, a := range actions {
		if _, err := w.store.Dispatch(a); err != nil {
			return err
		}
	}
	return nil
}

func (w *Wizard) printPreview() {
	if w.width <= 0 || w.out == nil || !w.stale {
		return
	}
	w.stale = false
	_, _ = fmt.Fprintln(w.out, rendering.RenderText(w.store.Snapshot(), w.width))
}
