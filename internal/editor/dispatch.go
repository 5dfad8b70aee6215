package editor

import (
	"errors"
	"fmt"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// ErrUnknownAction is returned by Dispatch for an action type it cannot map.
var ErrUnknownAction = errors.New("unknown editor action")

// Dispatch applies a single action to s.
//
// add_skill and add_custom_section first copy their payload into the pending
// input, so a rejected commit leaves the text in the input as typed. An empty
// payload commits whatever is already pending.
func Dispatch(s types.FormState, a types.Action) (types.FormState, error) {
	switch a.Type {
	case types.ActionSetPersonal:
		return SetPersonal(s, a.Field, a.Value), nil

	case types.ActionAddExperience:
		return AddExperience(s), nil
	case types.ActionRemoveExperience:
		return RemoveExperience(s, a.Index), nil
	case types.ActionUpdateExperience:
		return UpdateExperience(s, a.Index, a.Field, a.Value), nil

	case types.ActionAddEducation:
		return AddEducation(s), nil
	case types.ActionRemoveEducation:
		return RemoveEducation(s, a.Index), nil
	case types.ActionUpdateEducation:
		return UpdateEducation(s, a.Index, a.Field, a.Value), nil

	case types.ActionSetSkillDraft:
		return SetSkillDraft(s, a.Value), nil
	case types.ActionAddSkill:
		if a.Value != "" {
			s = SetSkillDraft(s, a.Value)
		}
		return CommitSkillDraft(s), nil
	case types.ActionRemoveSkill:
		return RemoveSkill(s, a.Index), nil

	case types.ActionSetCustomDraft:
		return SetCustomDraft(s, a.Title, a.Content), nil
	case types.ActionAddCustomSection:
		if a.Title != "" || a.Content != "" {
			s = SetCustomDraft(s, a.Title, a.Content)
		}
		return CommitCustomDraft(s), nil
	case types.ActionRemoveCustomSection:
		return RemoveCustomSection(s, a.Index), nil

	case types.ActionWizardNext:
		return withWizard(s, wizard.Next(s.Wizard)), nil
	case types.ActionWizardBack:
		return withWizard(s, wizard.Back(s.Wizard)), nil
	case types.ActionWizardGoTo:
		return withWizard(s, wizard.GoTo(s.Wizard, a.Index)), nil

	case types.ActionResize:
		return withLayout(s, layout.Resize(s.Layout, a.Width)), nil
	case types.ActionResizeBy:
		return withLayout(s, layout.ResizeBy(s.Layout, a.Delta)), nil
	}

	return s, fmt.Errorf("%w: %q", ErrUnknownAction, a.Type)
}

func withWizard(s types.FormState, w types.WizardState) types.FormState {
	out := clone(s)
	out.Wizard = w
	return out
}

func withLayout(s types.FormState, l types.LayoutState) types.FormState {
	out := clone(s)
	out.Layout = l
	return out
}
