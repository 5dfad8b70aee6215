package server

import (
	"net/url"
	"slices"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Form keys of the editor page.
const (
	formAction        = "action"
	formSkillDraft    = "skillDraft"
	formCustomTitle   = "customDraft.title"
	formCustomContent = "customDraft.content"
	formEditorWidth   = "editorWidth"
)

// formActions translates an editor page submission into actions: every field
// value first, in key order, then the pressed button. Keys the editor does not
// know are ignored.
func formActions(form url.Values) ([]types.Action, error) {
	keys := make([]string, 0, len(form))
	for k := range form {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var actions []types.Action
	for _, key := range keys {
		value := form.Get(key)
		parts := strings.Split(key, ".")

		switch {
		case parts[0] == "personal" && len(parts) == 2:
			actions = append(actions, types.Action{Type: types.ActionSetPersonal, Field: parts[1], Value: value})

		case parts[0] == "experience" && len(parts) == 3:
			if i, err := strconv.Atoi(parts[1]); err == nil && i >= 0 {
				actions = append(actions, types.Action{Type: types.ActionUpdateExperience, Index: i, Field: parts[2], Value: value})
			}

		case parts[0] == "education" && len(parts) == 3:
			if i, err := strconv.Atoi(parts[1]); err == nil && i >= 0 {
				actions = append(actions, types.Action{Type: types.ActionUpdateEducation, Index: i, Field: parts[2], Value: value})
			}

		case key == formSkillDraft:
			actions = append(actions, types.Action{Type: types.ActionSetSkillDraft, Value: value})

		case key == formCustomTitle:
			actions = append(actions, types.Action{
				Type:    types.ActionSetCustomDraft,
				Title:   value,
				Content: form.Get(formCustomContent),
			})

		case key == formCustomContent && !form.Has(formCustomTitle):
			actions = append(actions, types.Action{Type: types.ActionSetCustomDraft, Content: value})

		case key == formEditorWidth:
			if w, err := strconv.Atoi(value); err == nil && w >= 0 {
				actions = append(actions, types.Action{Type: types.ActionResize, Width: w})
			}
		}
	}

	if button := form.Get(formAction); button != "" {
		a, err := parseButton(button)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}

	for i := range actions {
		if err := actions[i].Validate(); err != nil {
			return nil, &ErrValidation{Field: string(actions[i].Type), Message: err.Error()}
		}
	}
	return actions, nil
}

// parseButton reads "type" or "type:argument". The argument is an index,
// a width or a drag delta depending on the type.
func parseButton(value string) (types.Action, error) {
	name, arg, hasArg := strings.Cut(value, ":")
	a := types.Action{Type: types.ActionType(name)}
	if !hasArg {
		return a, nil
	}

	n, err := strconv.Atoi(arg)
	if err != nil {
		return a, &ErrValidation{Field: formAction, Message: "invalid argument " + strconv.Quote(arg)}
	}
	switch a.Type {
	case types.ActionResize:
		a.Width = n
	case types.ActionResizeBy:
		a.Delta = n
	default:
		a.Index = n
	}
	return a, nil
}
