package tui

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// Entry menu choices. Edit and remove carry the entry index as "edit:2".
const (
	MenuEdit   = "edit"
	MenuAdd    = "add"
	MenuRemove = "remove"
	MenuDone   = "done"
)

// parseMenuChoice splits "edit:2" into its verb and index.
func parseMenuChoice(choice string) (string, int, error) {
	verb, arg, hasArg := strings.Cut(choice, ":")
	switch verb {
	case MenuAdd, MenuDone:
		return verb, 0, nil
	case MenuEdit, MenuRemove:
		if !hasArg {
			return "", 0, fmt.Errorf("menu choice %q has no index", choice)
		}
		index, err := strconv.Atoi(arg)
		if err != nil {
			return "", 0, fmt.Errorf("menu choice %q: %w", choice, err)
		}
		return verb, index, nil
	}
	return "", 0, fmt.Errorf("unknown menu choice %q", choice)
}

// personalActions returns one set_personal action per changed field.
func personalActions(before, after types.PersonalInfo) []types.Action {
	fields := []struct {
		name          string
		before, after string
	}{
		{types.FieldJobTitle, before.JobTitle, after.JobTitle},
		{types.FieldFirstName, before.FirstName, after.FirstName},
		{types.FieldLastName, before.LastName, after.LastName},
		{types.FieldEmail, before.Email, after.Email},
		{types.FieldPhone, before.Phone, after.Phone},
		{types.FieldAddress, before.Address, after.Address},
		{types.FieldCityState, before.CityState, after.CityState},
		{types.FieldCountry, before.Country, after.Country},
	}

	var actions []types.Action
	for _, f := range fields {
		if f.before != f.after {
			actions = append(actions, types.Action{Type: types.ActionSetPersonal, Field: f.name, Value: f.after})
		}
	}
	return actions
}

// removals returns remove actions for indexes, highest first so that earlier
// removals do not shift the later ones. Duplicates are dropped.
func removals(t types.ActionType, indexes []int) []types.Action {
	sorted := slices.Clone(indexes)
	slices.Sort(sorted)
	sorted = slices.Compact(sorted)
	slices.Reverse(sorted)

	actions := make([]types.Action, 0, len(sorted))
	for _, i := range sorted {
		actions = append(actions, types.Action{Type: t, Index: i})
	}
	return actions
}

// updateActions returns one update action per changed field of an entry.
func updateActions(t types.ActionType, index int, before, after map[string]string) []types.Action {
	keys := make([]string, 0, len(after))
	for k := range after {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var actions []types.Action
	for _, k := range keys {
		if before[k] != after[k] {
			actions = append(actions, types.Action{Type: t, Index: index, Field: k, Value: after[k]})
		}
	}
	return actions
}

// entryList adapts the experience and education lists to the entry menu.
type entryList interface {
	title() string
	labels(s types.FormState) []string
	addAction() types.ActionType
	removeAction() types.ActionType
	edit(ctx context.Context, p Prompter, s types.FormState, index int) ([]types.Action, error)
}

type experienceList struct{}

func (experienceList) title() string { return "Employment History" }

func (experienceList) labels(s types.FormState) []string {
	out := make([]string, len(s.Experiences))
	for i, e := range s.Experiences {
		out[i] = entryLabel(i, e.JobTitle, e.Employer)
	}
	return out
}

func (experienceList) addAction() types.ActionType    { return types.ActionAddExperience }
func (experienceList) removeAction() types.ActionType { return types.ActionRemoveExperience }

func (experienceList) edit(ctx context.Context, p Prompter, s types.FormState, index int) ([]types.Action, error) {
	if index < 0 || index >= len(s.Experiences) {
		return nil, nil
	}
	before := s.Experiences[index]
	after, err := p.Experience(ctx, before)
	if err != nil {
		return nil, err
	}
	return updateActions(types.ActionUpdateExperience, index, experienceFields(before), experienceFields(after)), nil
}

func experienceFields(e types.ExperienceEntry) map[string]string {
	return map[string]string{
		types.FieldJobTitle:    e.JobTitle,
		types.FieldEmployer:    e.Employer,
		types.FieldStartDate:   e.StartDate,
		types.FieldEndDate:     e.EndDate,
		types.FieldDescription: e.Description,
	}
}

type educationList struct{}

func (educationList) title() string { return "Education" }

func (educationList) labels(s types.FormState) []string {
	out := make([]string, len(s.Educations))
	for i, e := range s.Educations {
		out[i] = entryLabel(i, e.Degree, e.School)
	}
	return out
}

func (educationList) addAction() types.ActionType    { return types.ActionAddEducation }
func (educationList) removeAction() types.ActionType { return types.ActionRemoveEducation }

func (educationList) edit(ctx context.Context, p Prompter, s types.FormState, index int) ([]types.Action, error) {
	if index < 0 || index >= len(s.Educations) {
		return nil, nil
	}
	before := s.Educations[index]
	after, err := p.Education(ctx, before)
	if err != nil {
		return nil, err
	}
	return updateActions(types.ActionUpdateEducation, index, educationFields(before), educationFields(after)), nil
}

func educationFields(e types.EducationEntry) map[string]string {
	return map[string]string{
		types.FieldSchool:    e.School,
		types.FieldDegree:    e.Degree,
		types.FieldStartDate: e.StartDate,
		types.FieldEndDate:   e.EndDate,
	}
}

// entryLabel names an entry in the menu, e.g. "2. Analyst at Engines".
func entryLabel(i int, primary, place string) string {
	label := strings.TrimSpace(primary)
	place = strings.TrimSpace(place)
	switch {
	case label != "" && place != "":
		label += " at " + place
	case label == "":
		label = place
	}
	if label == "" {
		label = "(not specified)"
	}
	return fmt.Sprintf("%d. %s", i+1, label)
}
