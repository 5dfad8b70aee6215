package server

import (
	"net/url"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormActions(t *testing.T) {
	form := url.Values{
		"action":                {"remove_experience:1"},
		"personal.firstName":    {"Ada"},
		"experience.0.employer": {"Engines"},
		"education.2.school":    {"Home"},
		"skillDraft":            {"Go"},
		"customDraft.title":     {"Awards"},
		"customDraft.content":   {"Many"},
		"editorWidth":           {"420"},
		"unknown":               {"ignored"},
		"experience.x.employer": {"ignored"},
	}

	actions, err := formActions(form)
	require.NoError(t, err)

	assert.Equal(t, []types.Action{
		{Type: types.ActionSetCustomDraft, Title: "Awards", Content: "Many"},
		{Type: types.ActionResize, Width: 420},
		{Type: types.ActionUpdateEducation, Index: 2, Field: "school", Value: "Home"},
		{Type: types.ActionUpdateExperience, Index: 0, Field: "employer", Value: "Engines"},
		{Type: types.ActionSetPersonal, Field: "firstName", Value: "Ada"},
		{Type: types.ActionSetSkillDraft, Value: "Go"},
		{Type: types.ActionRemoveExperience, Index: 1},
	}, actions)
}

func TestFormActions_Empty(t *testing.T) {
	actions, err := formActions(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, actions)
}

func TestFormActions_CustomContentOnly(t *testing.T) {
	actions, err := formActions(url.Values{"customDraft.content": {"Royal Society"}})
	require.NoError(t, err)
	assert.Equal(t, []types.Action{
		{Type: types.ActionSetCustomDraft, Content: "Royal Society"},
	}, actions)
}

func TestFormActions_EmptyButton(t *testing.T) {
	actions, err := formActions(url.Values{"action": {""}, "skillDraft": {"Go"}})
	require.NoError(t, err)
	assert.Equal(t, []types.Action{{Type: types.ActionSetSkillDraft, Value: "Go"}}, actions)
}

func TestParseButton(t *testing.T) {
	tests := []struct {
		value    string
		expected types.Action
	}{
		{"wizard_next", types.Action{Type: types.ActionWizardNext}},
		{"wizard_goto:3", types.Action{Type: types.ActionWizardGoTo, Index: 3}},
		{"remove_skill:0", types.Action{Type: types.ActionRemoveSkill, Index: 0}},
		{"resize:450", types.Action{Type: types.ActionResize, Width: 450}},
		{"resize_by:-10", types.Action{Type: types.ActionResizeBy, Delta: -10}},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			a, err := parseButton(tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, a)
		})
	}
}

func TestFormActions_Invalid(t *testing.T) {
	_, err := formActions(url.Values{"action": {"remove_skill:first"}})
	assert.Error(t, err)

	_, err = formActions(url.Values{"action": {"wizard_goto:-1"}})
	assert.Error(t, err, "negative indexes fail validation")

	_, err = formActions(url.Values{"action": {"format_disk"}})
	assert.Error(t, err)
}
