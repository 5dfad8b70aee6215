package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAction_Validation(t *testing.T) {
	tests := []struct {
		name    string
		action  Action
		wantErr bool
		errMsg  string
	}{
		{
			name:   "add skill",
			action: Action{Type: ActionAddSkill, Value: "Go"},
		},
		{
			name:   "update experience",
			action: Action{Type: ActionUpdateExperience, Index: 2, Field: FieldEmployer, Value: "Acme"},
		},
		{
			name:   "resize with zero width is allowed",
			action: Action{Type: ActionResize},
		},
		{
			name:    "missing type",
			action:  Action{Value: "Go"},
			wantErr: true,
			errMsg:  "required",
		},
		{
			name:    "unknown type",
			action:  Action{Type: "drop_table"},
			wantErr: true,
			errMsg:  "oneof",
		},
		{
			name:    "negative index",
			action:  Action{Type: ActionRemoveSkill, Index: -1},
			wantErr: true,
			errMsg:  "gte",
		},
		{
			name:    "negative width",
			action:  Action{Type: ActionResize, Width: -10},
			wantErr: true,
			errMsg:  "gte",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.action.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestFormState_JSONFieldNames(t *testing.T) {
	state := FormState{
		Personal:    PersonalInfo{FirstName: "Ada", CityState: "London"},
		Experiences: []ExperienceEntry{{JobTitle: "Analyst"}},
		Educations:  []EducationEntry{{School: "Home"}},
		Skills:      []string{"Math"},
		Layout:      LayoutState{EditorWidth: 400},
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(data, &raw))

	personal, ok := raw["personal"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ada", personal["firstName"])
	assert.Equal(t, "London", personal["cityState"])

	layout, ok := raw["layout"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(400), layout["editorWidth"])

	assert.Contains(t, raw, "customSections")
	assert.Contains(t, raw, "skillDraft")
}
