package types

import "github.com/go-playground/validator/v10"

// ActionType names an editor operation.
type ActionType string

// Editor operations. Each one maps onto a single state mutation.
const (
	ActionSetPersonal         ActionType = "set_personal"
	ActionAddExperience       ActionType = "add_experience"
	ActionRemoveExperience    ActionType = "remove_experience"
	ActionUpdateExperience    ActionType = "update_experience"
	ActionAddEducation        ActionType = "add_education"
	ActionRemoveEducation     ActionType = "remove_education"
	ActionUpdateEducation     ActionType = "update_education"
	ActionSetSkillDraft       ActionType = "set_skill_draft"
	ActionAddSkill            ActionType = "add_skill"
	ActionRemoveSkill         ActionType = "remove_skill"
	ActionSetCustomDraft      ActionType = "set_custom_draft"
	ActionAddCustomSection    ActionType = "add_custom_section"
	ActionRemoveCustomSection ActionType = "remove_custom_section"
	ActionWizardNext          ActionType = "wizard_next"
	ActionWizardBack          ActionType = "wizard_back"
	ActionWizardGoTo          ActionType = "wizard_goto"
	ActionResize              ActionType = "resize"
	ActionResizeBy            ActionType = "resize_by"
)

// Action is a single editor operation as submitted by the browser or the JSON API.
// Which of the optional fields are read depends on Type.
type Action struct {
	Type    ActionType `json:"type" validate:"required,oneof=set_personal add_experience remove_experience update_experience add_education remove_education update_education set_skill_draft add_skill remove_skill set_custom_draft add_custom_section remove_custom_section wizard_next wizard_back wizard_goto resize resize_by"`
	Index   int        `json:"index,omitempty" validate:"gte=0"`
	Field   string     `json:"field,omitempty" validate:"max=32"`
	Value   string     `json:"value,omitempty"`
	Title   string     `json:"title,omitempty"`
	Content string     `json:"content,omitempty"`
	Width   int        `json:"width,omitempty" validate:"gte=0"`
	Delta   int        `json:"delta,omitempty"`
}

// Validate validates the Action using the validator.
func (a *Action) Validate() error {
	validate := validator.New()
	return validate.Struct(a)
}
