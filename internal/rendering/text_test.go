package rendering

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestRenderText_Blank(t *testing.T) {
	out := RenderText(editor.New(), 60)

	assert.NotContains(t, out, "EMPLOYMENT HISTORY")
	assert.NotContains(t, out, "EDUCATION")
	assert.NotContains(t, out, "TECHNICAL SKILLS")
}

func TestRenderText_Sections(t *testing.T) {
	s := editor.New()
	s = editor.SetPersonal(s, types.FieldFirstName, "Ada")
	s = editor.SetPersonal(s, types.FieldLastName, "Lovelace")
	s = editor.UpdateExperience(s, 0, types.FieldEmployer, "Engines")
	s = editor.AddSkill(s, "Go")
	s = editor.AddCustomSection(s, "Awards", "Royal Society")

	out := RenderText(s, 60)

	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "AL")
	assert.Contains(t, out, "EMPLOYMENT HISTORY")
	assert.Contains(t, out, "Engines")
	assert.Contains(t, out, "TECHNICAL SKILLS")
	assert.Contains(t, out, "Go")
	assert.Contains(t, out, "AWARDS")
	assert.Contains(t, out, "Royal Society")
}

func TestDivider(t *testing.T) {
	assert.Contains(t, divider("SKILLS", 10), "SKILLS ───")
	assert.Contains(t, divider("A LONG TITLE", 4), "A LONG TITLE")
}
