package rendering

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitials(t *testing.T) {
	tests := []struct {
		first, last string
		want        string
	}{
		{"Ada", "Lovelace", "AL"},
		{"", "Lovelace", "L"},
		{"Ada", "", "A"},
		{"", "", ""},
		{"Émile", "Zola", "ÉZ"},
	}

	for _, tt := range tests {
		t.Run(tt.first+"_"+tt.last, func(t *testing.T) {
			assert.Equal(t, tt.want, Initials(tt.first, tt.last))
		})
	}
}

func TestBuildPreview_Header(t *testing.T) {
	s := editor.New()
	p := BuildPreview(s)

	assert.Equal(t, "", p.Initials)
	assert.Equal(t, "", p.FullName)
	assert.Equal(t, PlaceholderJobTitle, p.JobTitle)

	s = editor.SetPersonal(s, types.FieldFirstName, "Ada")
	s = editor.SetPersonal(s, types.FieldLastName, "Lovelace")
	s = editor.SetPersonal(s, types.FieldJobTitle, "Mathematician")
	s = editor.SetPersonal(s, types.FieldEmail, "ada@example.com")
	s = editor.SetPersonal(s, types.FieldPhone, "555-0100")
	s = editor.SetPersonal(s, types.FieldAddress, "12 St James's Square")

	p = BuildPreview(s)
	assert.Equal(t, "AL", p.Initials)
	assert.Equal(t, "Ada Lovelace", p.FullName)
	assert.Equal(t, "Mathematician", p.JobTitle)
	assert.Equal(t, "ada@example.com | 555-0100", p.ContactLine)
	assert.Equal(t, "12 St James's Square", p.Address)
}

func TestBuildPreview_EmploymentHiddenWithoutTitleOrEmployer(t *testing.T) {
	s := editor.New()
	s = editor.UpdateExperience(s, 0, types.FieldStartDate, "2020")
	s = editor.UpdateExperience(s, 0, types.FieldEndDate, "2021")
	s = editor.UpdateExperience(s, 0, types.FieldDescription, "Did things")

	p := BuildPreview(s)
	assert.False(t, p.ShowExperience())
	assert.Empty(t, p.Experiences)
}

func TestBuildPreview_SkipsBlankEntries(t *testing.T) {
	s := editor.New()
	s = editor.UpdateExperience(s, 0, types.FieldJobTitle, "Engineer")
	s = editor.UpdateExperience(s, 0, types.FieldEmployer, "Acme")
	s = editor.AddExperience(s)
	s = editor.UpdateExperience(s, 1, types.FieldDescription, "orphan description")
	s = editor.AddExperience(s)
	s = editor.UpdateExperience(s, 2, types.FieldEmployer, "Initech")
	s = editor.UpdateExperience(s, 2, types.FieldStartDate, "Jan 2019")
	s = editor.UpdateExperience(s, 2, types.FieldEndDate, "Dec 2019")

	p := BuildPreview(s)
	require.True(t, p.ShowExperience())
	require.Len(t, p.Experiences, 2)
	assert.Equal(t, "Engineer at Acme", p.Experiences[0].Heading)
	assert.Equal(t, "at Initech", p.Experiences[1].Heading)
	assert.Equal(t, "Jan 2019 - Dec 2019", p.Experiences[1].Dates)
}

func TestBuildPreview_Education(t *testing.T) {
	s := editor.New()
	assert.False(t, BuildPreview(s).ShowEducation())

	s = editor.UpdateEducation(s, 0, types.FieldDegree, "BSc")
	s = editor.AddEducation(s)
	s = editor.AddEducation(s)
	s = editor.UpdateEducation(s, 2, types.FieldSchool, "MIT")
	s = editor.UpdateEducation(s, 2, types.FieldDegree, "PhD")

	p := BuildPreview(s)
	require.Len(t, p.Educations, 2)
	assert.Equal(t, "BSc", p.Educations[0].Heading)
	assert.Equal(t, "PhD at MIT", p.Educations[1].Heading)
}

func TestBuildPreview_SkillsAndCustomSections(t *testing.T) {
	s := editor.New()
	p := BuildPreview(s)
	assert.False(t, p.ShowSkills())
	assert.Empty(t, p.CustomSections)

	s = editor.AddSkill(s, "Go")
	s = editor.AddSkill(s, "SQL")
	s = editor.AddCustomSection(s, "Awards", "Dean's list")
	s = editor.AddCustomSection(s, "Languages", "French")

	p = BuildPreview(s)
	assert.True(t, p.ShowSkills())
	assert.Equal(t, []string{"Go", "SQL"}, p.Skills)
	require.Len(t, p.CustomSections, 2)
	assert.Equal(t, "AWARDS", p.CustomSections[0].Title)
	assert.Equal(t, "LANGUAGES", p.CustomSections[1].Title)
	assert.Equal(t, "French", p.CustomSections[1].Content)
}

func TestBuildPreview_Deterministic(t *testing.T) {
	s := editor.New()
	s = editor.SetPersonal(s, types.FieldFirstName, "Grace")
	s = editor.AddSkill(s, "COBOL")

	assert.Equal(t, BuildPreview(s), BuildPreview(s))
}
