package observability

import (
	"bytes"
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestPrintResumeSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	state := &types.FormState{
		Personal:       types.PersonalInfo{FirstName: "Ada", LastName: "Lovelace", JobTitle: "Analyst"},
		Experiences:    []types.ExperienceEntry{{}, {}},
		Educations:     []types.EducationEntry{{}},
		Skills:         []string{"Math", "Poetry", "Looms", "Cards", "Engines", "Notes", "Music"},
		CustomSections: []types.CustomSection{{Title: "Awards", Content: "x"}},
		Wizard:         types.WizardState{Current: 3},
	}

	p.PrintResumeSummary(state)
	output := buf.String()

	assert.Contains(t, output, "RESUME")
	assert.Contains(t, output, "Ada Lovelace")
	assert.Contains(t, output, "Analyst")
	assert.Contains(t, output, "Skills")
	assert.Contains(t, output, "2 entries")
	assert.Contains(t, output, "... and 2 more")
	assert.Contains(t, output, "Awards")
}

func TestPrintResumeSummary_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeSummary(nil)

	assert.Empty(t, buf.String())
}

func TestPrintResumeSummary_NoName(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintResumeSummary(&types.FormState{})

	assert.Contains(t, buf.String(), "(no name)")
	assert.Contains(t, buf.String(), "Personal Details")
}

func TestPrintExportResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintExportResult([]string{"out/resume.png", "out/resume.pdf"}, []int{1024, 2048})
	output := buf.String()

	assert.Contains(t, output, "EXPORTED")
	assert.Contains(t, output, "out/resume.png (1024 bytes)")
	assert.Contains(t, output, "out/resume.pdf (2048 bytes)")
}

func TestPrintExportResult_Empty(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintExportResult(nil, nil)
	assert.Empty(t, buf.String())
}
