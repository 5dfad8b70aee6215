package rendering

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/PuerkitoBio/goquery"
	"github.com/jonathan/resume-builder/internal/editor"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func sampleState() types.FormState {
	s := editor.New()
	s = editor.SetPersonal(s, types.FieldFirstName, "Ada")
	s = editor.SetPersonal(s, types.FieldLastName, "Lovelace")
	s = editor.SetPersonal(s, types.FieldEmail, "ada@example.com")
	s = editor.UpdateExperience(s, 0, types.FieldJobTitle, "Analyst")
	s = editor.UpdateExperience(s, 0, types.FieldEmployer, "Analytical Engines")
	s = editor.UpdateExperience(s, 0, types.FieldDescription, "Wrote Note G")
	s = editor.AddSkill(s, "Math")
	s = editor.AddCustomSection(s, "Awards", "Dean's list")
	return s
}

func TestRenderHTML_FullDocument(t *testing.T) {
	out, err := RenderHTML(sampleState())
	require.NoError(t, err)

	doc := parseDoc(t, out)
	preview := doc.Find("#" + PreviewElementID)
	require.Equal(t, 1, preview.Length())

	assert.Equal(t, "AL", strings.TrimSpace(preview.Find(".avatar").Text()))
	assert.Equal(t, "Ada Lovelace", strings.TrimSpace(preview.Find(".name").Text()))
	assert.Equal(t, "Job Title", strings.TrimSpace(preview.Find(".job-title").Text()))
	assert.Contains(t, preview.Find(".employment").Text(), "Analyst at Analytical Engines")
	assert.Contains(t, preview.Find(".employment p").Text(), "Wrote Note G")
	assert.Equal(t, 0, preview.Find(".education").Length())
	assert.Equal(t, "Math", strings.TrimSpace(preview.Find(".skills .tag").Text()))
	assert.Equal(t, "AWARDS", strings.TrimSpace(preview.Find(".custom .divider").Text()))
	assert.NotEmpty(t, doc.Find("style").Text())
}

func TestRenderHTML_EmptyState(t *testing.T) {
	out, err := RenderHTML(editor.New())
	require.NoError(t, err)

	preview := parseDoc(t, out).Find("#" + PreviewElementID)
	require.Equal(t, 1, preview.Length())
	assert.Equal(t, 0, preview.Find("section").Length(), "only the header renders for an empty form")
}

func TestRenderHTML_EscapesInput(t *testing.T) {
	s := editor.New()
	s = editor.SetPersonal(s, types.FieldFirstName, "<script>alert(1)</script>")

	out, err := RenderHTML(s)
	require.NoError(t, err)

	assert.NotContains(t, out, "<script>alert(1)</script>")
	assert.Equal(t, 0, parseDoc(t, out).Find("#resume-preview script").Length())
}

func TestRenderFragment(t *testing.T) {
	out, err := RenderFragment(sampleState())
	require.NoError(t, err)

	s := string(out)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(s), `<div id="resume-preview">`))
	assert.NotContains(t, s, "<html")
}

func TestStyles(t *testing.T) {
	css, err := Styles()
	require.NoError(t, err)
	assert.Contains(t, string(css), "#resume-preview")
}

func TestParseTemplates_Invalid(t *testing.T) {
	fsys := fstest.MapFS{
		"bad.tmpl": &fstest.MapFile{Data: []byte(`{{define "preview"}}{{.Broken{{end}}`)},
	}

	_, err := parseTemplates(fsys, "*.tmpl")
	require.Error(t, err)

	var templateErr *TemplateError
	assert.ErrorAs(t, err, &templateErr)
	assert.Contains(t, err.Error(), "failed to parse preview templates")
}

func TestRenderText(t *testing.T) {
	out := RenderText(sampleState(), 60)

	assert.Contains(t, out, "AL")
	assert.Contains(t, out, "Ada Lovelace")
	assert.Contains(t, out, "EMPLOYMENT HISTORY")
	assert.Contains(t, out, "Analyst at Analytical Engines")
	assert.Contains(t, out, "TECHNICAL SKILLS")
	assert.Contains(t, out, "AWARDS")
	assert.NotContains(t, out, "EDUCATION")
}
