package server

import (
	"embed"
	"html/template"
	"strings"

	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/rendering"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/jonathan/resume-builder/internal/wizard"
)

// The editor score is a fixed placeholder; it is not computed from the form.
const (
	ScorePlaceholder = 72
	ScoreHint        = "+10% Add job title"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplates = template.Must(template.New("pages").Funcs(template.FuncMap{
	"field": func(label, name, value string) formField {
		return formField{Label: label, Name: name, Value: value}
	},
	"inc": func(i int) int { return i + 1 },
}).ParseFS(templateFS, "templates/*.tmpl"))

type formField struct {
	Label string
	Name  string
	Value string
}

type stepView struct {
	Index  int
	Title  string
	Active bool
	Done   bool
}

type editorPage struct {
	Score     int
	ScoreHint string
	Flash     string

	// DefaultAction is submitted when Enter is pressed in a text field.
	DefaultAction types.ActionType

	Steps   []stepView
	Section string
	Title   string
	IsFirst bool
	IsLast  bool
	State   types.FormState

	EditorWidth     int
	MinWidth        int
	MaxWidth        int
	Grid            int
	MinPreviewWidth int

	Styles  template.CSS
	Preview template.HTML
}

// renderEditor renders the editor page for s.
func renderEditor(s types.FormState, flash string) (string, error) {
	preview, err := rendering.RenderFragment(s)
	if err != nil {
		return "", err
	}
	styles, err := rendering.Styles()
	if err != nil {
		return "", err
	}

	current := wizard.Current(s.Wizard)
	sections := wizard.Sections()
	steps := make([]stepView, len(sections))
	for i, sec := range sections {
		steps[i] = stepView{
			Index:  i,
			Title:  sec.Title,
			Active: i == s.Wizard.Current,
			Done:   i < s.Wizard.Current,
		}
	}

	page := editorPage{
		Score:           ScorePlaceholder,
		ScoreHint:       ScoreHint,
		Flash:           flash,
		DefaultAction:   defaultAction(current.Key),
		Steps:           steps,
		Section:         current.Key,
		Title:           current.Title,
		IsFirst:         wizard.IsFirst(s.Wizard),
		IsLast:          wizard.IsLast(s.Wizard),
		State:           s,
		EditorWidth:     s.Layout.EditorWidth,
		MinWidth:        layout.MinEditorWidth,
		MaxWidth:        layout.MaxEditorWidth,
		Grid:            layout.Grid,
		MinPreviewWidth: layout.MinPreviewWidth,
		Styles:          styles,
		Preview:         preview,
	}

	var sb strings.Builder
	if err := pageTemplates.ExecuteTemplate(&sb, "editor", page); err != nil {
		return "", &rendering.TemplateError{Message: "failed to execute template editor", Cause: err}
	}
	return sb.String(), nil
}

// defaultAction is the action a section commits on Enter. Sections without
// one only save the typed values.
func defaultAction(section string) types.ActionType {
	if section == wizard.SectionSkills {
		return types.ActionAddSkill
	}
	return ""
}
