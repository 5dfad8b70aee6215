package rendering

import (
	"embed"
	"html/template"
	"io/fs"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

// PreviewElementID is the id of the element that holds the rendered preview.
// The export pipeline rasterizes exactly this element.
const PreviewElementID = "resume-preview"

//go:embed templates/*.tmpl
var templateFS embed.FS

var loadTemplates = sync.OnceValues(func() (*template.Template, error) {
	return parseTemplates(templateFS, "templates/*.tmpl")
})

// parseTemplates parses the preview templates matching pattern from fsys
func parseTemplates(fsys fs.FS, pattern string) (*template.Template, error) {
	tmpl, err := template.New("resume").ParseFS(fsys, pattern)
	if err != nil {
		return nil, &TemplateError{
			Message: "failed to parse preview templates",
			Cause:   err,
		}
	}
	return tmpl, nil
}

// RenderHTML renders s as a standalone HTML document containing the preview element.
func RenderHTML(s types.FormState) (string, error) {
	return execute("document", BuildPreview(s))
}

// RenderFragment renders only the preview element, for embedding into a page
// that also includes Styles.
func RenderFragment(s types.FormState) (template.HTML, error) {
	out, err := execute("preview", BuildPreview(s))
	if err != nil {
		return "", err
	}
	//nolint:gosec // produced by html/template, already escaped
	return template.HTML(out), nil
}

// Styles returns the stylesheet used by the preview element.
func Styles() (template.CSS, error) {
	out, err := execute("styles", nil)
	if err != nil {
		return "", err
	}
	//nolint:gosec // static stylesheet from the embedded template
	return template.CSS(out), nil
}

func execute(name string, data any) (string, error) {
	tmpl, err := loadTemplates()
	if err != nil {
		return "", err
	}

	var result strings.Builder
	if err := tmpl.ExecuteTemplate(&result, name, data); err != nil {
		return "", &TemplateError{
			Message: "failed to execute template " + name,
			Cause:   err,
		}
	}
	return result.String(), nil
}
