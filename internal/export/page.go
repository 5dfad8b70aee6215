package export

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"text/template"
)

// PageSize is a paper size in millimetres.
type PageSize struct {
	WidthMM  float64
	HeightMM float64
}

// A4 portrait.
var A4 = PageSize{WidthMM: 210, HeightMM: 297}

// ScaledHeight returns the height in millimetres of an image of w x h pixels
// drawn at pageWidthMM wide with its aspect ratio preserved.
func ScaledHeight(w, h int, pageWidthMM float64) (float64, error) {
	if w <= 0 {
		return 0, errors.New("image width must be positive")
	}
	return float64(h) * pageWidthMM / float64(w), nil
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
@page { size: {{.PageWidth}}mm {{.PageHeight}}mm; margin: 0; }
html, body { margin: 0; padding: 0; overflow: hidden; }
img { display: block; width: {{.ImageWidth}}mm; height: {{.ImageHeight}}mm; }
</style>
</head>
<body><img src="data:image/png;base64,{{.Data}}" alt="resume"></body>
</html>
`))

type pageData struct {
	PageWidth   string
	PageHeight  string
	ImageWidth  string
	ImageHeight string
	Data        string
}

// documentPage builds an HTML page that places img at the top-left of a
// page of the given size, full page width. Content taller than the page is
// clipped rather than continued on a second page.
func documentPage(img []byte, size PageSize) (string, error) {
	w, h, err := imageSize(img)
	if err != nil {
		return "", err
	}
	height, err := ScaledHeight(w, h, size.WidthMM)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	err = pageTemplate.Execute(&sb, pageData{
		PageWidth:   mm(size.WidthMM),
		PageHeight:  mm(size.HeightMM),
		ImageWidth:  mm(size.WidthMM),
		ImageHeight: mm(height),
		Data:        base64.StdEncoding.EncodeToString(img),
	})
	if err != nil {
		return "", fmt.Errorf("failed to build document page: %w", err)
	}
	return sb.String(), nil
}

func mm(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
