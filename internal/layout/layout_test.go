package layout

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestClampWidth(t *testing.T) {
	tests := []struct {
		name  string
		width int
		want  int
	}{
		{"far below minimum", 0, 300},
		{"negative", -250, 300},
		{"just below minimum", 294, 300},
		{"minimum", 300, 300},
		{"on grid", 420, 420},
		{"rounds down", 423, 420},
		{"rounds up", 425, 430},
		{"maximum", 600, 600},
		{"just above maximum", 604, 600},
		{"far above maximum", 5000, 600},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClampWidth(tt.width))
		})
	}
}

func TestResize(t *testing.T) {
	l := Default()
	assert.Equal(t, 400, l.EditorWidth)

	l = Resize(l, 555)
	assert.Equal(t, 560, l.EditorWidth)

	l = Resize(l, 100)
	assert.Equal(t, 300, l.EditorWidth)
}

func TestResizeBy(t *testing.T) {
	l := types.LayoutState{EditorWidth: 400}

	l = ResizeBy(l, 37)
	assert.Equal(t, 440, l.EditorWidth)

	l = ResizeBy(l, 1000)
	assert.Equal(t, 600, l.EditorWidth)

	l = ResizeBy(l, -1000)
	assert.Equal(t, 300, l.EditorWidth)
}
