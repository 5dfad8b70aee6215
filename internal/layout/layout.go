// Package layout holds the editor/preview split-pane geometry.
package layout

import "github.com/jonathan/resume-builder/internal/types"

const (
	// MinEditorWidth and MaxEditorWidth bound the editor pane in pixels.
	MinEditorWidth = 300
	MaxEditorWidth = 600
	// Grid is the drag step in pixels.
	Grid = 10
	// DefaultEditorWidth is the width of a fresh session.
	DefaultEditorWidth = 400
	// MinPreviewWidth is the minimum width of the preview pane.
	MinPreviewWidth = 500
)

// Default returns the layout of a fresh session.
func Default() types.LayoutState {
	return types.LayoutState{EditorWidth: DefaultEditorWidth}
}

// Resize sets the editor width, snapped to the grid and clamped to the bounds.
func Resize(l types.LayoutState, width int) types.LayoutState {
	l.EditorWidth = ClampWidth(width)
	return l
}

// ResizeBy applies a drag delta to the current width.
func ResizeBy(l types.LayoutState, delta int) types.LayoutState {
	return Resize(l, l.EditorWidth+delta)
}

// ClampWidth snaps width to the nearest multiple of Grid and clamps it into
// [MinEditorWidth, MaxEditorWidth].
func ClampWidth(width int) int {
	snapped := snap(width)
	if snapped < MinEditorWidth {
		return MinEditorWidth
	}
	if snapped > MaxEditorWidth {
		return MaxEditorWidth
	}
	return snapped
}

// snap rounds half away from zero.
func snap(width int) int {
	if width >= 0 {
		return (width + Grid/2) / Grid * Grid
	}
	return -((-width + Grid/2) / Grid * Grid)
}
