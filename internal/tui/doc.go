// Package tui runs the resume wizard in the terminal.
//
// Each wizard section is shown as a huh form. Answers are turned into editor
// actions and dispatched on an editor.Store, so the terminal and the browser
// editor share the same state rules. After every section a lipgloss preview
// of the resume is printed and the user picks where to go next.
package tui
