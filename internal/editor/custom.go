package editor

import (
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// SetCustomDraft replaces the pending custom section input.
func SetCustomDraft(s types.FormState, title, content string) types.FormState {
	out := clone(s)
	out.CustomDraft = types.CustomSection{Title: title, Content: content}
	return out
}

// AddCustomSection appends a section when both title and content are non-empty
// after trimming, and clears the pending input. The stored values are not trimmed.
func AddCustomSection(s types.FormState, title, content string) types.FormState {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return s
	}

	out := clone(s)
	out.CustomSections = append(out.CustomSections, types.CustomSection{Title: title, Content: content})
	out.CustomDraft = types.CustomSection{}
	return out
}

// CommitCustomDraft adds the pending input as a custom section.
func CommitCustomDraft(s types.FormState) types.FormState {
	return AddCustomSection(s, s.CustomDraft.Title, s.CustomDraft.Content)
}

// RemoveCustomSection removes the section at index.
func RemoveCustomSection(s types.FormState, index int) types.FormState {
	if !inRange(s.CustomSections, index) {
		return s
	}
	out := clone(s)
	out.CustomSections = removeAt(s.CustomSections, index)
	return out
}
