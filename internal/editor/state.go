// Package editor implements the form state of a resume and the section editor
// operations that mutate it.
//
// Every operation is a pure function: it takes a snapshot and returns a new
// one, leaving the input untouched. Invalid input never produces an error; the
// operation returns the snapshot unchanged instead.
package editor

import (
	"github.com/jonathan/resume-builder/internal/layout"
	"github.com/jonathan/resume-builder/internal/types"
)

// New returns the state of a fresh editing session: one blank experience entry,
// one blank education entry, first wizard section, default pane width.
func New() types.FormState {
	return types.FormState{
		Experiences:    []types.ExperienceEntry{{}},
		Educations:     []types.EducationEntry{{}},
		Skills:         []string{},
		CustomSections: []types.CustomSection{},
		Layout:         layout.Default(),
	}
}

// clone copies every slice of s so that the result can be mutated freely.
func clone(s types.FormState) types.FormState {
	out := s
	out.Experiences = append([]types.ExperienceEntry(nil), s.Experiences...)
	out.Educations = append([]types.EducationEntry(nil), s.Educations...)
	out.Skills = append([]string{}, s.Skills...)
	out.CustomSections = append([]types.CustomSection{}, s.CustomSections...)
	return out
}

// removeAt returns a copy of list without the element at index.
func removeAt[T any](list []T, index int) []T {
	out := make([]T, 0, len(list)-1)
	out = append(out, list[:index]...)
	return append(out, list[index+1:]...)
}

func inRange[T any](list []T, index int) bool {
	return index >= 0 && index < len(list)
}
