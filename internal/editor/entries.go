package editor

import "github.com/jonathan/resume-builder/internal/types"

// AddExperience appends a blank experience entry.
func AddExperience(s types.FormState) types.FormState {
	out := clone(s)
	out.Experiences = append(out.Experiences, types.ExperienceEntry{})
	return out
}

// RemoveExperience removes the entry at index unless it is the only one left.
func RemoveExperience(s types.FormState, index int) types.FormState {
	if len(s.Experiences) <= 1 || !inRange(s.Experiences, index) {
		return s
	}
	out := clone(s)
	out.Experiences = removeAt(s.Experiences, index)
	return out
}

// UpdateExperience overwrites one field of the entry at index.
func UpdateExperience(s types.FormState, index int, field, value string) types.FormState {
	if !inRange(s.Experiences, index) {
		return s
	}

	e := s.Experiences[index]
	switch field {
	case types.FieldJobTitle:
		e.JobTitle = value
	case types.FieldEmployer:
		e.Employer = value
	case types.FieldStartDate:
		e.StartDate = value
	case types.FieldEndDate:
		e.EndDate = value
	case types.FieldDescription:
		e.Description = value
	default:
		return s
	}

	out := clone(s)
	out.Experiences[index] = e
	return out
}

// AddEducation appends a blank education entry.
func AddEducation(s types.FormState) types.FormState {
	out := clone(s)
	out.Educations = append(out.Educations, types.EducationEntry{})
	return out
}

// RemoveEducation removes the entry at index unless it is the only one left.
func RemoveEducation(s types.FormState, index int) types.FormState {
	if len(s.Educations) <= 1 || !inRange(s.Educations, index) {
		return s
	}
	out := clone(s)
	out.Educations = removeAt(s.Educations, index)
	return out
}

// UpdateEducation overwrites one field of the entry at index.
func UpdateEducation(s types.FormState, index int, field, value string) types.FormState {
	if !inRange(s.Educations, index) {
		return s
	}

	e := s.Educations[index]
	switch field {
	case types.FieldSchool:
		e.School = value
	case types.FieldDegree:
		e.Degree = value
	case types.FieldStartDate:
		e.StartDate = value
	case types.FieldEndDate:
		e.EndDate = value
	default:
		return s
	}

	out := clone(s)
	out.Educations[index] = e
	return out
}
