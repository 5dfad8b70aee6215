package editor

import (
	"slices"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// SetSkillDraft replaces the pending skill input.
func SetSkillDraft(s types.FormState, text string) types.FormState {
	out := clone(s)
	out.SkillDraft = text
	return out
}

// AddSkill appends the trimmed text and clears the pending input. Empty,
// whitespace-only and already present skills (exact match) are ignored.
func AddSkill(s types.FormState, text string) types.FormState {
	skill := strings.TrimSpace(text)
	if skill == "" || slices.Contains(s.Skills, skill) {
		return s
	}

	out := clone(s)
	out.Skills = append(out.Skills, skill)
	out.SkillDraft = ""
	return out
}

// CommitSkillDraft adds the pending input as a skill, as the commit key does.
func CommitSkillDraft(s types.FormState) types.FormState {
	return AddSkill(s, s.SkillDraft)
}

// RemoveSkill removes the skill at index.
func RemoveSkill(s types.FormState, index int) types.FormState {
	if !inRange(s.Skills, index) {
		return s
	}
	out := clone(s)
	out.Skills = removeAt(s.Skills, index)
	return out
}
