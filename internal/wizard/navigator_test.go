package wizard

import (
	"testing"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestSections_Order(t *testing.T) {
	got := Sections()
	keys := make([]string, 0, len(got))
	for _, s := range got {
		keys = append(keys, s.Key)
	}

	assert.Equal(t, []string{"personal", "experience", "education", "skills", "custom"}, keys)
	assert.Equal(t, 5, Count())
	assert.Equal(t, "Personal Details", got[0].Title)
	assert.Equal(t, "Custom Sections", got[4].Title)
}

func TestSections_ReturnsCopy(t *testing.T) {
	got := Sections()
	got[0].Title = "changed"

	assert.Equal(t, "Personal Details", Sections()[0].Title)
}

func TestNext(t *testing.T) {
	w := types.WizardState{}
	for i := 1; i < Count(); i++ {
		w = Next(w)
		assert.Equal(t, i, w.Current)
	}

	// At the last section Next is a no-op, repeatedly.
	w = Next(w)
	assert.Equal(t, 4, w.Current)
	w = Next(w)
	assert.Equal(t, 4, w.Current)
}

func TestBack(t *testing.T) {
	w := types.WizardState{Current: 2}
	w = Back(w)
	assert.Equal(t, 1, w.Current)
	w = Back(w)
	assert.Equal(t, 0, w.Current)

	w = Back(w)
	assert.Equal(t, 0, w.Current)
	w = Back(w)
	assert.Equal(t, 0, w.Current)
}

func TestGoTo_Clamps(t *testing.T) {
	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"below range", -3, 0},
		{"first", 0, 0},
		{"middle", 3, 3},
		{"last", 4, 4},
		{"above range", 12, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GoTo(types.WizardState{Current: 1}, tt.index).Current)
		})
	}
}

func TestCurrentAndBounds(t *testing.T) {
	first := types.WizardState{}
	assert.True(t, IsFirst(first))
	assert.False(t, IsLast(first))
	assert.Equal(t, SectionPersonal, Current(first).Key)

	last := types.WizardState{Current: 4}
	assert.False(t, IsFirst(last))
	assert.True(t, IsLast(last))
	assert.Equal(t, SectionCustom, Current(last).Key)

	// Out-of-range indexes never panic.
	assert.Equal(t, SectionCustom, Current(types.WizardState{Current: 40}).Key)
}
