// Package types provides type definitions for structured data used throughout the resume-builder system.
package types

// PersonalInfo holds the header fields of the resume. All fields default to empty.
type PersonalInfo struct {
	JobTitle  string `json:"jobTitle"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CityState string `json:"cityState"`
	Country   string `json:"country"`
}

// ExperienceEntry is one employment record.
type ExperienceEntry struct {
	JobTitle    string `json:"jobTitle"`
	Employer    string `json:"employer"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
	Description string `json:"description"`
}

// EducationEntry is one education record.
type EducationEntry struct {
	School    string `json:"school"`
	Degree    string `json:"degree"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// CustomSection is a free-form titled block. It is also used as the pending
// input buffer of the custom sections editor.
type CustomSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// WizardState is the index of the visible section editor.
type WizardState struct {
	Current int `json:"current"`
}

// LayoutState holds the editor pane width in pixels.
type LayoutState struct {
	EditorWidth int `json:"editorWidth"`
}

// FormState is a complete snapshot of one editing session.
// Experiences and Educations always hold at least one entry.
type FormState struct {
	Personal       PersonalInfo      `json:"personal"`
	Experiences    []ExperienceEntry `json:"experiences"`
	Educations     []EducationEntry  `json:"educations"`
	Skills         []string          `json:"skills"`
	SkillDraft     string            `json:"skillDraft"`
	CustomSections []CustomSection   `json:"customSections"`
	CustomDraft    CustomSection     `json:"customDraft"`
	Wizard         WizardState       `json:"wizard"`
	Layout         LayoutState       `json:"layout"`
}

// Field names accepted by the field-path setters.
const (
	FieldJobTitle    = "jobTitle"
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldEmail       = "email"
	FieldPhone       = "phone"
	FieldAddress     = "address"
	FieldCityState   = "cityState"
	FieldCountry     = "country"
	FieldEmployer    = "employer"
	FieldStartDate   = "startDate"
	FieldEndDate     = "endDate"
	FieldDescription = "description"
	FieldSchool      = "school"
	FieldDegree      = "degree"
)
