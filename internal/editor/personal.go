package editor

import "github.com/jonathan/resume-builder/internal/types"

// SetPersonal overwrites one personal field. Unknown fields are ignored.
func SetPersonal(s types.FormState, field, value string) types.FormState {
	p := s.Personal
	switch field {
	case types.FieldJobTitle:
		p.JobTitle = value
	case types.FieldFirstName:
		p.FirstName = value
	case types.FieldLastName:
		p.LastName = value
	case types.FieldEmail:
		p.Email = value
	case types.FieldPhone:
		p.Phone = value
	case types.FieldAddress:
		p.Address = value
	case types.FieldCityState:
		p.CityState = value
	case types.FieldCountry:
		p.Country = value
	default:
		return s
	}

	out := clone(s)
	out.Personal = p
	return out
}
