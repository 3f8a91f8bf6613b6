// Package entity contains the core business objects of the project.
package entity

// Gender represents a client's declared gender.
type Gender string

const (
	// GenderFemale indicates the client declared herself female.
	GenderFemale Gender = "female"
	// GenderMale indicates the client declared himself male.
	GenderMale Gender = "male"
	// GenderOther indicates a gender outside the female/male pair.
	GenderOther Gender = "other"
	// GenderNotGiven indicates the client declined to state a gender.
	GenderNotGiven Gender = "not_given"
)

// String returns the string representation of the Gender.
func (g Gender) String() string {
	return string(g)
}

// IsValid checks if the Gender is a valid value.
func (g Gender) IsValid() bool {
	switch g {
	case GenderFemale, GenderMale, GenderOther, GenderNotGiven:
		return true
	default:
		return false
	}
}
