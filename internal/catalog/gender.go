package catalog

import "strings"

type Gender int

const (
	Female Gender = iota
	Male
)

// Genders lists every gender in display order.
var Genders = []Gender{Male, Female}

func (g Gender) String() string {
	if g == Male {
		return "male"
	}
	return "female"
}

// Other returns the opposite gender.
func (g Gender) Other() Gender {
	if g == Male {
		return Female
	}
	return Male
}

// ParseGender reads a button value. Anything other than "male" is female,
// matching the gender buttons' fallback.
func ParseGender(s string) Gender {
	if strings.EqualFold(strings.TrimSpace(s), "male") {
		return Male
	}
	return Female
}
