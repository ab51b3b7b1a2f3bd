package entity

import "strings"

// BloodGroup represents one of the eight ABO/Rh blood groups.
type BloodGroup string

const (
	BloodGroupAPositive  BloodGroup = "A+"
	BloodGroupANegative  BloodGroup = "A-"
	BloodGroupBPositive  BloodGroup = "B+"
	BloodGroupBNegative  BloodGroup = "B-"
	BloodGroupOPositive  BloodGroup = "O+"
	BloodGroupONegative  BloodGroup = "O-"
	BloodGroupABPositive BloodGroup = "AB+"
	BloodGroupABNegative BloodGroup = "AB-"
)

// String returns the canonical string representation of the BloodGroup.
func (g BloodGroup) String() string {
	return string(g)
}

// IsValid checks if the BloodGroup is one of the eight canonical values.
func (g BloodGroup) IsValid() bool {
	switch g {
	case BloodGroupAPositive, BloodGroupANegative,
		BloodGroupBPositive, BloodGroupBNegative,
		BloodGroupOPositive, BloodGroupONegative,
		BloodGroupABPositive, BloodGroupABNegative:
		return true
	default:
		return false
	}
}

// Matches reports whether two blood groups are equal, ignoring case.
// Clients send groups in arbitrary case ("ab+", "AB+"), so filters must
// compare case-insensitively.
func (g BloodGroup) Matches(other BloodGroup) bool {
	return strings.EqualFold(string(g), string(other))
}

// ParseBloodGroup normalizes a raw string ("ab+", " O- ") into a canonical
// BloodGroup. The boolean is false when the input is not a known group.
func ParseBloodGroup(raw string) (BloodGroup, bool) {
	group := BloodGroup(strings.ToUpper(strings.TrimSpace(raw)))
	if !group.IsValid() {
		return "", false
	}

	return group, true
}
