package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBloodGroup(t *testing.T) {
	cases := []struct {
		raw  string
		want BloodGroup
		ok   bool
	}{
		{"O-", BloodGroupONegative, true},
		{"o-", BloodGroupONegative, true},
		{" ab+ ", BloodGroupABPositive, true},
		{"AB-", BloodGroupABNegative, true},
		{"C+", "", false},
		{"", "", false},
		{"O", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			got, ok := ParseBloodGroup(tc.raw)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBloodGroup_Matches(t *testing.T) {
	assert.True(t, BloodGroupABPositive.Matches(BloodGroup("ab+")))
	assert.False(t, BloodGroupABPositive.Matches(BloodGroupABNegative))
}
