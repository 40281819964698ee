package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser_JSONOmitsPasswordHash(t *testing.T) {
	u := User{ID: 1, Name: "A", Email: "a@b.com", Role: RoleAdmin, PasswordHash: "$2a$10$secret"}

	payload, err := json.Marshal(u)
	require.NoError(t, err)

	assert.NotContains(t, string(payload), "secret")
	assert.NotContains(t, string(payload), "password")
	assert.Contains(t, string(payload), `"role":1`)
}

func TestRole_StringAndParse(t *testing.T) {
	assert.Equal(t, "standard", RoleStandard.String())
	assert.Equal(t, "admin", RoleAdmin.String())
	assert.Equal(t, RoleAdmin, ParseRole(" Admin "))
	assert.Equal(t, RoleStandard, ParseRole("root"))
}

func TestContactPatch_Apply(t *testing.T) {
	c := Contact{FirstName: "Ada", LastName: "Lovelace", PhoneNumber: "08012345678"}

	ContactPatch{LastName: "Byron"}.Apply(&c)

	assert.Equal(t, "Ada", c.FirstName)
	assert.Equal(t, "Byron", c.LastName)
	assert.Equal(t, "08012345678", c.PhoneNumber)
}

func TestValidPhone(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"08012345678", true},
		{"0801 234 5678", true},
		{"0801-234-5678", true},
		{"+2348012345678", false},
		{"+234 801 234 5678", false},
		{"(0801) 234-5678", true},
		{"2348012345678", false},
		{"8012345678", false},
		{"080123456789", false},
		{"", false},
		{"phone", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidPhone(tt.in))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "08012345678", NormalizePhone(" (0801) 234-5678 "))
	assert.Equal(t, "2348012345678", NormalizePhone("+234 801 234 5678"))
}
