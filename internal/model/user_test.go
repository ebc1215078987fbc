package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole(t *testing.T) {
	tests := []struct {
		role  Role
		valid bool
		staff bool
	}{
		{RoleUser, true, false},
		{RoleModerator, true, true},
		{RoleAdmin, true, true},
		{"owner", false, false},
		{"", false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.role), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.role.Valid())
			assert.Equal(t, tt.staff, tt.role.IsStaff())
		})
	}
}

func TestEffectiveRole(t *testing.T) {
	var missing *User
	assert.Equal(t, RoleUser, missing.EffectiveRole())
	assert.Equal(t, RoleUser, (&User{Role: "owner"}).EffectiveRole())
	assert.Equal(t, RoleModerator, (&User{Role: RoleModerator}).EffectiveRole())
}
