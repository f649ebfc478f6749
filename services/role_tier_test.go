package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeRoleTier(t *testing.T) {
	cases := []struct {
		name string
		want RoleTier
	}{
		{"Viewer", TierViewer},
		{"staff", TierStaff},
		{"Manager", TierManager},
		{"admin", TierAdmin},
		{"Admin", TierAdmin},
		{"ADMIN", TierAdmin},
		{"Administrator", TierAdmin},
		{"SuperAdmin", TierSuperAdmin},
		{"super admin", TierSuperAdmin},
		{"  Admin  ", TierAdmin},
		{"", TierViewer},
		{"SomethingElse", TierViewer},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, NormalizeRoleTier(c.name), "role %q", c.name)
	}
}

func TestRoleTierIsAdmin(t *testing.T) {
	assert.False(t, TierViewer.IsAdmin())
	assert.False(t, TierStaff.IsAdmin())
	assert.False(t, TierManager.IsAdmin())
	assert.True(t, TierAdmin.IsAdmin())
	assert.True(t, TierSuperAdmin.IsAdmin())
}

func TestModuleSettingsHref(t *testing.T) {
	assert.True(t, isModuleSettingsHref("/modules/billing/settings"))
	assert.True(t, isModuleSettingsHref("/modules/hr/payroll/settings"))
	assert.False(t, isModuleSettingsHref("/settings"))
	assert.False(t, isModuleSettingsHref("/modules/billing"))
	assert.False(t, isModuleSettingsHref("/profile/settings"))
}
