package services

import "strings"

// RoleTier is the normalized permission tier of a session role name. Role
// names arrive as free-form display strings; they are normalized once at the
// boundary instead of case-compared all over the filter logic.
type RoleTier int

const (
	TierViewer RoleTier = iota
	TierStaff
	TierManager
	TierAdmin
	TierSuperAdmin
)

var roleTiers = map[string]RoleTier{
	"viewer":        TierViewer,
	"staff":         TierStaff,
	"manager":       TierManager,
	"admin":         TierAdmin,
	"administrator": TierAdmin,
	"superadmin":    TierSuperAdmin,
	"super admin":   TierSuperAdmin,
}

// NormalizeRoleTier maps a role display name to its tier. Unknown names fall
// back to Viewer, the least privileged tier.
func NormalizeRoleTier(name string) RoleTier {
	if tier, ok := roleTiers[strings.ToLower(strings.TrimSpace(name))]; ok {
		return tier
	}
	return TierViewer
}

func (t RoleTier) IsAdmin() bool {
	return t >= TierAdmin
}

func (t RoleTier) String() string {
	switch t {
	case TierSuperAdmin:
		return "SuperAdmin"
	case TierAdmin:
		return "Admin"
	case TierManager:
		return "Manager"
	case TierStaff:
		return "Staff"
	default:
		return "Viewer"
	}
}
