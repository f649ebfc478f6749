package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fiber-bizapp/models"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

var (
	// ErrCompanyRequired is returned when a location would have to be
	// auto-created but the requester carries no company context.
	ErrCompanyRequired = errors.New("company context required: assign the user to a company before creating menu locations")

	// ErrLocationNotFound means the location does not exist and the caller
	// may not create it.
	ErrLocationNotFound = errors.New("menu location not found")
)

// wellKnownLocations drives admin auto-creation of missing locations.
var wellKnownLocations = map[string]models.MenuLocation{
	"sidebar": {Name: "sidebar", Label: "Sidebar", LayoutType: "vertical", MaxDepth: 3},
	"top":     {Name: "top", Label: "Top Bar", LayoutType: "horizontal", MaxDepth: 2},
	"mobile":  {Name: "mobile", Label: "Mobile", LayoutType: "drawer", MaxDepth: 3},
	"footer":  {Name: "footer", Label: "Footer", LayoutType: "horizontal", MaxDepth: 1},
}

// MenuStore is the data access surface the resolver needs. The gorm
// implementation lives in repositories.
type MenuStore interface {
	FindLocation(name string, companyID *uint) (*models.MenuLocation, error)
	CreateLocation(location *models.MenuLocation) error
	FindRoleIDByName(name string) (uint, error)
	ListAssignments(locationID uint, companyID *uint) ([]models.MenuAssignment, error)
}

// ModuleRegistry exposes the current icon of every installed module.
type ModuleRegistry interface {
	IconsBySlug() (map[string]string, error)
}

// RequesterContext carries the identity attributes a resolution runs under.
// UserID and RoleName come from the session; RoleID and BranchID may be
// explicit overrides from query parameters.
type RequesterContext struct {
	UserID    uint
	RoleName  string
	RoleID    uint
	BranchID  string
	CompanyID *uint
}

type AssignmentMeta struct {
	Type     string `json:"type"`
	TargetID string `json:"target_id"`
	Priority int    `json:"priority"`
}

type LocationMeta struct {
	Name       string `json:"name"`
	Label      string `json:"label"`
	LayoutType string `json:"layout_type"`
	MaxDepth   int    `json:"max_depth"`
}

// ResolvedMenu is the single applicable menu for a location, filtered by the
// requester's permissions and enriched with current module icons.
type ResolvedMenu struct {
	Menu       models.Menu    `json:"menu"`
	Location   LocationMeta   `json:"location"`
	Assignment AssignmentMeta `json:"assignment"`
}

type MenuResolverService struct {
	store   MenuStore
	modules ModuleRegistry
}

func NewMenuResolverService(store MenuStore, modules ModuleRegistry) *MenuResolverService {
	return &MenuResolverService{store: store, modules: modules}
}

// Resolve picks the one menu assigned to the named location for this
// requester. A nil result with a nil error means no menu is configured there,
// which is a valid outcome and not a failure.
func (s *MenuResolverService) Resolve(locationName string, rc RequesterContext) (*ResolvedMenu, error) {
	locationName = strings.TrimSpace(locationName)
	if locationName == "" {
		return nil, ErrLocationNotFound
	}

	location, err := s.locateOrCreate(locationName, rc)
	if err != nil {
		return nil, err
	}

	roleID := rc.RoleID
	if roleID == 0 && rc.RoleName != "" {
		// Assignments reference roles by id while the session knows the
		// display name. A failed lookup is not fatal: role-id assignments
		// simply won't match.
		if id, err := s.store.FindRoleIDByName(rc.RoleName); err == nil {
			roleID = id
		}
	}

	assignments, err := s.store.ListAssignments(location.ID, rc.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("menu assignments lookup failed: %w", err)
	}

	// The store already orders by priority; keep the tie-break stable even if
	// an implementation forgets.
	slices.SortStableFunc(assignments, func(a, b models.MenuAssignment) int {
		if a.Priority != b.Priority {
			return a.Priority - b.Priority
		}
		return int(a.ID) - int(b.ID)
	})

	selected := selectAssignment(assignments, rc, roleID)
	if selected == nil {
		return nil, nil
	}

	tier := NormalizeRoleTier(rc.RoleName)
	menu := *selected.Menu
	menu.Items = FilterMenuItems(menu.Items, rc.RoleName, tier, location.MaxDepth)

	icons, err := s.modules.IconsBySlug()
	if err != nil {
		return nil, fmt.Errorf("module registry lookup failed: %w", err)
	}
	menu.Items = EnrichModuleIcons(menu.Items, icons)

	return &ResolvedMenu{
		Menu: menu,
		Location: LocationMeta{
			Name:       location.Name,
			Label:      location.Label,
			LayoutType: location.LayoutType,
			MaxDepth:   location.MaxDepth,
		},
		Assignment: AssignmentMeta{
			Type:     selected.AssignType,
			TargetID: selected.TargetID,
			Priority: selected.Priority,
		},
	}, nil
}

// locateOrCreate finds the location in the requester's company scope or the
// global scope. Administrators get well-known locations created lazily; the
// create is idempotent under races by re-querying on conflict.
func (s *MenuResolverService) locateOrCreate(name string, rc RequesterContext) (*models.MenuLocation, error) {
	location, err := s.store.FindLocation(name, rc.CompanyID)
	if err == nil {
		return location, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("menu location lookup failed: %w", err)
	}

	preset, known := wellKnownLocations[name]
	if !known || !NormalizeRoleTier(rc.RoleName).IsAdmin() {
		return nil, ErrLocationNotFound
	}
	if rc.CompanyID == nil {
		return nil, ErrCompanyRequired
	}

	created := preset
	created.CompanyID = rc.CompanyID
	created.IsActive = true
	created.CreatedBy = int(rc.UserID)

	if createErr := s.store.CreateLocation(&created); createErr != nil {
		// A uniqueness conflict means another request created it first.
		location, err = s.store.FindLocation(name, rc.CompanyID)
		if err != nil {
			return nil, fmt.Errorf("menu location create failed: %w", createErr)
		}
		return location, nil
	}
	return &created, nil
}

// selectAssignment evaluates the candidates in strict tier order: user, role
// by id, role by legacy name, branch, default. The first tier with a match
// wins; the numeric priority only orders candidates inside one tier. An
// assignment whose menu did not load (deactivated or deleted) cannot serve
// and falls through to the next tier.
func selectAssignment(assignments []models.MenuAssignment, rc RequesterContext, roleID uint) *models.MenuAssignment {
	match := func(assignType, targetID string) *models.MenuAssignment {
		if targetID == "" {
			return nil
		}
		for i := range assignments {
			a := &assignments[i]
			if a.Menu == nil {
				continue
			}
			if a.AssignType == assignType && a.TargetID == targetID {
				return a
			}
		}
		return nil
	}

	if rc.UserID != 0 {
		if a := match(models.AssignTypeUser, strconv.FormatUint(uint64(rc.UserID), 10)); a != nil {
			return a
		}
	}
	if roleID != 0 {
		if a := match(models.AssignTypeRole, strconv.FormatUint(uint64(roleID), 10)); a != nil {
			return a
		}
	}
	// Legacy records store the role name instead of the id.
	if a := match(models.AssignTypeRole, rc.RoleName); a != nil {
		return a
	}
	if a := match(models.AssignTypeBranch, rc.BranchID); a != nil {
		return a
	}
	for i := range assignments {
		if assignments[i].AssignType == models.AssignTypeDefault && assignments[i].Menu != nil {
			return &assignments[i]
		}
	}
	return nil
}

// FilterMenuItems prunes a materialized item tree top-down. A dropped parent
// drops its whole subtree; children are only considered for survivors.
func FilterMenuItems(items []models.MenuItem, roleName string, tier RoleTier, maxDepth int) []models.MenuItem {
	return filterItems(items, roleName, tier, maxDepth, 1)
}

func filterItems(items []models.MenuItem, roleName string, tier RoleTier, maxDepth, depth int) []models.MenuItem {
	if maxDepth > 0 && depth > maxDepth {
		return nil
	}

	out := make([]models.MenuItem, 0, len(items))
	for _, item := range items {
		if !item.IsVisible {
			continue
		}
		if item.RequiredRole != "" && item.RequiredRole != roleName {
			continue
		}
		if isModuleSettingsHref(item.Href) && !tier.IsAdmin() {
			continue
		}
		item.Children = filterItems(item.Children, roleName, tier, maxDepth, depth+1)
		out = append(out, item)
	}
	return out
}

// isModuleSettingsHref reports whether the href is a module settings page,
// which only administrator tiers may see.
func isModuleSettingsHref(href string) bool {
	return strings.HasPrefix(href, "/modules/") && strings.HasSuffix(href, "/settings")
}

// EnrichModuleIcons overwrites the icon of module-root items with the
// registry's current icon so a module's icon change shows up without a menu
// edit. Only the module's root/group node qualifies: the item must carry the
// module slug, have surviving children, and point at the module root path or
// its /dashboard variant. Leaf pages under the module keep their own icons.
func EnrichModuleIcons(items []models.MenuItem, icons map[string]string) []models.MenuItem {
	for i := range items {
		item := &items[i]
		item.Children = EnrichModuleIcons(item.Children, icons)

		if item.ModuleSlug == "" || len(item.Children) == 0 {
			continue
		}
		icon, ok := icons[item.ModuleSlug]
		if !ok || icon == "" {
			continue
		}
		root := "/modules/" + item.ModuleSlug
		if item.Href == root || item.Href == root+"/dashboard" {
			item.Icon = icon
		}
	}
	return items
}
