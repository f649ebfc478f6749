package services

import (
	"sync"
	"testing"

	"fiber-bizapp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeStore struct {
	mu          sync.Mutex
	locations   []models.MenuLocation
	roles       map[string]uint
	assignments []models.MenuAssignment
	nextID      uint
	creates     int
	listErr     error
}

func (f *fakeStore) FindLocation(name string, companyID *uint) (*models.MenuLocation, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findLocked(name, companyID)
}

func (f *fakeStore) findLocked(name string, companyID *uint) (*models.MenuLocation, error) {
	for i := range f.locations {
		loc := &f.locations[i]
		if loc.Name != name {
			continue
		}
		if loc.CompanyID == nil {
			return loc, nil
		}
		if companyID != nil && *loc.CompanyID == *companyID {
			return loc, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeStore) CreateLocation(location *models.MenuLocation) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, err := f.findLocked(location.Name, location.CompanyID); err == nil {
		return gorm.ErrDuplicatedKey
	}
	f.nextID++
	location.ID = f.nextID
	f.locations = append(f.locations, *location)
	f.creates++
	return nil
}

func (f *fakeStore) FindRoleIDByName(name string) (uint, error) {
	if id, ok := f.roles[name]; ok {
		return id, nil
	}
	return 0, gorm.ErrRecordNotFound
}

func (f *fakeStore) ListAssignments(locationID uint, companyID *uint) ([]models.MenuAssignment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []models.MenuAssignment
	for _, a := range f.assignments {
		if a.LocationID == locationID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeRegistry struct {
	icons map[string]string
	err   error
}

func (f *fakeRegistry) IconsBySlug() (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.icons, nil
}

func visibleItem(id uint, label, href string) models.MenuItem {
	item := models.MenuItem{Label: label, Href: href, IsVisible: true}
	item.ID = id
	return item
}

func namedMenu(id uint, name string, items ...models.MenuItem) *models.Menu {
	menu := &models.Menu{Name: name, Slug: name, IsActive: true, Items: items}
	menu.ID = id
	return menu
}

func assignment(id uint, locationID uint, assignType, targetID string, priority int, menu *models.Menu) models.MenuAssignment {
	a := models.MenuAssignment{
		LocationID: locationID,
		MenuID:     menu.ID,
		Menu:       menu,
		AssignType: assignType,
		TargetID:   targetID,
		Priority:   priority,
		IsActive:   true,
	}
	a.ID = id
	return a
}

func sidebarStore() *fakeStore {
	loc := models.MenuLocation{Name: "sidebar", Label: "Sidebar", LayoutType: "vertical", MaxDepth: 3, IsActive: true}
	loc.ID = 1
	return &fakeStore{
		locations: []models.MenuLocation{loc},
		roles:     map[string]uint{"Admin": 4, "Manager": 3, "Staff": 2},
		nextID:    1,
	}
}

func allTierAssignments(store *fakeStore) {
	store.assignments = []models.MenuAssignment{
		assignment(1, 1, models.AssignTypeDefault, "", 1, namedMenu(10, "default-menu", visibleItem(100, "Default", "/d"))),
		assignment(2, 1, models.AssignTypeBranch, "77", 2, namedMenu(11, "branch-menu", visibleItem(101, "Branch", "/b"))),
		assignment(3, 1, models.AssignTypeRole, "3", 3, namedMenu(12, "role-menu", visibleItem(102, "Role", "/r"))),
		assignment(4, 1, models.AssignTypeUser, "42", 4, namedMenu(13, "user-menu", visibleItem(103, "User", "/u"))),
	}
}

func TestResolvePriorityOrder(t *testing.T) {
	store := sidebarStore()
	allTierAssignments(store)
	resolver := NewMenuResolverService(store, &fakeRegistry{})

	rc := RequesterContext{UserID: 42, RoleName: "Manager", BranchID: "77"}
	resolved, err := resolver.Resolve("sidebar", rc)
	require.NoError(t, err)
	require.NotNil(t, resolved)

	// The user assignment wins even though its numeric priority is the worst.
	assert.Equal(t, "user-menu", resolved.Menu.Name)
	assert.Equal(t, models.AssignTypeUser, resolved.Assignment.Type)
}

func TestResolveFallbackChain(t *testing.T) {
	store := sidebarStore()
	allTierAssignments(store)
	resolver := NewMenuResolverService(store, &fakeRegistry{})
	rc := RequesterContext{UserID: 42, RoleName: "Manager", BranchID: "77"}

	remove := func(assignType string) {
		filtered := store.assignments[:0]
		for _, a := range store.assignments {
			if a.AssignType != assignType {
				filtered = append(filtered, a)
			}
		}
		store.assignments = filtered
	}

	remove(models.AssignTypeUser)
	resolved, err := resolver.Resolve("sidebar", rc)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "role-menu", resolved.Menu.Name)

	remove(models.AssignTypeRole)
	resolved, err = resolver.Resolve("sidebar", rc)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "branch-menu", resolved.Menu.Name)

	remove(models.AssignTypeBranch)
	resolved, err = resolver.Resolve("sidebar", rc)
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "default-menu", resolved.Menu.Name)

	remove(models.AssignTypeDefault)
	resolved, err = resolver.Resolve("sidebar", rc)
	require.NoError(t, err)
	assert.Nil(t, resolved, "no assignment left should resolve to nothing, not an error")
}

func TestResolveLegacyRoleNameAssignment(t *testing.T) {
	store := sidebarStore()
	store.roles = map[string]uint{} // role id lookup fails
	store.assignments = []models.MenuAssignment{
		assignment(1, 1, models.AssignTypeRole, "Admin", 1, namedMenu(10, "admin-menu", visibleItem(100, "Admin", "/a"))),
	}
	resolver := NewMenuResolverService(store, &fakeRegistry{})

	resolved, err := resolver.Resolve("sidebar", RequesterContext{UserID: 1, RoleName: "Admin"})
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "admin-menu", resolved.Menu.Name)
	assert.Equal(t, "Admin", resolved.Assignment.TargetID)
}

func TestResolveWithinTierPriorityTieBreak(t *testing.T) {
	store := sidebarStore()
	store.assignments = []models.MenuAssignment{
		assignment(1, 1, models.AssignTypeDefault, "", 5, namedMenu(10, "late", visibleItem(100, "Late", "/l"))),
		assignment(2, 1, models.AssignTypeDefault, "", 1, namedMenu(11, "early", visibleItem(101, "Early", "/e"))),
	}
	resolver := NewMenuResolverService(store, &fakeRegistry{})

	resolved, err := resolver.Resolve("sidebar", RequesterContext{UserID: 1, RoleName: "Staff"})
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "early", resolved.Menu.Name)
}

func TestResolveSkipsAssignmentsWithUnloadedMenu(t *testing.T) {
	store := sidebarStore()
	dead := models.MenuAssignment{
		LocationID: 1,
		MenuID:     99,
		AssignType: models.AssignTypeUser,
		TargetID:   "42",
		Priority:   1,
		IsActive:   true,
	}
	dead.ID = 1
	store.assignments = []models.MenuAssignment{
		dead,
		assignment(2, 1, models.AssignTypeDefault, "", 1, namedMenu(10, "default-menu", visibleItem(100, "Default", "/d"))),
	}
	resolver := NewMenuResolverService(store, &fakeRegistry{})

	// The user-tier assignment points at a menu the store could not load,
	// which is what a deactivated menu looks like. Resolution must fall
	// through to the default instead of failing.
	resolved, err := resolver.Resolve("sidebar", RequesterContext{UserID: 42, RoleName: "Staff"})
	require.NoError(t, err)
	require.NotNil(t, resolved)
	assert.Equal(t, "default-menu", resolved.Menu.Name)

	store.assignments = []models.MenuAssignment{dead}
	resolved, err = resolver.Resolve("sidebar", RequesterContext{UserID: 42, RoleName: "Staff"})
	require.NoError(t, err)
	assert.Nil(t, resolved, "nothing usable left should resolve to nothing, not an error")
}

func TestFilterIdempotence(t *testing.T) {
	items := []models.MenuItem{
		visibleItem(1, "Dashboard", "/dashboard"),
		{Label: "Hidden", Href: "/hidden", IsVisible: false},
		{Label: "Managers", Href: "/managers", IsVisible: true, RequiredRole: "Manager"},
	}

	once := FilterMenuItems(items, "Manager", TierManager, 3)
	twice := FilterMenuItems(once, "Manager", TierManager, 3)
	assert.Equal(t, once, twice)
}

func TestFilterDropsSubtreeWithParent(t *testing.T) {
	parent := models.MenuItem{Label: "Reports", Href: "/reports", IsVisible: true, RequiredRole: "Manager"}
	parent.Children = []models.MenuItem{
		visibleItem(2, "Daily", "/reports/daily"),
		visibleItem(3, "Weekly", "/reports/weekly"),
		visibleItem(4, "Monthly", "/reports/monthly"),
	}
	items := []models.MenuItem{visibleItem(1, "Home", "/"), parent}

	filtered := FilterMenuItems(items, "Staff", TierStaff, 3)
	require.Len(t, filtered, 1)
	assert.Equal(t, "Home", filtered[0].Label)

	kept := FilterMenuItems(items, "Manager", TierManager, 3)
	require.Len(t, kept, 2)
	assert.Len(t, kept[1].Children, 3)
}

func TestFilterModuleSettingsGating(t *testing.T) {
	items := []models.MenuItem{
		visibleItem(1, "Billing Settings", "/modules/billing/settings"),
	}

	assert.Empty(t, FilterMenuItems(items, "Staff", NormalizeRoleTier("Staff"), 3))
	assert.Len(t, FilterMenuItems(items, "Admin", NormalizeRoleTier("Admin"), 3), 1)
	assert.Len(t, FilterMenuItems(items, "superadmin", NormalizeRoleTier("superadmin"), 3), 1)
}

func TestFilterDepthBound(t *testing.T) {
	level3 := visibleItem(3, "Deep", "/a/b/c")
	level2 := visibleItem(2, "Mid", "/a/b")
	level2.Children = []models.MenuItem{level3}
	level1 := visibleItem(1, "Top", "/a")
	level1.Children = []models.MenuItem{level2}

	filtered := FilterMenuItems([]models.MenuItem{level1}, "Staff", TierStaff, 2)
	require.Len(t, filtered, 1)
	require.Len(t, filtered[0].Children, 1)
	assert.Empty(t, filtered[0].Children[0].Children)
}

func TestEnrichModuleIconsScope(t *testing.T) {
	root := visibleItem(1, "Billing", "/modules/billing")
	root.ModuleSlug = "billing"
	root.Icon = "OldIcon"
	leaf := visibleItem(2, "Invoices", "/modules/billing/invoices")
	leaf.ModuleSlug = "billing"
	leaf.Icon = "LeafIcon"
	root.Children = []models.MenuItem{leaf}

	enriched := EnrichModuleIcons([]models.MenuItem{root}, map[string]string{"billing": "NewIcon"})
	require.Len(t, enriched, 1)
	assert.Equal(t, "NewIcon", enriched[0].Icon)
	assert.Equal(t, "LeafIcon", enriched[0].Children[0].Icon, "leaf pages keep their own icon")
}

func TestEnrichModuleIconsRequiresChildren(t *testing.T) {
	childless := visibleItem(1, "Billing", "/modules/billing")
	childless.ModuleSlug = "billing"
	childless.Icon = "OldIcon"

	enriched := EnrichModuleIcons([]models.MenuItem{childless}, map[string]string{"billing": "NewIcon"})
	assert.Equal(t, "OldIcon", enriched[0].Icon)
}

func TestEnrichModuleIconsDashboardVariant(t *testing.T) {
	root := visibleItem(1, "Billing", "/modules/billing/dashboard")
	root.ModuleSlug = "billing"
	root.Children = []models.MenuItem{visibleItem(2, "Invoices", "/modules/billing/invoices")}

	enriched := EnrichModuleIcons([]models.MenuItem{root}, map[string]string{"billing": "NewIcon"})
	assert.Equal(t, "NewIcon", enriched[0].Icon)
}

func TestResolveAutoCreateRequiresAdmin(t *testing.T) {
	store := &fakeStore{roles: map[string]uint{"Staff": 2}}
	resolver := NewMenuResolverService(store, &fakeRegistry{})

	companyID := uint(7)
	_, err := resolver.Resolve("sidebar", RequesterContext{UserID: 1, RoleName: "Staff", CompanyID: &companyID})
	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.Zero(t, store.creates)
}

func TestResolveAutoCreateRequiresCompany(t *testing.T) {
	store := &fakeStore{roles: map[string]uint{"Admin": 4}}
	resolver := NewMenuResolverService(store, &fakeRegistry{})

	_, err := resolver.Resolve("sidebar", RequesterContext{UserID: 1, RoleName: "Admin"})
	assert.ErrorIs(t, err, ErrCompanyRequired)
}

func TestResolveAutoCreateUnknownLocationName(t *testing.T) {
	store := &fakeStore{roles: map[string]uint{"Admin": 4}}
	resolver := NewMenuResolverService(store, &fakeRegistry{})

	companyID := uint(7)
	_, err := resolver.Resolve("breadcrumbs", RequesterContext{UserID: 1, RoleName: "Admin", CompanyID: &companyID})
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestResolveAutoCreateIdempotentUnderRace(t *testing.T) {
	store := &fakeStore{roles: map[string]uint{"Admin": 4}}
	resolver := NewMenuResolverService(store, &fakeRegistry{})
	companyID := uint(7)
	rc := RequesterContext{UserID: 1, RoleName: "Admin", CompanyID: &companyID}

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = resolver.Resolve("sidebar", rc)
		}(i)
	}
	wg.Wait()

	assert.NoError(t, errs[0])
	assert.NoError(t, errs[1])
	assert.Equal(t, 1, store.creates, "exactly one location row must exist")
}

func TestResolveSurfacesStoreFailure(t *testing.T) {
	store := sidebarStore()
	store.listErr = gorm.ErrInvalidDB
	resolver := NewMenuResolverService(store, &fakeRegistry{})

	_, err := resolver.Resolve("sidebar", RequesterContext{UserID: 1, RoleName: "Staff"})
	require.Error(t, err, "a lookup failure must not look like an empty menu")
	assert.ErrorIs(t, err, gorm.ErrInvalidDB)
}

func TestResolveExampleScenario(t *testing.T) {
	store := sidebarStore()
	menuA := namedMenu(10, "menu-a",
		visibleItem(100, "Dashboard", "/dashboard"),
		models.MenuItem{Label: "Settings", Href: "/settings", IsVisible: true, RequiredRole: "Admin"},
	)
	menuB := namedMenu(11, "menu-b", visibleItem(101, "Reports", "/reports"))
	store.assignments = []models.MenuAssignment{
		assignment(1, 1, models.AssignTypeDefault, "", 1, menuA),
		assignment(2, 1, models.AssignTypeRole, "3", 2, menuB),
	}
	resolver := NewMenuResolverService(store, &fakeRegistry{})

	resolved, err := resolver.Resolve("sidebar", RequesterContext{UserID: 5, RoleName: "Manager"})
	require.NoError(t, err)
	require.NotNil(t, resolved)
	require.Len(t, resolved.Menu.Items, 1)
	assert.Equal(t, "Reports", resolved.Menu.Items[0].Label)

	resolved, err = resolver.Resolve("sidebar", RequesterContext{UserID: 6, RoleName: "Staff"})
	require.NoError(t, err)
	require.NotNil(t, resolved)
	require.Len(t, resolved.Menu.Items, 1)
	assert.Equal(t, "Dashboard", resolved.Menu.Items[0].Label)
}
