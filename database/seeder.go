package database

import (
	"log"

	"fiber-bizapp/controllers/idgen"
	"fiber-bizapp/models"
	"fiber-bizapp/types"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func RunSeeders(db *gorm.DB) {
	SeedRoles(db)
	SeedUserMaster(db)
	SeedCompany(db)
	SeedModules(db)
	SeedMenuLocations(db)
	SeedDefaultMenu(db)
}

func SeedRoles(db *gorm.DB) {
	roles := []models.Role{
		{Name: "Viewer", Description: "Read only access"},
		{Name: "Staff", Description: "Regular staff"},
		{Name: "Manager", Description: "Branch manager"},
		{Name: "Admin", Description: "Company administrator"},
		{Name: "SuperAdmin", Description: "Platform administrator"},
	}

	for _, r := range roles {
		var existing models.Role
		if err := db.Where("name = ?", r.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&r)
			}
		}
	}
}

func SeedUserMaster(db *gorm.DB) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash seed password: %v", err)
	}

	users := []models.User{
		{Username: "admin", Password: string(hashed), Name: "Administrator", Email: "admin@bizapp.local", Role: "Admin"},
	}

	for _, u := range users {
		var existing models.User
		if err := db.Where("username = ?", u.Username).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&u)
			}
		}
	}
}

func SeedCompany(db *gorm.DB) {
	companies := []models.Company{
		{Code: "DEMO", Name: "Demo Company", IsActive: true},
	}

	for _, c := range companies {
		var existing models.Company
		if err := db.Where("code = ?", c.Code).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				if err := db.Create(&c).Error; err != nil {
					continue
				}
				branch := models.Branch{
					ID:        types.SnowflakeID(idgen.GenerateID()),
					CompanyID: c.ID,
					Code:      c.Code + "-HQ",
					Name:      c.Name + " Head Office",
					IsActive:  true,
				}
				db.Create(&branch)
			}
		}
	}
}

func SeedModules(db *gorm.DB) {
	modules := []models.AppModule{
		{Slug: "billing", Name: "Billing", Icon: "ReceiptIcon", IsActive: true},
		{Slug: "realestate", Name: "Real Estate", Icon: "BuildingIcon", IsActive: true},
		{Slug: "hr", Name: "Human Resources", Icon: "UsersIcon", IsActive: true},
		{Slug: "accounting", Name: "Accounting", Icon: "CalculatorIcon", IsActive: true},
	}

	for _, m := range modules {
		var existing models.AppModule
		if err := db.Where("slug = ?", m.Slug).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&m)
			}
		}
	}
}

func SeedMenuLocations(db *gorm.DB) {
	locations := []models.MenuLocation{
		{Name: "sidebar", Label: "Sidebar", LayoutType: "vertical", MaxDepth: 3, IsActive: true},
		{Name: "top", Label: "Top Bar", LayoutType: "horizontal", MaxDepth: 2, IsActive: true},
		{Name: "mobile", Label: "Mobile", LayoutType: "drawer", MaxDepth: 3, IsActive: true},
		{Name: "footer", Label: "Footer", LayoutType: "horizontal", MaxDepth: 1, IsActive: true},
	}

	for _, l := range locations {
		var existing models.MenuLocation
		if err := db.Where("name = ? AND company_id IS NULL", l.Name).First(&existing).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				db.Create(&l)
			}
		}
	}
}

// SeedDefaultMenu builds a global sidebar menu and its default assignment so a
// fresh install resolves something.
func SeedDefaultMenu(db *gorm.DB) {
	var menu models.Menu
	if err := db.Where("slug = ?", "default-sidebar").First(&menu).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return
		}
		menu = models.Menu{Name: "Default Sidebar", Slug: "default-sidebar", Locale: "en", IsActive: true}
		if err := db.Create(&menu).Error; err != nil {
			return
		}

		items := []models.MenuItem{
			{MenuID: menu.ID, Label: "Dashboard", Href: "/dashboard", Icon: "HomeIcon", SortOrder: 1, IsVisible: true},
			{MenuID: menu.ID, Label: "Billing", Href: "/modules/billing", Icon: "ReceiptIcon", SortOrder: 2, IsVisible: true, ModuleSlug: "billing"},
			{MenuID: menu.ID, Label: "Settings", Href: "/settings", Icon: "CogIcon", SortOrder: 3, IsVisible: true, RequiredRole: "Admin"},
		}
		for i := range items {
			if err := db.Create(&items[i]).Error; err != nil {
				return
			}
		}

		children := []models.MenuItem{
			{MenuID: menu.ID, ParentID: &items[1].ID, Label: "Invoices", Href: "/modules/billing/invoices", SortOrder: 1, IsVisible: true, ModuleSlug: "billing"},
			{MenuID: menu.ID, ParentID: &items[1].ID, Label: "Billing Settings", Href: "/modules/billing/settings", SortOrder: 2, IsVisible: true, ModuleSlug: "billing"},
		}
		for i := range children {
			db.Create(&children[i])
		}
	}

	var location models.MenuLocation
	if err := db.Where("name = ? AND company_id IS NULL", "sidebar").First(&location).Error; err != nil {
		return
	}

	var existing models.MenuAssignment
	err := db.Where("location_id = ? AND assign_type = ? AND company_id IS NULL",
		location.ID, models.AssignTypeDefault).First(&existing).Error
	if err == gorm.ErrRecordNotFound {
		db.Create(&models.MenuAssignment{
			LocationID: location.ID,
			MenuID:     menu.ID,
			AssignType: models.AssignTypeDefault,
			Priority:   100,
			IsActive:   true,
		})
	}
}
