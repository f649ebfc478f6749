package repositories

import (
	"fiber-bizapp/models"

	"gorm.io/gorm"
)

// TenantScope limits a query to rows owned by the company or global rows
// (company_id IS NULL). Every menu lookup goes through this one combinator so
// Location, Menu and Assignment scoping cannot drift apart.
func TenantScope(companyID *uint) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if companyID == nil {
			return db.Where("company_id IS NULL")
		}
		return db.Where("company_id = ? OR company_id IS NULL", *companyID)
	}
}

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(DB *gorm.DB) *MenuRepository {
	return &MenuRepository{DB: DB}
}

// FindLocation prefers the company-scoped row over the global one when both
// exist for the same name.
func (r *MenuRepository) FindLocation(name string, companyID *uint) (*models.MenuLocation, error) {
	var location models.MenuLocation

	if companyID != nil {
		err := r.DB.Where("name = ? AND company_id = ? AND is_active = ?", name, *companyID, true).
			First(&location).Error
		if err == nil {
			return &location, nil
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
	}

	err := r.DB.Where("name = ? AND company_id IS NULL AND is_active = ?", name, true).
		First(&location).Error
	if err != nil {
		return nil, err
	}
	return &location, nil
}

func (r *MenuRepository) CreateLocation(location *models.MenuLocation) error {
	return r.DB.Create(location).Error
}

func (r *MenuRepository) FindRoleIDByName(name string) (uint, error) {
	var role models.Role
	if err := r.DB.Where("name = ?", name).First(&role).Error; err != nil {
		return 0, err
	}
	return role.ID, nil
}

// ListAssignments returns the active candidates for a location in the
// company-or-global scope, each with its menu and three levels of visible,
// ordered items.
func (r *MenuRepository) ListAssignments(locationID uint, companyID *uint) ([]models.MenuAssignment, error) {
	visibleOrdered := func(db *gorm.DB) *gorm.DB {
		return db.Where("is_visible = ?", true).Order("sort_order asc")
	}

	var assignments []models.MenuAssignment
	err := r.DB.
		Scopes(TenantScope(companyID)).
		Where("location_id = ? AND is_active = ?", locationID, true).
		Order("priority asc, id asc").
		Preload("Menu", "is_active = ?", true).
		Preload("Menu.Items", func(db *gorm.DB) *gorm.DB {
			return visibleOrdered(db).Where("parent_id IS NULL")
		}).
		Preload("Menu.Items.Children", visibleOrdered).
		Preload("Menu.Items.Children.Children", visibleOrdered).
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

// IconsBySlug returns the current icon of every active module.
func (r *MenuRepository) IconsBySlug() (map[string]string, error) {
	var modules []models.AppModule
	if err := r.DB.Where("is_active = ?", true).Find(&modules).Error; err != nil {
		return nil, err
	}

	icons := make(map[string]string, len(modules))
	for _, m := range modules {
		if m.Icon != "" {
			icons[m.Slug] = m.Icon
		}
	}
	return icons, nil
}
