package models

import "gorm.io/gorm"

// AppModule is one installed application module (billing, hr, crm, ...). Its
// icon can change independently of any menu entry; the resolver re-reads it
// on every request.
type AppModule struct {
	gorm.Model
	Slug        string `json:"slug" gorm:"uniqueIndex"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`
	CreatedBy   int
	UpdatedBy   int
	DeletedBy   int
}

// RootPath is the canonical menu href of the module's top-level entry.
func (m AppModule) RootPath() string {
	return "/modules/" + m.Slug
}
