package models

import (
	"time"

	"gorm.io/gorm"
)

// Assignment types, evaluated by the resolver in this exact order.
const (
	AssignTypeUser    = "user"
	AssignTypeRole    = "role"
	AssignTypeBranch  = "branch"
	AssignTypeDefault = "default"
)

// MenuLocation is a named mount point for a menu (sidebar, top, mobile,
// footer). At most one location exists per (name, company-or-global).
// Deletes are hard, not soft: a soft-deleted row would keep occupying the
// unique index and block both manual re-creation and lazy auto-creation of
// the same pair.
type MenuLocation struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
	Name       string    `json:"name" gorm:"uniqueIndex:idx_menu_locations_name_company"`
	CompanyID  *uint     `json:"company_id" gorm:"uniqueIndex:idx_menu_locations_name_company"`
	Label      string    `json:"label"`
	LayoutType string    `json:"layout_type"`
	MaxDepth   int       `json:"max_depth" gorm:"default:3"`
	IsActive   bool      `json:"is_active" gorm:"default:true"`
	CreatedBy  int
	UpdatedBy  int
}

type Menu struct {
	gorm.Model
	Name      string     `json:"name"`
	Slug      string     `json:"slug" gorm:"uniqueIndex"`
	Locale    string     `json:"locale"`
	CompanyID *uint      `json:"company_id"`
	IsActive  bool       `json:"is_active" gorm:"default:true"`
	Items     []MenuItem `json:"items" gorm:"foreignKey:MenuID"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type MenuItem struct {
	gorm.Model
	MenuID            uint              `json:"menu_id" gorm:"index"`
	ParentID          *uint             `json:"parent_id"`
	Parent            *MenuItem         `json:"-" gorm:"foreignKey:ParentID"`
	Children          []MenuItem        `json:"children" gorm:"foreignKey:ParentID"`
	Label             string            `json:"label"`
	LabelTranslations map[string]string `json:"label_translations" gorm:"serializer:json"`
	Href              string            `json:"href"`
	Icon              string            `json:"icon"`
	SortOrder         int               `json:"sort_order" gorm:"column:sort_order"`
	IsVisible         bool              `json:"is_visible" gorm:"default:true"`
	RequiredRole      string            `json:"required_role"`
	ModuleSlug        string            `json:"module_slug"`
	CreatedBy         int
	UpdatedBy         int
	DeletedBy         int
}

// MenuAssignment binds one Menu to one Location with a priority tier. The
// numeric priority is only a tie-break within a tier; the decision order is
// fixed by AssignType. TargetID is a string because legacy role assignments
// store the role name instead of the id.
type MenuAssignment struct {
	gorm.Model
	LocationID uint          `json:"location_id" gorm:"index"`
	Location   *MenuLocation `json:"location,omitempty" gorm:"foreignKey:LocationID"`
	MenuID     uint          `json:"menu_id"`
	Menu       *Menu         `json:"menu,omitempty" gorm:"foreignKey:MenuID"`
	AssignType string        `json:"assign_type"`
	TargetID   string        `json:"target_id"`
	Priority   int           `json:"priority" gorm:"default:0"`
	CompanyID  *uint         `json:"company_id"`
	IsActive   bool          `json:"is_active" gorm:"default:true"`
	CreatedBy  int
	UpdatedBy  int
	DeletedBy  int
}
