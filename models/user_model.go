package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Username  string `json:"username" gorm:"unique"`
	Password  string `json:"-"`
	Name      string `json:"name"`
	Email     string `json:"email" gorm:"unique"`
	Role      string `json:"role"`
	CompanyID *uint  `json:"company_id"`
	BranchID  *int64 `json:"branch_id"`
	Roles     []Role `gorm:"many2many:user_roles;"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

// Role Model
type Role struct {
	gorm.Model
	Name        string       `json:"name" gorm:"unique"`
	Description string       `json:"description"`
	Permissions []Permission `gorm:"many2many:role_permissions;"`
}

// Permission Model
type Permission struct {
	gorm.Model
	Name        string `json:"name"`
	Description string `json:"description"`
}
