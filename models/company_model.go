package models

import (
	"fiber-bizapp/types"

	"gorm.io/gorm"
)

// Company is the tenant scope. Menu entities carry a nullable company
// reference; a NULL company means the row is global.
type Company struct {
	gorm.Model
	Code      string `json:"code" gorm:"unique"`
	Name      string `json:"name" gorm:"unique"`
	IsActive  bool   `json:"is_active" gorm:"default:true"`
	Branches  []Branch
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}

type Branch struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey"`
	CompanyID uint              `json:"company_id"`
	Code      string            `json:"code" gorm:"unique"`
	Name      string            `json:"name"`
	Address   string            `json:"address"`
	IsActive  bool              `json:"is_active" gorm:"default:true"`
	CreatedBy int
	UpdatedBy int
	DeletedBy int
}
