package models

import (
	"time"

	"fiber-bizapp/types"
)

type Notification struct {
	ID        types.SnowflakeID `json:"id" gorm:"primaryKey"`
	UserID    uint              `json:"user_id" gorm:"index"`
	Subject   string            `json:"subject"`
	Body      string            `json:"body"`
	IsRead    bool              `json:"is_read" gorm:"default:false"`
	Emailed   bool              `json:"emailed" gorm:"default:false"`
	EmailedAt *time.Time        `json:"emailed_at"`
	SendError string            `json:"send_error"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type ActivityLog struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"index"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entity_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}
