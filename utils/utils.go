package utils

import (
	"fiber-bizapp/models"

	"gorm.io/gorm"
)

// LogActivity records an audit row; failures are ignored so logging never
// blocks the request.
func LogActivity(db *gorm.DB, userID uint, action, entity, entityID, detail string) {
	db.Create(&models.ActivityLog{
		UserID:   userID,
		Action:   action,
		Entity:   entity,
		EntityID: entityID,
		Detail:   detail,
	})
}
