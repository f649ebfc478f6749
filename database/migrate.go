package database

import (
	"fiber-bizapp/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.UserSession{},
		&models.LoginLog{},
		&models.Company{},
		&models.Branch{},
		&models.AppModule{},
		&models.MenuLocation{},
		&models.Menu{},
		&models.MenuItem{},
		&models.MenuAssignment{},
		&models.Notification{},
		&models.ActivityLog{},
	)
}
