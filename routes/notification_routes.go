package routes

import (
	"fiber-bizapp/config"
	"fiber-bizapp/controllers"
	"fiber-bizapp/database"
	"fiber-bizapp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationController := &controllers.NotificationController{}

	api := app.Group(config.MAIN_ROUTES+"/notifications", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(notificationController))

	api.Get("/", notificationController.GetMyNotifications)
	api.Post("/", notificationController.CreateNotification)
	api.Put("/:id/read", notificationController.MarkRead)
}
