package routes

import (
	"fiber-bizapp/config"
	"fiber-bizapp/controllers"
	"fiber-bizapp/database"
	"fiber-bizapp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authController := &controllers.AuthController{}

	api := app.Group(config.MAIN_ROUTES + "/auth")
	api.Use(database.InjectDBMiddleware(authController))
	api.Post("/login", authController.Login)

	protected := app.Group(config.MAIN_ROUTES+"/auth", middleware.AuthMiddleware)
	protected.Use(database.InjectDBMiddleware(authController))
	protected.Get("/logout", authController.Logout)
	protected.Get("/me", authController.Me)
}
