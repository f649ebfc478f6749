package routes

import (
	"fiber-bizapp/config"
	"fiber-bizapp/controllers"
	"fiber-bizapp/database"
	"fiber-bizapp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupModuleRoutes(app *fiber.App) {
	moduleController := &controllers.ModuleController{}

	api := app.Group(config.MAIN_ROUTES+"/modules", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(moduleController))

	api.Get("/", moduleController.GetAllModules)
	api.Post("/", moduleController.CreateModule)
	api.Put("/:id", moduleController.UpdateModule)
	api.Delete("/:id", moduleController.DeleteModule)
}
