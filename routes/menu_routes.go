package routes

import (
	"fiber-bizapp/config"
	"fiber-bizapp/controllers"
	"fiber-bizapp/database"
	"fiber-bizapp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupMenuRoutes(app *fiber.App) {
	menuController := &controllers.MenuController{}
	locationController := &controllers.MenuLocationController{}
	resolverController := &controllers.MenuResolverController{}

	menus := app.Group(config.MAIN_ROUTES+"/menus", middleware.AuthMiddleware)
	menus.Use(database.InjectDBMiddleware(menuController))
	menus.Get("/", menuController.GetAllMenus)
	menus.Get("/:id", menuController.GetMenuByID)
	menus.Get("/:id/export", menuController.ExportMenu)
	menus.Post("/", menuController.CreateMenu)
	menus.Put("/:id", menuController.UpdateMenu)
	menus.Delete("/:id", menuController.DeleteMenu)
	menus.Post("/:id/items", menuController.CreateMenuItem)
	menus.Put("/:id/items/:itemId", menuController.UpdateMenuItem)
	menus.Delete("/:id/items/:itemId", menuController.DeleteMenuItem)

	locations := app.Group(config.MAIN_ROUTES+"/menu-locations", middleware.AuthMiddleware)
	locations.Use(database.InjectDBMiddleware(locationController))
	locations.Get("/", locationController.GetAllLocations)
	locations.Post("/", locationController.CreateLocation)
	locations.Put("/:id", locationController.UpdateLocation)
	locations.Delete("/:id", locationController.DeleteLocation)
	locations.Get("/:id/assignments", locationController.GetAssignments)
	locations.Post("/:id/assignments", locationController.CreateAssignment)
	locations.Put("/:id/assignments/:assignmentId", locationController.UpdateAssignment)
	locations.Delete("/:id/assignments/:assignmentId", locationController.DeleteAssignment)

	resolver := app.Group(config.MAIN_ROUTES+"/menu-resolver", middleware.AuthMiddleware)
	resolver.Use(database.InjectDBMiddleware(resolverController))
	resolver.Get("/:location", resolverController.ResolveMenu)
}
