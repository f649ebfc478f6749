package routes

import (
	"fiber-bizapp/config"
	"fiber-bizapp/controllers"
	"fiber-bizapp/database"
	"fiber-bizapp/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupCompanyRoutes(app *fiber.App) {
	companyController := &controllers.CompanyController{}

	api := app.Group(config.MAIN_ROUTES+"/companies", middleware.AuthMiddleware)
	api.Use(database.InjectDBMiddleware(companyController))

	api.Get("/", companyController.GetAllCompanies)
	api.Post("/", companyController.CreateCompany)
	api.Put("/:id", companyController.UpdateCompany)
	api.Get("/:id/branches", companyController.GetBranches)
	api.Post("/:id/branches", companyController.CreateBranch)
}
