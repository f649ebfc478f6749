package main

import (
	"fmt"
	"log"

	"fiber-bizapp/config"
	"fiber-bizapp/controllers/idgen"
	"fiber-bizapp/database"
	"fiber-bizapp/routes"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.LoadConfig()

	app := fiber.New()

	database.EnsureDatabaseExists(config.DBName)

	db, err := database.OpenAppDB()
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to auto migrate: %v", err)
	}

	idgen.Init()
	database.RunSeeders(db)

	config.SetupCORS(app)

	routes.SetupAuthRoutes(app)
	routes.SetupUserRoutes(app)
	routes.SetupCompanyRoutes(app)
	routes.SetupModuleRoutes(app)
	routes.SetupMenuRoutes(app)
	routes.SetupNotificationRoutes(app)

	port := config.APP_PORT
	fmt.Println("🚀 Server running on port " + port)

	if err := app.Listen(":" + port); err != nil {
		log.Fatal(err)
	}
}
