package routes

import (
	"housing-assist-backend/bleve/controllers"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func InitBleveRoutes(app *fiber.App, controller *controllers.SearchController, db *gorm.DB) {
	api := app.Group("/api/v1/search")

	api.Get("/clients", controller.SearchClientsController)
	api.Get("/buildings", controller.SearchBuildingsController)
}
