package routes

import (
	indexing_repository "housing-assist-backend/bleve/repositories"
	controllers "housing-assist-backend/properties/controllers"
	"housing-assist-backend/properties/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PropertyInitRoutes(
	app *fiber.App,
	buildingRepo repositories.BuildingRepository,
	propertyRepo repositories.PropertyRepository,
	bleveInterfaceRepo indexing_repository.BleveRepositoryInterface,
	db *gorm.DB,
) {
	propertyController := &controllers.PropertyController{
		BuildingRepo: buildingRepo,
		PropertyRepo: propertyRepo,
		DB:           db,
		BleveRepo:    bleveInterfaceRepo,
	}

	// Create API v1 group
	api := app.Group("/api/v1")

	api.Post("/buildings", propertyController.CreateBuildingController)
	api.Get("/buildings/filtered", propertyController.GetFilteredBuildingsController)
	api.Post("/properties", propertyController.CreatePropertyController)
	api.Get("/properties/filtered", propertyController.GetFilteredPropertiesController)
	api.Patch("/properties/:id/status", propertyController.UpdatePropertyStatusController)
}
