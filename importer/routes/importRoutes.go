package routes

import (
	controllers "housing-assist-backend/importer/controllers"
	"housing-assist-backend/importer/repositories"
	"housing-assist-backend/importer/services"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"gorm.io/gorm"
)

func ImportInitRoutes(
	app *fiber.App,
	importRepo repositories.ImportRepository,
	asynqClient *asynq.Client,
	db *gorm.DB,
) {
	importController := &controllers.ImportController{
		Driver:      services.NewImportDriver(importRepo, nil),
		DB:          db,
		AsynqClient: asynqClient,
	}
	importErrorsController := &controllers.ImportErrorsController{
		ImportRepo: importRepo,
	}

	// Create API v1 group
	api := app.Group("/api/v1")

	api.Post("/clients/bulk-upload", importController.BulkUploadClients)
	api.Get("/imports/errors", importErrorsController.GetImportErrorsController)
}
