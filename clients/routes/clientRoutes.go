package routes

import (
	indexing_repository "housing-assist-backend/bleve/repositories"
	controllers "housing-assist-backend/clients/controllers"
	"housing-assist-backend/clients/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ClientInitRoutes(
	app *fiber.App,
	clientRepo repositories.ClientRepository,
	bleveInterfaceRepo indexing_repository.BleveRepositoryInterface,
	db *gorm.DB,
) {
	clientController := &controllers.ClientController{
		ClientRepo: clientRepo,
		DB:         db,
		BleveRepo:  bleveInterfaceRepo,
	}

	// Create API v1 group
	api := app.Group("/api/v1")

	api.Post("/clients", clientController.CreateClientController)
	api.Get("/clients/filtered", clientController.GetFilteredClientsController)
	api.Get("/clients/:id", clientController.GetClientByIDController)
	api.Patch("/clients/:id", clientController.UpdateClientController)
	api.Post("/companies", clientController.CreateCompanyController)
	api.Get("/companies/active", clientController.GetActiveCompaniesController)
}
