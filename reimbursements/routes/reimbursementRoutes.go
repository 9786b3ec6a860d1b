package routes

import (
	controllers "housing-assist-backend/reimbursements/controllers"
	"housing-assist-backend/reimbursements/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ReimbursementInitRoutes(
	app *fiber.App,
	reimbursementRepo repositories.ReimbursementRepository,
	db *gorm.DB,
) {
	reimbursementController := &controllers.ReimbursementController{
		ReimbursementRepo: reimbursementRepo,
		DB:                db,
	}

	// Create API v1 group
	api := app.Group("/api/v1")

	api.Post("/reimbursements", reimbursementController.CreateReimbursementController)
	api.Patch("/reimbursements/:id/received", reimbursementController.RecordReceivedController)
	api.Get("/reimbursements/filtered", reimbursementController.GetFilteredReimbursementsController)
}
