package routes

import (
	controllers "housing-assist-backend/poolfund/controllers"
	"housing-assist-backend/poolfund/repositories"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func PoolFundInitRoutes(
	app *fiber.App,
	poolFundRepo repositories.PoolFundRepository,
	db *gorm.DB,
) {
	poolFundController := &controllers.PoolFundController{
		PoolFundRepo: poolFundRepo,
		DB:           db,
	}

	// Create API v1 group
	api := app.Group("/api/v1")

	api.Post("/pool-fund/deposits", poolFundController.DepositController)
	api.Post("/pool-fund/withdrawals", poolFundController.WithdrawController)
	api.Get("/pool-fund/balance", poolFundController.GetBalanceController)
	api.Get("/pool-fund/transactions/filtered", poolFundController.GetFilteredTransactionsController)
}
