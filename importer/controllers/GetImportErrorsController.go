package controllers

import (
	"housing-assist-backend/config"
	"housing-assist-backend/importer/repositories"
	"housing-assist-backend/utils/pagination"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type ImportErrorsController struct {
	ImportRepo repositories.ImportRepository
}

// GetImportErrorsController lists rejected import rows for review, with the
// shared pagination envelope.
func (ec *ImportErrorsController) GetImportErrorsController(c *fiber.Ctx) error {
	params := pagination.ParsePaginationParams(c)
	if err := pagination.ValidatePaginationParams(params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	offset := (params.Page - 1) * params.PageSize

	rows, total, err := ec.ImportRepo.GetFilteredImportErrors(params.PageSize, offset, params.Filters)
	if err != nil {
		config.Logger.Error("Failed to fetch import errors", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch import errors",
		})
	}

	return c.Status(fiber.StatusOK).JSON(pagination.NewPaginatedResponse(c, rows, total, params))
}
