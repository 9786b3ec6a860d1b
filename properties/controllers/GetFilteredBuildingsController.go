package controllers

import (
	"housing-assist-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredBuildingsController handles the fetching of filtered buildings
func (pc *PropertyController) GetFilteredBuildingsController(c *fiber.Ctx) error {
	pageSize := c.QueryInt("page_size", 10)
	if pageSize <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid page_size parameter",
		})
	}

	page := c.QueryInt("page", 1)
	if page <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid page parameter",
		})
	}

	offset := (page - 1) * pageSize

	filters := map[string]string{
		"company_id": c.Query("company_id"),
		"status":     c.Query("status"),
		"name":       c.Query("name"),
		"address":    c.Query("address"),
		"landlord":   c.Query("landlord"),
	}
	for key, value := range filters {
		if value == "" {
			delete(filters, key)
		}
	}

	buildings, total, err := pc.BuildingRepo.GetFilteredBuildings(pageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered buildings", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch buildings",
		})
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": buildings,
		"meta": fiber.Map{
			"current_page": page,
			"page_size":    pageSize,
			"total":        total,
			"total_pages":  totalPages,
		},
	})
}
