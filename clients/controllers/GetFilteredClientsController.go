package controllers

import (
	"housing-assist-backend/config"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GetFilteredClientsController handles the fetching of filtered clients
func (cc *ClientController) GetFilteredClientsController(c *fiber.Ctx) error {
	// Parse query parameters
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

	// Calculate offset for pagination
	offset := (page - 1) * pageSize

	filters := map[string]string{
		"company_id":  c.Query("company_id"),
		"active":      c.Query("active"),
		"county":      c.Query("county"),
		"name":        c.Query("name"),
		"case_number": c.Query("case_number"),
		"start_date":  c.Query("start_date"),
		"end_date":    c.Query("end_date"),
	}

	// Drop empty filters so the repository only sees real constraints
	for key, value := range filters {
		if value == "" {
			delete(filters, key)
		}
	}

	allClients, total, err := cc.ClientRepo.GetFilteredClients(pageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered clients", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch clients",
		})
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	// Return paginated response
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": allClients,
		"meta": fiber.Map{
			"current_page": page,
			"page_size":    pageSize,
			"total":        total,
			"total_pages":  totalPages,
		},
	})
}
