package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetClientByIDController returns one client with its property and building.
func (cc *ClientController) GetClientByIDController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client id",
			"error":   err.Error(),
		})
	}

	client, err := cc.ClientRepo.GetClientByID(clientID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Client not found",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": client,
	})
}
