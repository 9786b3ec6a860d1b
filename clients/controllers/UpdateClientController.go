package controllers

import (
	"housing-assist-backend/clients/services"
	"housing-assist-backend/config"
	"housing-assist-backend/db/models"
	"housing-assist-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type UpdateClientRequest struct {
	FirstName    *string `json:"first_name"`
	LastName     *string `json:"last_name"`
	CaseNumber   *string `json:"case_number"`
	County       *string `json:"county"`
	Address      *string `json:"address"`
	PhoneNumber  *string `json:"phone_number"`
	Email        *string `json:"email"`
	CountyAmount *string `json:"county_amount"`
	Notes        *string `json:"notes"`
	Status       *string `json:"status"`
	PropertyID   *string `json:"property_id"`
	BuildingID   *string `json:"building_id"`
}

// UpdateClientController applies a partial update to an existing client.
// Only fields present in the payload are changed.
func (cc *ClientController) UpdateClientController(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client id",
			"error":   err.Error(),
		})
	}

	var request UpdateClientRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
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

	if request.FirstName != nil {
		client.FirstName = *request.FirstName
	}
	if request.LastName != nil {
		client.LastName = *request.LastName
	}
	if request.CaseNumber != nil {
		client.CaseNumber = *request.CaseNumber
	}
	if request.County != nil {
		client.County = *request.County
	}
	if request.Address != nil {
		client.Address = *request.Address
	}
	if request.PhoneNumber != nil {
		client.PhoneNumber = *request.PhoneNumber
	}
	if request.Email != nil {
		client.Email = *request.Email
	}
	if request.Notes != nil {
		client.Notes = *request.Notes
	}
	if request.CountyAmount != nil {
		amount, err := decimal.NewFromString(*request.CountyAmount)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid county_amount",
				"error":   err.Error(),
			})
		}
		client.CountyAmount = amount
	}
	if request.Status != nil {
		if !services.IsValidStatus(*request.Status) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid status",
			})
		}
		client.Status = models.ClientStatus(*request.Status)
		client.IsActive = client.Status == models.ClientActive
	}
	if request.PropertyID != nil {
		client.PropertyID = utils.StringToUUIDPtr(*request.PropertyID)
	}
	if request.BuildingID != nil {
		client.BuildingID = utils.StringToUUIDPtr(*request.BuildingID)
	}

	validationError := services.ValidateClient(client)
	if validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	updatedClient, err := cc.ClientRepo.UpdateClient(client)
	if err != nil {
		config.Logger.Error("Failed to update client", zap.Error(err), zap.String("clientID", clientID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while updating the client",
			"error":   err.Error(),
		})
	}

	// Keep the search index in sync with the database
	if cc.BleveRepo != nil {
		if err := cc.BleveRepo.UpdateClient(*updatedClient); err != nil {
			config.Logger.Error("Failed to update client in Bleve", zap.Error(err), zap.String("clientID", clientID.String()))
		}
	}

	utils.InvalidateCacheAsync("clients")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Client successfully updated",
		"data":    updatedClient,
	})
}
