package controllers

import (
	"context"

	indexing_repository "housing-assist-backend/bleve/repositories"
	"housing-assist-backend/clients/repositories"
	"housing-assist-backend/clients/services"
	"housing-assist-backend/config"
	"housing-assist-backend/db/models"
	"housing-assist-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ClientController struct {
	ClientRepo repositories.ClientRepository
	DB         *gorm.DB
	Ctx        context.Context
	BleveRepo  indexing_repository.BleveRepositoryInterface
}

type CreateClientRequest struct {
	CompanyID    string `json:"company_id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	CaseNumber   string `json:"case_number"`
	ClientNumber string `json:"client_number"`
	County       string `json:"county"`
	Address      string `json:"address"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`
	SSN          string `json:"ssn"`
	CountyAmount string `json:"county_amount"`
	Notes        string `json:"notes"`
	PropertyID   string `json:"property_id"`
	BuildingID   string `json:"building_id"`
	CreatedBy    string `json:"created_by"`
}

func (cc *ClientController) CreateClientController(c *fiber.Ctx) error {
	var request CreateClientRequest

	// Parse incoming JSON payload
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	companyID, err := uuid.Parse(request.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid company_id",
			"error":   err.Error(),
		})
	}

	countyAmount := decimal.Zero
	if request.CountyAmount != "" {
		countyAmount, err = decimal.NewFromString(request.CountyAmount)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid county_amount",
				"error":   err.Error(),
			})
		}
	}

	// Map DTO to GORM model
	client := models.Client{
		CompanyID:    companyID,
		FirstName:    request.FirstName,
		LastName:     request.LastName,
		CaseNumber:   request.CaseNumber,
		ClientNumber: request.ClientNumber,
		County:       request.County,
		Address:      request.Address,
		PhoneNumber:  request.PhoneNumber,
		Email:        request.Email,
		SSN:          request.SSN,
		CountyAmount: countyAmount,
		Notes:        request.Notes,
		PropertyID:   utils.StringToUUIDPtr(request.PropertyID),
		BuildingID:   utils.StringToUUIDPtr(request.BuildingID),
		Status:       models.ClientActive,
		IsActive:     true,
		CreatedBy:    request.CreatedBy,
	}

	// Validate the client data
	validationError := services.ValidateClient(&client)
	if validationError != "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Validation failed",
			"error":   validationError,
		})
	}

	// --- Start Database Transaction ---
	tx := cc.DB.Begin()
	if tx.Error != nil {
		config.Logger.Error("Failed to begin database transaction", zap.Error(tx.Error))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not start database transaction",
			"error":   tx.Error.Error(),
		})
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			config.Logger.Error("Panic detected, rolling back transaction", zap.Any("panic_reason", r))
			panic(r)
		}
	}()

	createdClient, err := repositories.NewClientRepository(tx).CreateClient(&client)
	if err != nil {
		tx.Rollback()
		config.Logger.Error("Failed to create client in database", zap.Error(err), zap.String("clientName", client.FullName))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating the client",
			"error":   err.Error(),
		})
	}

	// --- Bleve Indexing ---
	if cc.BleveRepo != nil {
		err := cc.BleveRepo.IndexSingleClient(*createdClient)
		if err != nil {
			tx.Rollback()
			config.Logger.Error(
				"Failed to index client in Bleve. Rolling back database transaction.",
				zap.Error(err),
				zap.String("clientID", createdClient.ID.String()),
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Client could not be created because indexing failed",
				"error":   err.Error(),
			})
		}
	}

	// --- Commit Database Transaction ---
	if err := tx.Commit().Error; err != nil {
		config.Logger.Error("Failed to commit database transaction", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error: Could not commit database transaction",
			"error":   err.Error(),
		})
	}

	utils.InvalidateCacheAsync("clients")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Client successfully created",
		"data":    createdClient,
	})
}
