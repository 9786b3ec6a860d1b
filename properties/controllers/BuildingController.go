package controllers

import (
	"context"

	indexing_repository "housing-assist-backend/bleve/repositories"
	"housing-assist-backend/config"
	"housing-assist-backend/db/models"
	"housing-assist-backend/properties/repositories"
	"housing-assist-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PropertyController struct {
	BuildingRepo repositories.BuildingRepository
	PropertyRepo repositories.PropertyRepository
	DB           *gorm.DB
	Ctx          context.Context
	BleveRepo    indexing_repository.BleveRepositoryInterface
}

type CreateBuildingRequest struct {
	CompanyID     string `json:"company_id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	LandlordName  string `json:"landlord_name"`
	LandlordPhone string `json:"landlord_phone"`
	LandlordEmail string `json:"landlord_email"`
	TotalUnits    int    `json:"total_units"`
	BuildingType  string `json:"building_type"`
	CreatedBy     string `json:"created_by"`
}

func (pc *PropertyController) CreateBuildingController(c *fiber.Ctx) error {
	var request CreateBuildingRequest

	// Parse incoming JSON payload
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if request.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Building name is required",
		})
	}

	companyID, err := uuid.Parse(request.CompanyID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid company_id",
			"error":   err.Error(),
		})
	}

	totalUnits := request.TotalUnits
	if totalUnits <= 0 {
		totalUnits = 1
	}

	building := models.Building{
		CompanyID:     companyID,
		Name:          request.Name,
		Address:       request.Address,
		LandlordName:  request.LandlordName,
		LandlordPhone: request.LandlordPhone,
		LandlordEmail: request.LandlordEmail,
		TotalUnits:    totalUnits,
		BuildingType:  request.BuildingType,
		Status:        models.BuildingActive,
		CreatedBy:     request.CreatedBy,
	}

	createdBuilding, err := pc.BuildingRepo.CreateBuilding(&building)
	if err != nil {
		config.Logger.Error("Failed to create building in database", zap.Error(err), zap.String("buildingName", building.Name))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating the building",
			"error":   err.Error(),
		})
	}

	// --- Bleve Indexing ---
	if pc.BleveRepo != nil {
		if err := pc.BleveRepo.IndexSingleBuilding(*createdBuilding); err != nil {
			config.Logger.Error("Failed to index building in Bleve", zap.Error(err), zap.String("buildingID", createdBuilding.ID.String()))
		}
	}

	utils.InvalidateCacheAsync("buildings")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Building successfully created",
		"data":    createdBuilding,
	})
}
