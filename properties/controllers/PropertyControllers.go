package controllers

import (
	"housing-assist-backend/config"
	"housing-assist-backend/db/models"
	"housing-assist-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type CreatePropertyRequest struct {
	CompanyID     string `json:"company_id"`
	BuildingID    string `json:"building_id"`
	Name          string `json:"name"`
	UnitNumber    string `json:"unit_number"`
	RentAmount    string `json:"rent_amount"`
	DepositAmount string `json:"deposit_amount"`
	Bedrooms      int    `json:"bedrooms"`
	Bathrooms     int    `json:"bathrooms"`
	CreatedBy     string `json:"created_by"`
}

func (pc *PropertyController) CreatePropertyController(c *fiber.Ctx) error {
	var request CreatePropertyRequest

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

	buildingID, err := uuid.Parse(request.BuildingID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid building_id",
			"error":   err.Error(),
		})
	}

	// The building must exist before a unit can be attached to it
	if _, err := pc.BuildingRepo.GetBuildingByID(buildingID); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Building not found",
			"error":   err.Error(),
		})
	}

	rentAmount := decimal.Zero
	if request.RentAmount != "" {
		rentAmount, err = decimal.NewFromString(request.RentAmount)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid rent_amount",
				"error":   err.Error(),
			})
		}
	}

	depositAmount := decimal.Zero
	if request.DepositAmount != "" {
		depositAmount, err = decimal.NewFromString(request.DepositAmount)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "Invalid deposit_amount",
				"error":   err.Error(),
			})
		}
	}

	unitNumber := request.UnitNumber
	if unitNumber == "" {
		unitNumber = "1"
	}
	bedrooms := request.Bedrooms
	if bedrooms <= 0 {
		bedrooms = 1
	}
	bathrooms := request.Bathrooms
	if bathrooms <= 0 {
		bathrooms = 1
	}

	property := models.Property{
		CompanyID:     companyID,
		BuildingID:    buildingID,
		Name:          request.Name,
		UnitNumber:    unitNumber,
		RentAmount:    rentAmount,
		DepositAmount: depositAmount,
		Bedrooms:      bedrooms,
		Bathrooms:     bathrooms,
		Status:        models.PropertyAvailable,
		CreatedBy:     request.CreatedBy,
	}

	createdProperty, err := pc.PropertyRepo.CreateProperty(&property)
	if err != nil {
		config.Logger.Error("Failed to create property in database", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating the property",
			"error":   err.Error(),
		})
	}

	utils.InvalidateCacheAsync("properties")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Property successfully created",
		"data":    createdProperty,
	})
}

// GetFilteredPropertiesController handles the fetching of filtered properties
func (pc *PropertyController) GetFilteredPropertiesController(c *fiber.Ctx) error {
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
		"company_id":  c.Query("company_id"),
		"building_id": c.Query("building_id"),
		"status":      c.Query("status"),
		"min_rent":    c.Query("min_rent"),
		"max_rent":    c.Query("max_rent"),
		"bedrooms":    c.Query("bedrooms"),
	}
	for key, value := range filters {
		if value == "" {
			delete(filters, key)
		}
	}

	properties, total, err := pc.PropertyRepo.GetFilteredProperties(pageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered properties", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch properties",
		})
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": properties,
		"meta": fiber.Map{
			"current_page": page,
			"page_size":    pageSize,
			"total":        total,
			"total_pages":  totalPages,
		},
	})
}

type UpdatePropertyStatusRequest struct {
	Status string `json:"status"`
}

// UpdatePropertyStatusController flips a unit between available and occupied.
func (pc *PropertyController) UpdatePropertyStatusController(c *fiber.Ctx) error {
	propertyID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid property id",
			"error":   err.Error(),
		})
	}

	var request UpdatePropertyStatusRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	status := models.PropertyStatus(request.Status)
	if status != models.PropertyAvailable && status != models.PropertyOccupied {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Status must be one of: available, occupied",
		})
	}

	updatedProperty, err := pc.PropertyRepo.UpdatePropertyStatus(propertyID, status)
	if err != nil {
		config.Logger.Error("Failed to update property status", zap.Error(err), zap.String("propertyID", propertyID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while updating the property",
			"error":   err.Error(),
		})
	}

	utils.InvalidateCacheAsync("properties")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Property status updated",
		"data":    updatedProperty,
	})
}
