package controllers

import (
	"housing-assist-backend/config"
	"housing-assist-backend/db/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type CreateCompanyRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Phone     string  `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	CreatedBy string  `json:"created_by"`
}

func (cc *ClientController) CreateCompanyController(c *fiber.Ctx) error {
	var request CreateCompanyRequest

	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	if request.Name == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Company name is required",
		})
	}

	company := models.Company{
		Name:      request.Name,
		Email:     request.Email,
		Phone:     request.Phone,
		Address:   request.Address,
		City:      request.City,
		State:     request.State,
		IsActive:  true,
		CreatedBy: request.CreatedBy,
	}

	created, err := cc.ClientRepo.CreateCompany(&company)
	if err != nil {
		config.Logger.Error("Failed to create company", zap.Error(err), zap.String("companyName", company.Name))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating the company",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Company successfully created",
		"data":    created,
	})
}

func (cc *ClientController) GetActiveCompaniesController(c *fiber.Ctx) error {
	companies, err := cc.ClientRepo.GetActiveCompanies()
	if err != nil {
		config.Logger.Error("Failed to fetch companies", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch companies",
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": companies,
	})
}
