package controllers

import (
	"time"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"
	"housing-assist-backend/reimbursements/repositories"
	"housing-assist-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReimbursementController struct {
	ReimbursementRepo repositories.ReimbursementRepository
	DB                *gorm.DB
}

type CreateReimbursementRequest struct {
	CompanyID      string `json:"company_id"`
	ClientID       string `json:"client_id"`
	County         string `json:"county"`
	ExpectedAmount string `json:"expected_amount"`
	PeriodDate     string `json:"period_date"`
	Notes          string `json:"notes"`
	CreatedBy      string `json:"created_by"`
}

func (rc *ReimbursementController) CreateReimbursementController(c *fiber.Ctx) error {
	var request CreateReimbursementRequest

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

	clientID, err := uuid.Parse(request.ClientID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid client_id",
			"error":   err.Error(),
		})
	}

	expectedAmount, err := decimal.NewFromString(request.ExpectedAmount)
	if err != nil || expectedAmount.LessThanOrEqual(decimal.Zero) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "expected_amount must be a positive decimal",
		})
	}

	var periodDate *time.Time
	if request.PeriodDate != "" {
		parsed, err := time.Parse("2006-01-02", request.PeriodDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "period_date must be formatted as YYYY-MM-DD",
				"error":   err.Error(),
			})
		}
		periodDate = &parsed
	}

	reimbursement := models.CountyReimbursement{
		CompanyID:      companyID,
		ClientID:       clientID,
		County:         request.County,
		ExpectedAmount: expectedAmount,
		PeriodDate:     periodDate,
		Notes:          request.Notes,
		CreatedBy:      request.CreatedBy,
	}

	created, err := rc.ReimbursementRepo.CreateReimbursement(&reimbursement)
	if err != nil {
		config.Logger.Error("Failed to create reimbursement", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while creating the reimbursement",
			"error":   err.Error(),
		})
	}

	utils.InvalidateCacheAsync("reimbursements")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Reimbursement successfully created",
		"data":    created,
	})
}

type RecordReceivedRequest struct {
	Amount     string `json:"amount"`
	ReceivedAt string `json:"received_at"`
}

// RecordReceivedController reconciles a received county payment against an
// expected reimbursement.
func (rc *ReimbursementController) RecordReceivedController(c *fiber.Ctx) error {
	reimbursementID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid reimbursement id",
			"error":   err.Error(),
		})
	}

	var request RecordReceivedRequest
	if err := c.BodyParser(&request); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request payload",
			"error":   err.Error(),
		})
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid amount",
			"error":   err.Error(),
		})
	}

	receivedAt := time.Now()
	if request.ReceivedAt != "" {
		receivedAt, err = time.Parse("2006-01-02", request.ReceivedAt)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "received_at must be formatted as YYYY-MM-DD",
				"error":   err.Error(),
			})
		}
	}

	updated, err := rc.ReimbursementRepo.RecordReceived(reimbursementID, amount, receivedAt)
	if err != nil {
		config.Logger.Error("Failed to record received reimbursement", zap.Error(err), zap.String("reimbursementID", reimbursementID.String()))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while recording the payment",
			"error":   err.Error(),
		})
	}

	utils.InvalidateCacheAsync("reimbursements")

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Payment recorded",
		"data":    updated,
	})
}

// GetFilteredReimbursementsController handles the fetching of filtered reimbursements
func (rc *ReimbursementController) GetFilteredReimbursementsController(c *fiber.Ctx) error {
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
		"client_id":  c.Query("client_id"),
		"county":     c.Query("county"),
		"status":     c.Query("status"),
		"start_date": c.Query("start_date"),
		"end_date":   c.Query("end_date"),
	}
	for key, value := range filters {
		if value == "" {
			delete(filters, key)
		}
	}

	reimbursements, total, err := rc.ReimbursementRepo.GetFilteredReimbursements(pageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch filtered reimbursements", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch reimbursements",
		})
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": reimbursements,
		"meta": fiber.Map{
			"current_page": page,
			"page_size":    pageSize,
			"total":        total,
			"total_pages":  totalPages,
		},
	})
}
