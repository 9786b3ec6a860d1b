package controllers

import (
	"errors"

	"housing-assist-backend/config"
	"housing-assist-backend/poolfund/repositories"
	"housing-assist-backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PoolFundController struct {
	PoolFundRepo repositories.PoolFundRepository
	DB           *gorm.DB
}

type PoolFundTransactionRequest struct {
	CompanyID   string `json:"company_id"`
	ClientID    string `json:"client_id"`
	Amount      string `json:"amount"`
	Description string `json:"description"`
	CreatedBy   string `json:"created_by"`
}

func (pf *PoolFundController) parseTransactionRequest(c *fiber.Ctx) (uuid.UUID, *uuid.UUID, decimal.Decimal, *PoolFundTransactionRequest, error) {
	var request PoolFundTransactionRequest
	if err := c.BodyParser(&request); err != nil {
		return uuid.Nil, nil, decimal.Zero, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid request payload")
	}

	companyID, err := uuid.Parse(request.CompanyID)
	if err != nil {
		return uuid.Nil, nil, decimal.Zero, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid company_id")
	}

	amount, err := decimal.NewFromString(request.Amount)
	if err != nil {
		return uuid.Nil, nil, decimal.Zero, nil, fiber.NewError(fiber.StatusBadRequest, "Invalid amount")
	}

	return companyID, utils.StringToUUIDPtr(request.ClientID), amount, &request, nil
}

func (pf *PoolFundController) DepositController(c *fiber.Ctx) error {
	companyID, clientID, amount, request, err := pf.parseTransactionRequest(c)
	if err != nil {
		return err
	}

	transaction, err := pf.PoolFundRepo.Deposit(companyID, clientID, amount, request.Description, request.CreatedBy)
	if err != nil {
		config.Logger.Error("Failed to record pool fund deposit", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while recording the deposit",
			"error":   err.Error(),
		})
	}

	utils.InvalidateCacheAsync("poolfund")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Deposit recorded",
		"data":    transaction,
	})
}

func (pf *PoolFundController) WithdrawController(c *fiber.Ctx) error {
	companyID, clientID, amount, request, err := pf.parseTransactionRequest(c)
	if err != nil {
		return err
	}

	transaction, err := pf.PoolFundRepo.Withdraw(companyID, clientID, amount, request.Description, request.CreatedBy)
	if err != nil {
		if errors.Is(err, repositories.ErrInsufficientFunds) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"message": "Withdrawal exceeds available pool fund balance",
			})
		}
		config.Logger.Error("Failed to record pool fund withdrawal", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Something went wrong while recording the withdrawal",
			"error":   err.Error(),
		})
	}

	utils.InvalidateCacheAsync("poolfund")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Withdrawal recorded",
		"data":    transaction,
	})
}

func (pf *PoolFundController) GetBalanceController(c *fiber.Ctx) error {
	companyID, err := uuid.Parse(c.Query("company_id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid company_id",
			"error":   err.Error(),
		})
	}

	balance, err := pf.PoolFundRepo.GetBalance(companyID)
	if err != nil {
		config.Logger.Error("Failed to compute pool fund balance", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Failed to compute pool fund balance",
			"error":   err.Error(),
		})
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": fiber.Map{
			"company_id": companyID,
			"balance":    balance,
		},
	})
}

// GetFilteredTransactionsController handles the fetching of ledger entries
func (pf *PoolFundController) GetFilteredTransactionsController(c *fiber.Ctx) error {
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
		"type":       c.Query("type"),
		"start_date": c.Query("start_date"),
		"end_date":   c.Query("end_date"),
	}
	for key, value := range filters {
		if value == "" {
			delete(filters, key)
		}
	}

	transactions, total, err := pf.PoolFundRepo.GetFilteredTransactions(pageSize, offset, filters)
	if err != nil {
		config.Logger.Error("Failed to fetch pool fund transactions", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to fetch pool fund transactions",
		})
	}

	totalPages := (total + int64(pageSize) - 1) / int64(pageSize)

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"data": transactions,
		"meta": fiber.Map{
			"current_page": page,
			"page_size":    pageSize,
			"total":        total,
			"total_pages":  totalPages,
		},
	})
}
