package repositories

import (
	"errors"
	"fmt"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"
	"housing-assist-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrInsufficientFunds is returned when a withdrawal would take the
// company's pool-fund balance below zero.
var ErrInsufficientFunds = errors.New("insufficient pool fund balance")

type PoolFundRepository interface {
	Deposit(companyID uuid.UUID, clientID *uuid.UUID, amount decimal.Decimal, description, createdBy string) (*models.PoolFundTransaction, error)
	Withdraw(companyID uuid.UUID, clientID *uuid.UUID, amount decimal.Decimal, description, createdBy string) (*models.PoolFundTransaction, error)
	GetBalance(companyID uuid.UUID) (decimal.Decimal, error)
	GetFilteredTransactions(pageSize int, offset int, filters map[string]string) ([]models.PoolFundTransaction, int64, error)
}

type poolFundRepository struct {
	db *gorm.DB
}

// NewPoolFundRepository initializes a new pool fund repository
func NewPoolFundRepository(db *gorm.DB) PoolFundRepository {
	return &poolFundRepository{db: db}
}

func (r *poolFundRepository) Deposit(companyID uuid.UUID, clientID *uuid.UUID, amount decimal.Decimal, description, createdBy string) (*models.PoolFundTransaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("deposit amount must be positive, got %s", amount.String())
	}
	return r.createTransaction(companyID, clientID, models.PoolFundDeposit, amount, description, createdBy)
}

// Withdraw records a withdrawal. The balance check and the insert share one
// transaction, which keeps the check consistent with the written row but does
// not serialize concurrent withdrawals against each other.
func (r *poolFundRepository) Withdraw(companyID uuid.UUID, clientID *uuid.UUID, amount decimal.Decimal, description, createdBy string) (*models.PoolFundTransaction, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("withdrawal amount must be positive, got %s", amount.String())
	}

	var created *models.PoolFundTransaction
	err := r.db.Transaction(func(tx *gorm.DB) error {
		balance, err := computeBalance(tx, companyID)
		if err != nil {
			return err
		}
		if balance.LessThan(amount) {
			return ErrInsufficientFunds
		}

		transaction, err := buildTransaction(tx, companyID, clientID, models.PoolFundWithdrawal, amount, description, createdBy)
		if err != nil {
			return err
		}
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to record withdrawal: %w", err)
		}
		created = transaction
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrInsufficientFunds) {
			config.Logger.Error("Pool fund withdrawal failed", zap.Error(err), zap.String("company_id", companyID.String()))
		}
		return nil, err
	}
	return created, nil
}

func (r *poolFundRepository) GetBalance(companyID uuid.UUID) (decimal.Decimal, error) {
	return computeBalance(r.db, companyID)
}

func (r *poolFundRepository) createTransaction(companyID uuid.UUID, clientID *uuid.UUID, txType models.PoolFundTransactionType, amount decimal.Decimal, description, createdBy string) (*models.PoolFundTransaction, error) {
	var created *models.PoolFundTransaction
	err := r.db.Transaction(func(tx *gorm.DB) error {
		transaction, err := buildTransaction(tx, companyID, clientID, txType, amount, description, createdBy)
		if err != nil {
			return err
		}
		if err := tx.Create(transaction).Error; err != nil {
			return fmt.Errorf("failed to record %s: %w", txType, err)
		}
		created = transaction
		return nil
	})
	if err != nil {
		config.Logger.Error("Pool fund transaction failed", zap.Error(err), zap.String("company_id", companyID.String()))
		return nil, err
	}
	return created, nil
}

func buildTransaction(tx *gorm.DB, companyID uuid.UUID, clientID *uuid.UUID, txType models.PoolFundTransactionType, amount decimal.Decimal, description, createdBy string) (*models.PoolFundTransaction, error) {
	sequence, err := nextReceiptSequence(tx, companyID)
	if err != nil {
		return nil, err
	}
	return &models.PoolFundTransaction{
		ID:            uuid.New(),
		CompanyID:     companyID,
		ClientID:      clientID,
		Type:          txType,
		Amount:        amount,
		Description:   description,
		ReceiptNumber: utils.FormatReceiptNumber(sequence),
		CreatedBy:     createdBy,
	}, nil
}

func nextReceiptSequence(tx *gorm.DB, companyID uuid.UUID) (int, error) {
	var count int64
	if err := tx.Model(&models.PoolFundTransaction{}).Where("company_id = ?", companyID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to compute receipt sequence: %w", err)
	}
	return int(count) + 1, nil
}

func computeBalance(tx *gorm.DB, companyID uuid.UUID) (decimal.Decimal, error) {
	type row struct {
		Type  models.PoolFundTransactionType
		Total decimal.Decimal
	}
	var rows []row
	err := tx.Model(&models.PoolFundTransaction{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("company_id = ?", companyID).
		Group("type").
		Scan(&rows).Error
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to compute pool fund balance: %w", err)
	}

	balance := decimal.Zero
	for _, r := range rows {
		switch r.Type {
		case models.PoolFundDeposit:
			balance = balance.Add(r.Total)
		case models.PoolFundWithdrawal:
			balance = balance.Sub(r.Total)
		}
	}
	return balance, nil
}

// GetFilteredTransactions retrieves ledger entries with filtering and pagination
func (r *poolFundRepository) GetFilteredTransactions(pageSize int, offset int, filters map[string]string) ([]models.PoolFundTransaction, int64, error) {
	var transactions []models.PoolFundTransaction
	var total int64

	db := r.db.Model(&models.PoolFundTransaction{})

	for key, value := range filters {
		switch key {
		case "company_id":
			db = db.Where("company_id = ?", value)
		case "client_id":
			db = db.Where("client_id = ?", value)
		case "type":
			db = db.Where("type = ?", value)
		case "start_date":
			db = db.Where("Date(created_at) >= ?", value)
		case "end_date":
			db = db.Where("Date(created_at) <= ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Client").Limit(pageSize).Offset(offset).Order("created_at DESC").Find(&transactions).Error; err != nil {
		return nil, 0, err
	}

	return transactions, total, nil
}
