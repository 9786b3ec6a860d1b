package repositories

import (
	"errors"
	"fmt"
	"time"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type ReimbursementRepository interface {
	CreateReimbursement(reimbursement *models.CountyReimbursement) (*models.CountyReimbursement, error)
	GetReimbursementByID(id uuid.UUID) (*models.CountyReimbursement, error)
	RecordReceived(id uuid.UUID, amount decimal.Decimal, receivedAt time.Time) (*models.CountyReimbursement, error)
	GetFilteredReimbursements(pageSize int, offset int, filters map[string]string) ([]models.CountyReimbursement, int64, error)
}

type reimbursementRepository struct {
	db *gorm.DB
}

// NewReimbursementRepository initializes a new reimbursement repository
func NewReimbursementRepository(db *gorm.DB) ReimbursementRepository {
	return &reimbursementRepository{db: db}
}

func (r *reimbursementRepository) CreateReimbursement(reimbursement *models.CountyReimbursement) (*models.CountyReimbursement, error) {
	if reimbursement.ID == uuid.Nil {
		reimbursement.ID = uuid.New()
	}
	reimbursement.Status = models.ReimbursementPending
	if err := r.db.Create(reimbursement).Error; err != nil {
		config.Logger.Error("Failed to create reimbursement", zap.Error(err))
		return nil, fmt.Errorf("failed to create reimbursement: %w", err)
	}
	return reimbursement, nil
}

func (r *reimbursementRepository) GetReimbursementByID(id uuid.UUID) (*models.CountyReimbursement, error) {
	var reimbursement models.CountyReimbursement
	err := r.db.Preload("Client").First(&reimbursement, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("reimbursement with id '%s' not found", id)
		}
		return nil, err
	}
	return &reimbursement, nil
}

// RecordReceived adds a received payment to a reimbursement and derives its
// status: PENDING when nothing has arrived, PARTIAL below the expected
// amount, RECEIVED at or above it.
func (r *reimbursementRepository) RecordReceived(id uuid.UUID, amount decimal.Decimal, receivedAt time.Time) (*models.CountyReimbursement, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("received amount must be positive, got %s", amount.String())
	}

	var updated *models.CountyReimbursement
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var reimbursement models.CountyReimbursement
		if err := tx.First(&reimbursement, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("reimbursement with id '%s' not found", id)
			}
			return err
		}

		reimbursement.ReceivedAmount = reimbursement.ReceivedAmount.Add(amount)
		reimbursement.ReceivedAt = &receivedAt
		reimbursement.Status = DeriveStatus(reimbursement.ExpectedAmount, reimbursement.ReceivedAmount)

		if err := tx.Save(&reimbursement).Error; err != nil {
			return fmt.Errorf("failed to update reimbursement: %w", err)
		}
		updated = &reimbursement
		return nil
	})
	if err != nil {
		config.Logger.Error("Failed to record received reimbursement", zap.Error(err), zap.String("reimbursement_id", id.String()))
		return nil, err
	}
	return updated, nil
}

// DeriveStatus maps received-vs-expected amounts onto a reimbursement status.
func DeriveStatus(expected, received decimal.Decimal) models.ReimbursementStatus {
	switch {
	case received.LessThanOrEqual(decimal.Zero):
		return models.ReimbursementPending
	case received.LessThan(expected):
		return models.ReimbursementPartial
	default:
		return models.ReimbursementReceived
	}
}

// GetFilteredReimbursements retrieves reimbursements with filtering and pagination
func (r *reimbursementRepository) GetFilteredReimbursements(pageSize int, offset int, filters map[string]string) ([]models.CountyReimbursement, int64, error) {
	var reimbursements []models.CountyReimbursement
	var total int64

	db := r.db.Model(&models.CountyReimbursement{})

	for key, value := range filters {
		switch key {
		case "company_id":
			db = db.Where("company_id = ?", value)
		case "client_id":
			db = db.Where("client_id = ?", value)
		case "county":
			db = db.Where("county ILIKE ?", "%"+value+"%")
		case "status":
			db = db.Where("status = ?", value)
		case "start_date":
			db = db.Where("Date(period_date) >= ?", value)
		case "end_date":
			db = db.Where("Date(period_date) <= ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Client").Limit(pageSize).Offset(offset).Order("period_date DESC, created_at DESC").Find(&reimbursements).Error; err != nil {
		return nil, 0, err
	}

	return reimbursements, total, nil
}
