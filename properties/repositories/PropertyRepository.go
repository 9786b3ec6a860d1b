package repositories

import (
	"errors"
	"fmt"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type PropertyRepository interface {
	CreateProperty(property *models.Property) (*models.Property, error)
	GetPropertyByID(id uuid.UUID) (*models.Property, error)
	UpdatePropertyStatus(id uuid.UUID, status models.PropertyStatus) (*models.Property, error)
	GetFilteredProperties(pageSize int, offset int, filters map[string]string) ([]models.Property, int64, error)
}

type propertyRepository struct {
	db *gorm.DB
}

// NewPropertyRepository initializes a new property repository
func NewPropertyRepository(db *gorm.DB) PropertyRepository {
	return &propertyRepository{db: db}
}

func (r *propertyRepository) CreateProperty(property *models.Property) (*models.Property, error) {
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	if err := r.db.Create(property).Error; err != nil {
		config.Logger.Error("Failed to create property", zap.Error(err))
		return nil, fmt.Errorf("failed to create property: %w", err)
	}
	return property, nil
}

func (r *propertyRepository) GetPropertyByID(id uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.Preload("Building").First(&property, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("property with id '%s' not found", id)
		}
		return nil, err
	}
	return &property, nil
}

func (r *propertyRepository) UpdatePropertyStatus(id uuid.UUID, status models.PropertyStatus) (*models.Property, error) {
	property, err := r.GetPropertyByID(id)
	if err != nil {
		return nil, err
	}
	property.Status = status
	if err := r.db.Model(&models.Property{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		config.Logger.Error("Failed to update property status", zap.Error(err), zap.String("property_id", id.String()))
		return nil, fmt.Errorf("failed to update property status: %w", err)
	}
	return property, nil
}

// GetFilteredProperties retrieves properties with filtering and pagination
func (r *propertyRepository) GetFilteredProperties(pageSize int, offset int, filters map[string]string) ([]models.Property, int64, error) {
	var properties []models.Property
	var total int64

	db := r.db.Model(&models.Property{})

	for key, value := range filters {
		switch key {
		case "company_id":
			db = db.Where("company_id = ?", value)
		case "building_id":
			db = db.Where("building_id = ?", value)
		case "status":
			db = db.Where("status = ?", value)
		case "min_rent":
			db = db.Where("rent_amount >= ?", value)
		case "max_rent":
			db = db.Where("rent_amount <= ?", value)
		case "bedrooms":
			db = db.Where("bedrooms = ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Preload("Building").Limit(pageSize).Offset(offset).Order("created_at DESC").Find(&properties).Error; err != nil {
		return nil, 0, err
	}

	return properties, total, nil
}
