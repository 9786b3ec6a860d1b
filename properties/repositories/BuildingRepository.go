package repositories

import (
	"errors"
	"fmt"
	"strings"

	"housing-assist-backend/config"
	"housing-assist-backend/db/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type BuildingRepository interface {
	CreateBuilding(building *models.Building) (*models.Building, error)
	UpdateBuilding(building *models.Building) (*models.Building, error)
	GetBuildingByID(id uuid.UUID) (*models.Building, error)
	GetFilteredBuildings(pageSize int, offset int, filters map[string]string) ([]models.Building, int64, error)
}

type buildingRepository struct {
	db *gorm.DB
}

// NewBuildingRepository initializes a new building repository
func NewBuildingRepository(db *gorm.DB) BuildingRepository {
	return &buildingRepository{db: db}
}

func (r *buildingRepository) CreateBuilding(building *models.Building) (*models.Building, error) {
	if building.ID == uuid.Nil {
		building.ID = uuid.New()
	}
	if err := r.db.Create(building).Error; err != nil {
		config.Logger.Error("Failed to create building", zap.Error(err))
		return nil, fmt.Errorf("failed to create building: %w", err)
	}
	return building, nil
}

func (r *buildingRepository) UpdateBuilding(building *models.Building) (*models.Building, error) {
	if err := r.db.Save(building).Error; err != nil {
		config.Logger.Error("Failed to update building", zap.Error(err), zap.String("building_id", building.ID.String()))
		return nil, fmt.Errorf("failed to update building: %w", err)
	}
	return building, nil
}

func (r *buildingRepository) GetBuildingByID(id uuid.UUID) (*models.Building, error) {
	var building models.Building
	err := r.db.Preload("Properties").First(&building, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("building with id '%s' not found", id)
		}
		return nil, err
	}
	return &building, nil
}

// GetFilteredBuildings retrieves buildings with filtering and pagination
func (r *buildingRepository) GetFilteredBuildings(pageSize int, offset int, filters map[string]string) ([]models.Building, int64, error) {
	var buildings []models.Building
	var total int64

	db := r.db.Model(&models.Building{})

	for key, value := range filters {
		switch key {
		case "company_id":
			db = db.Where("company_id = ?", value)
		case "status":
			db = db.Where("status = ?", strings.ToUpper(value))
		case "name":
			db = db.Where("name ILIKE ?", "%"+value+"%")
		case "address":
			db = db.Where("address ILIKE ?", "%"+value+"%")
		case "landlord":
			db = db.Where("landlord_name ILIKE ?", "%"+value+"%")
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("name ASC").Find(&buildings).Error; err != nil {
		return nil, 0, err
	}

	return buildings, total, nil
}
