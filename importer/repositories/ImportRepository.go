package repositories

import (
	"errors"

	"housing-assist-backend/db/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ImportRepository interface {
	GetBuildingByNameAndAddress(companyID uuid.UUID, name, address string) (*models.Building, error)
	GetBuildingByName(companyID uuid.UUID, name string) (*models.Building, error)
	GetPropertyByBuilding(companyID, buildingID uuid.UUID) (*models.Property, error)
	GetPropertyByBuildingName(companyID uuid.UUID, buildingName string) (*models.Property, error)
	CreateBuilding(building *models.Building) (*models.Building, error)
	CreateProperty(property *models.Property) (*models.Property, error)
	GetClientByNameAndCompany(companyID uuid.UUID, firstName, lastName string) (*models.Client, error)
	GetClientByNameAndCounty(companyID uuid.UUID, firstName, lastName, county string) (*models.Client, error)
	CreateClient(client *models.Client) (*models.Client, error)
	UpdateClient(client *models.Client) (*models.Client, error)
	LogBulkUploadClientErrors(rows []models.BulkUploadErrorClients) error
	GetFilteredImportErrors(pageSize int, offset int, filters map[string]string) ([]models.BulkUploadErrorClients, int64, error)
	LogEmailSent(emailLog *models.EmailLog) error
}

type importRepository struct {
	db *gorm.DB
}

func NewImportRepository(db *gorm.DB) ImportRepository {
	return &importRepository{
		db: db,
	}
}

// GetBuildingByNameAndAddress finds a building by its full reconciliation
// identity (name, address, company).
func (r *importRepository) GetBuildingByNameAndAddress(companyID uuid.UUID, name, address string) (*models.Building, error) {
	var building models.Building
	err := r.db.First(&building, "company_id = ? AND name = ? AND address = ?", companyID, name, address).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &building, nil
}

// GetBuildingByName finds a building by name alone, the looser key used by
// the legacy county import path.
func (r *importRepository) GetBuildingByName(companyID uuid.UUID, name string) (*models.Building, error) {
	var building models.Building
	err := r.db.First(&building, "company_id = ? AND name = ?", companyID, name).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &building, nil
}

func (r *importRepository) GetPropertyByBuilding(companyID, buildingID uuid.UUID) (*models.Property, error) {
	var property models.Property
	err := r.db.First(&property, "company_id = ? AND building_id = ?", companyID, buildingID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

// GetPropertyByBuildingName finds a property joined to its building by
// building name only. The building address is deliberately not part of this
// key; two addresses under the same management name collapse to the first
// building found.
func (r *importRepository) GetPropertyByBuildingName(companyID uuid.UUID, buildingName string) (*models.Property, error) {
	var property models.Property
	err := r.db.
		Joins("JOIN buildings ON buildings.id = properties.building_id").
		Where("properties.company_id = ? AND buildings.name = ?", companyID, buildingName).
		First(&property).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &property, nil
}

func (r *importRepository) CreateBuilding(building *models.Building) (*models.Building, error) {
	if building.ID == uuid.Nil {
		building.ID = uuid.New()
	}
	err := r.db.Create(building).Error
	return building, err
}

func (r *importRepository) CreateProperty(property *models.Property) (*models.Property, error) {
	if property.ID == uuid.Nil {
		property.ID = uuid.New()
	}
	err := r.db.Create(property).Error
	return property, err
}

func (r *importRepository) GetClientByNameAndCompany(companyID uuid.UUID, firstName, lastName string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "company_id = ? AND first_name = ? AND last_name = ?", companyID, firstName, lastName).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *importRepository) GetClientByNameAndCounty(companyID uuid.UUID, firstName, lastName, county string) (*models.Client, error) {
	var client models.Client
	err := r.db.First(&client, "company_id = ? AND first_name = ? AND last_name = ? AND county = ?", companyID, firstName, lastName, county).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &client, nil
}

func (r *importRepository) CreateClient(client *models.Client) (*models.Client, error) {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	err := r.db.Create(client).Error
	return client, err
}

func (r *importRepository) UpdateClient(client *models.Client) (*models.Client, error) {
	err := r.db.Save(client).Error
	return client, err
}

// LogBulkUploadClientErrors records rejected import rows. Failures here are
// logged by callers but never abort an upload.
func (r *importRepository) LogBulkUploadClientErrors(rows []models.BulkUploadErrorClients) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.Create(&rows).Error
}

// GetFilteredImportErrors lists rejected import rows with filtering and
// pagination, newest first.
func (r *importRepository) GetFilteredImportErrors(pageSize int, offset int, filters map[string]string) ([]models.BulkUploadErrorClients, int64, error) {
	var rows []models.BulkUploadErrorClients
	var total int64

	db := r.db.Model(&models.BulkUploadErrorClients{})

	for key, value := range filters {
		switch key {
		case "company_id":
			db = db.Where("company_id = ?", value)
		case "error_type":
			db = db.Where("error_type = ?", value)
		case "created_by":
			db = db.Where("created_by = ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("created_at DESC").Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	return rows, total, nil
}

func (r *importRepository) LogEmailSent(emailLog *models.EmailLog) error {
	return r.db.Create(emailLog).Error
}
