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

type ClientRepository interface {
	CreateClient(client *models.Client) (*models.Client, error)
	UpdateClient(client *models.Client) (*models.Client, error)
	GetClientByID(id uuid.UUID) (*models.Client, error)
	GetAllClients(companyID uuid.UUID) ([]models.Client, error)
	GetFilteredClients(pageSize int, offset int, filters map[string]string) ([]models.Client, int64, error)
	CreateCompany(company *models.Company) (*models.Company, error)
	GetActiveCompanies() ([]models.Company, error)
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository initializes a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) CreateClient(client *models.Client) (*models.Client, error) {
	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.FullName = strings.TrimSpace(client.FirstName + " " + client.LastName)
	if err := r.db.Create(client).Error; err != nil {
		config.Logger.Error("Failed to create client", zap.Error(err))
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return client, nil
}

func (r *clientRepository) UpdateClient(client *models.Client) (*models.Client, error) {
	client.FullName = strings.TrimSpace(client.FirstName + " " + client.LastName)
	if err := r.db.Save(client).Error; err != nil {
		config.Logger.Error("Failed to update client", zap.Error(err), zap.String("client_id", client.ID.String()))
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	return client, nil
}

func (r *clientRepository) GetClientByID(id uuid.UUID) (*models.Client, error) {
	var client models.Client
	err := r.db.Preload("Property").Preload("Building").First(&client, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("client with id '%s' not found", id)
		}
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) GetAllClients(companyID uuid.UUID) ([]models.Client, error) {
	var clients []models.Client
	if err := r.db.Where("company_id = ?", companyID).Find(&clients).Error; err != nil {
		config.Logger.Error("Failed to get all clients", zap.Error(err))
		return nil, fmt.Errorf("failed to get all clients: %w", err)
	}
	return clients, nil
}

// GetFilteredClients retrieves clients with filtering and pagination
func (r *clientRepository) GetFilteredClients(pageSize int, offset int, filters map[string]string) ([]models.Client, int64, error) {
	var clients []models.Client
	var total int64

	db := r.db.Model(&models.Client{})

	for key, value := range filters {
		switch key {
		case "company_id":
			db = db.Where("company_id = ?", value)
		case "active":
			if strings.ToLower(value) == "true" {
				db = db.Where("is_active = ?", true)
			} else if strings.ToLower(value) == "false" {
				db = db.Where("is_active = ?", false)
			}
		case "county":
			db = db.Where("county ILIKE ?", "%"+value+"%")
		case "name":
			db = db.Where("full_name ILIKE ?", "%"+value+"%")
		case "case_number":
			db = db.Where("case_number ILIKE ?", "%"+value+"%")
		case "start_date":
			db = db.Where("Date(created_at) >= ?", value)
		case "end_date":
			db = db.Where("Date(created_at) <= ?", value)
		}
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := db.Limit(pageSize).Offset(offset).Order("updated_at DESC, created_at DESC").Find(&clients).Error; err != nil {
		return nil, 0, err
	}

	return clients, total, nil
}

func (r *clientRepository) CreateCompany(company *models.Company) (*models.Company, error) {
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	if err := r.db.Create(company).Error; err != nil {
		config.Logger.Error("Failed to create company", zap.Error(err))
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

func (r *clientRepository) GetActiveCompanies() ([]models.Company, error) {
	var companies []models.Company
	if err := r.db.Where("is_active = ?", true).Order("name ASC").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("failed to get companies: %w", err)
	}
	return companies, nil
}
