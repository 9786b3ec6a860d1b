package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ClientStatus defines the current status of a program participant.
type ClientStatus string

const (
	ClientActive   ClientStatus = "active"
	ClientInactive ClientStatus = "inactive"
)

// Client represents a housing-assistance program participant. A client may
// reference at most one Property and its Building; when PropertyID is set,
// BuildingID always matches that property's building (the importer resolves
// both together).
type Client struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	FirstName string `gorm:"not null;index" json:"first_name"`
	LastName  string `gorm:"not null;index" json:"last_name"`
	FullName  string `json:"full_name"` // Computed field

	CaseNumber   string `gorm:"index" json:"case_number"`
	ClientNumber string `json:"client_number"`
	County       string `gorm:"index" json:"county"`

	// Contact information
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Email       string `json:"email"`

	// Domain-required fields absent from the import formats; the importer
	// fills these with fixed placeholders.
	SSN              string     `json:"ssn"`
	DateOfBirth      *time.Time `json:"date_of_birth"`
	EmploymentStatus string     `json:"employment_status"`

	MonthlyIncome decimal.Decimal `gorm:"type:decimal(12,2)" json:"monthly_income"`
	CountyAmount  decimal.Decimal `gorm:"type:decimal(12,2)" json:"county_amount"`

	// Free-text notes, accumulated by concatenation across source columns.
	Notes string `gorm:"type:text" json:"notes"`

	Status ClientStatus `gorm:"default:'active'" json:"status"`

	// No column default: a zero value here is meaningful on insert and a
	// default would silently override it.
	IsActive bool `json:"is_active"`

	// Weak references, no cascade
	PropertyID *uuid.UUID `gorm:"type:uuid;index" json:"property_id"`
	BuildingID *uuid.UUID `gorm:"type:uuid;index" json:"building_id"`

	Property *Property `gorm:"foreignKey:PropertyID" json:"property,omitempty"`
	Building *Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`

	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
