package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BuildingStatus defines the current status of a building within the system.
type BuildingStatus string

const (
	BuildingActive   BuildingStatus = "ACTIVE"
	BuildingInactive BuildingStatus = "INACTIVE"
)

// PropertyStatus defines the occupancy status of a rentable unit.
type PropertyStatus string

const (
	PropertyAvailable PropertyStatus = "available"
	PropertyOccupied  PropertyStatus = "occupied"
)

// Building represents a physical structure managed by one landlord or
// management company, containing one or more rentable Properties.
// Identity for import reconciliation is (name, address, company_id).
type Building struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`

	Name    string `gorm:"not null;index" json:"name"`
	Address string `gorm:"index" json:"address"`

	// Landlord / management contact
	LandlordName  string `json:"landlord_name"`
	LandlordPhone string `json:"landlord_phone"`
	LandlordEmail string `json:"landlord_email"`

	TotalUnits   int            `gorm:"default:1" json:"total_units"`
	BuildingType string         `json:"building_type"`
	Status       BuildingStatus `gorm:"default:'ACTIVE'" json:"status"`

	Properties []Property `gorm:"foreignKey:BuildingID" json:"properties,omitempty"`

	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// Property represents a rentable unit within a Building.
type Property struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	BuildingID uuid.UUID `gorm:"type:uuid;not null;index" json:"building_id"`

	Name       string `json:"name"`
	UnitNumber string `gorm:"default:'1'" json:"unit_number"`

	RentAmount    decimal.Decimal `gorm:"type:decimal(12,2)" json:"rent_amount"`
	DepositAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"deposit_amount"`

	Bedrooms  int `gorm:"default:1" json:"bedrooms"`
	Bathrooms int `gorm:"default:1" json:"bathrooms"`

	Status PropertyStatus `gorm:"default:'available'" json:"status"`

	Building *Building `gorm:"foreignKey:BuildingID" json:"building,omitempty"`

	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
