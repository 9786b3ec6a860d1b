package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company represents a housing-assistance provider (tenant) that owns
// clients, buildings and properties.
type Company struct {
	ID    uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	Name  string    `gorm:"not null;index" json:"name"`
	Email string    `json:"email"`
	Phone string    `json:"phone"`

	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedBy string         `json:"created_by"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
