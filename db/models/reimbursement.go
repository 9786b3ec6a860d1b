package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReimbursementStatus tracks how much of an expected county payment has
// actually arrived.
type ReimbursementStatus string

const (
	ReimbursementPending  ReimbursementStatus = "PENDING"
	ReimbursementPartial  ReimbursementStatus = "PARTIAL"
	ReimbursementReceived ReimbursementStatus = "RECEIVED"
)

// CountyReimbursement is a payment expected from a government county program
// toward a client's housing costs, reconciled against the amount received.
type CountyReimbursement struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;" json:"id"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index" json:"company_id"`
	ClientID  uuid.UUID `gorm:"type:uuid;not null;index" json:"client_id"`

	County         string          `gorm:"index" json:"county"`
	ExpectedAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"expected_amount"`
	ReceivedAmount decimal.Decimal `gorm:"type:decimal(12,2)" json:"received_amount"`

	Status     ReimbursementStatus `gorm:"default:'PENDING'" json:"status"`
	PeriodDate *time.Time          `json:"period_date"`
	ReceivedAt *time.Time          `json:"received_at"`
	Notes      string              `json:"notes"`

	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`

	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
